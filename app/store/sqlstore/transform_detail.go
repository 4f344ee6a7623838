package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dataprep-ai/dataprep/pkg/register"
	"github.com/dataprep-ai/dataprep/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.TransformDetailStore = NewTransformDetailStore(provider)
	})
}

type TransformDetailStore struct {
	CommonFields
}

// NewTransformDetailStore 创建一个新的 TransformDetailStore 实例
func NewTransformDetailStore(provider SqlProviderAchieve) *TransformDetailStore {
	repo := &TransformDetailStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TASK_DETAIL)
	repo.SetAllColumns(append([]string{"id", "task_id", "document_id", "document_chunk_id", "file_name",
		"transform_type", "pre_content", "post_content", "status", "error_message"}, types.AuditColumns...)...)
	return repo
}

// BatchCreate 批量写入算子审计明细
func (s *TransformDetailStore) BatchCreate(ctx context.Context, data []*types.TransformDetail) error {
	if len(data) == 0 {
		return nil
	}

	query := sq.Insert(s.GetTable()).Columns(s.GetAllColumns()...)
	for _, item := range data {
		if item.CreateDatetime == 0 {
			item.CreateDatetime = time.Now().Unix()
		}
		if item.UpdateDatetime == 0 {
			item.UpdateDatetime = time.Now().Unix()
		}
		query = query.Values(item.ID, item.TaskID, item.DocumentID, item.DocumentChunkID, item.FileName,
			item.TransformType, item.PreContent, item.PostContent, item.Status, item.ErrorMessage,
			item.CreateDatetime, item.CreateUser, item.CreateProgram,
			item.UpdateDatetime, item.UpdateUser, item.UpdateProgram)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// DeleteByChunkID 重试分片前清掉旧明细
func (s *TransformDetailStore) DeleteByChunkID(ctx context.Context, taskID, documentID, chunkID string) error {
	query := sq.Delete(s.GetTable()).
		Where(sq.Eq{"task_id": taskID, "document_id": documentID, "document_chunk_id": chunkID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByTaskID 按任务获取明细，limit 为 0 时不限制
func (s *TransformDetailStore) ListByTaskID(ctx context.Context, taskID string, limit uint64) ([]types.TransformDetail, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.TransformDetail
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByTaskID 删除任务下全部明细
func (s *TransformDetailStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
