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
		provider.stores.DocumentChunkStore = NewDocumentChunkStore(provider)
	})
}

type DocumentChunkStore struct {
	CommonFields
}

// NewDocumentChunkStore 创建一个新的 DocumentChunkStore 实例
func NewDocumentChunkStore(provider SqlProviderAchieve) *DocumentChunkStore {
	repo := &DocumentChunkStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DOCUMENT_CHUNK)
	repo.SetAllColumns(append([]string{"id", "document_id", "task_id", "content", "meta_info",
		"status", "start_datetime", "end_datetime"}, types.AuditColumns...)...)
	return repo
}

// BatchCreate 批量创建文档分片
func (s *DocumentChunkStore) BatchCreate(ctx context.Context, data []*types.DocumentChunk) error {
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
		query = query.Values(item.ID, item.DocumentID, item.TaskID, item.Content, item.MetaInfo,
			item.Status, item.StartDatetime, item.EndDatetime,
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

// ListByDocumentID 获取文档的全部分片，按创建顺序
func (s *DocumentChunkStore) ListByDocumentID(ctx context.Context, documentID string) ([]types.DocumentChunk, error) {
	return s.list(ctx, sq.Eq{"document_id": documentID})
}

// ListIncomplete 重试入口：status != success 的分片，按创建顺序。
// 上一轮已成功的分片不会被重复处理。
func (s *DocumentChunkStore) ListIncomplete(ctx context.Context, documentID string) ([]types.DocumentChunk, error) {
	return s.list(ctx, sq.And{
		sq.Eq{"document_id": documentID},
		sq.NotEq{"status": types.PROCESS_STATUS_SUCCESS},
	})
}

func (s *DocumentChunkStore) list(ctx context.Context, cond sq.Sqlizer) ([]types.DocumentChunk, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(cond).
		OrderBy("id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.DocumentChunk
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// CountByDocumentID 文档分片总数
func (s *DocumentChunkStore) CountByDocumentID(ctx context.Context, documentID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"document_id": documentID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var count int64
	if err = s.GetReplica(ctx).Get(&count, queryString, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// SetStarted 分片进入 doing 状态并记录开始时间
func (s *DocumentChunkStore) SetStarted(ctx context.Context, id string, startDatetime int64) error {
	query := sq.Update(s.GetTable()).
		Set("status", types.PROCESS_STATUS_DOING).
		Set("start_datetime", startDatetime).
		Set("update_datetime", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// SetStatus 更新分片状态，endDatetime 为 0 时不修改结束时间
func (s *DocumentChunkStore) SetStatus(ctx context.Context, id string, status types.ProcessStatus, endDatetime int64) error {
	query := sq.Update(s.GetTable()).
		Set("status", status).
		Set("update_datetime", time.Now().Unix()).
		Where(sq.Eq{"id": id})
	if endDatetime > 0 {
		query = query.Set("end_datetime", endDatetime)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// DeleteByTaskID 删除任务下全部分片
func (s *DocumentChunkStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
