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
		provider.stores.DocumentStore = NewDocumentStore(provider)
	})
}

type DocumentStore struct {
	CommonFields
}

// NewDocumentStore 创建一个新的 DocumentStore 实例
func NewDocumentStore(provider SqlProviderAchieve) *DocumentStore {
	repo := &DocumentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DOCUMENT)
	repo.SetAllColumns(append([]string{"id", "task_id", "file_name", "document_type", "status",
		"progress", "chunk_size", "start_datetime", "end_datetime"}, types.AuditColumns...)...)
	return repo
}

// Create 创建源文件记录
func (s *DocumentStore) Create(ctx context.Context, data types.Document) error {
	if data.CreateDatetime == 0 {
		data.CreateDatetime = time.Now().Unix()
	}
	if data.UpdateDatetime == 0 {
		data.UpdateDatetime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.TaskID, data.FileName, data.DocumentType, data.Status,
			data.Progress, data.ChunkSize, data.StartDatetime, data.EndDatetime,
			data.CreateDatetime, data.CreateUser, data.CreateProgram,
			data.UpdateDatetime, data.UpdateUser, data.UpdateProgram)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Get 根据ID获取源文件记录
func (s *DocumentStore) Get(ctx context.Context, id string) (*types.Document, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Document
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListByTaskID 获取任务下全部源文件，按创建顺序
func (s *DocumentStore) ListByTaskID(ctx context.Context, taskID string) ([]types.Document, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Document
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// SetStarted 文档切分完成后写入分片总数与开始时间
func (s *DocumentStore) SetStarted(ctx context.Context, id string, chunkCount int, startDatetime int64) error {
	query := sq.Update(s.GetTable()).
		Set("chunk_size", chunkCount).
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

// SetStatus 更新源文件状态，endDatetime 为 0 时不修改结束时间
func (s *DocumentStore) SetStatus(ctx context.Context, id string, status types.ProcessStatus, endDatetime int64) error {
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

// SetProgress 更新处理进度（0-100）
func (s *DocumentStore) SetProgress(ctx context.Context, id string, progress int) error {
	query := sq.Update(s.GetTable()).
		Set("progress", progress).
		Set("update_datetime", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// DeleteByTaskID 删除任务下全部源文件记录
func (s *DocumentStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
