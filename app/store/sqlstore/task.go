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
		provider.stores.TaskStore = NewTaskStore(provider)
	})
}

type TaskStore struct {
	CommonFields // 嵌入通用操作字段
}

// NewTaskStore 创建一个新的 TaskStore 实例
func NewTaskStore(provider SqlProviderAchieve) *TaskStore {
	repo := &TaskStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TASK)
	repo.SetAllColumns(append([]string{"id", "name", "namespace", "file_type", "status", "current_log_id",
		"pre_data_set_name", "pre_data_set_version", "post_data_set_name", "post_data_set_version",
		"file_names", "config", "start_datetime", "end_datetime"}, types.AuditColumns...)...)
	return repo
}

// Create 创建任务记录
func (s *TaskStore) Create(ctx context.Context, data types.Task) error {
	if data.CreateDatetime == 0 {
		data.CreateDatetime = time.Now().Unix()
	}
	if data.UpdateDatetime == 0 {
		data.UpdateDatetime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.Name, data.Namespace, data.FileType, data.Status, data.CurrentLogID,
			data.PreDatasetName, data.PreDatasetVersion, data.PostDatasetName, data.PostDatasetVersion,
			data.FileNames, data.Config, data.StartDatetime, data.EndDatetime,
			data.CreateDatetime, data.CreateUser, data.CreateProgram,
			data.UpdateDatetime, data.UpdateUser, data.UpdateProgram)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Get 根据ID获取任务记录
func (s *TaskStore) Get(ctx context.Context, id string) (*types.Task, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Task
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// SetStatus 更新任务状态，endDatetime 为 0 时不修改结束时间
func (s *TaskStore) SetStatus(ctx context.Context, id string, status types.TaskStatus, endDatetime int64) error {
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

// SetCurrentLog 切换任务当前执行记录
func (s *TaskStore) SetCurrentLog(ctx context.Context, id, logID string) error {
	query := sq.Update(s.GetTable()).
		Set("current_log_id", logID).
		Set("update_datetime", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// List 分页获取任务列表，创建时间倒序
func (s *TaskStore) List(ctx context.Context, opts types.ListTaskOptions, page, pageSize uint64) ([]types.Task, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		OrderBy("create_datetime DESC")
	opts.Apply(&query)
	if page > 0 && pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Task
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Total 获取任务总数
func (s *TaskStore) Total(ctx context.Context, opts types.ListTaskOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())
	opts.Apply(&query)

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

// Delete 删除任务记录
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
