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
		provider.stores.TaskLogStore = NewTaskLogStore(provider)
	})
}

type TaskLogStore struct {
	CommonFields
}

// NewTaskLogStore 创建一个新的 TaskLogStore 实例
func NewTaskLogStore(provider SqlProviderAchieve) *TaskLogStore {
	repo := &TaskLogStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TASK_LOG)
	repo.SetAllColumns(append([]string{"id", "task_id", "type", "status", "error_msg",
		"start_datetime", "end_datetime"}, types.AuditColumns...)...)
	return repo
}

// Create 创建执行记录
func (s *TaskLogStore) Create(ctx context.Context, data types.TaskLog) error {
	if data.CreateDatetime == 0 {
		data.CreateDatetime = time.Now().Unix()
	}
	if data.UpdateDatetime == 0 {
		data.UpdateDatetime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.TaskID, data.Type, data.Status, data.ErrorMsg,
			data.StartDatetime, data.EndDatetime,
			data.CreateDatetime, data.CreateUser, data.CreateProgram,
			data.UpdateDatetime, data.UpdateUser, data.UpdateProgram)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Get 根据ID获取执行记录
func (s *TaskLogStore) Get(ctx context.Context, id string) (*types.TaskLog, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.TaskLog
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Finish 关闭执行记录，写入终态与错误信息
func (s *TaskLogStore) Finish(ctx context.Context, id string, status types.TaskStatus, errorMsg string, endDatetime int64) error {
	query := sq.Update(s.GetTable()).
		Set("status", status).
		Set("error_msg", errorMsg).
		Set("end_datetime", endDatetime).
		Set("update_datetime", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByTaskID 按任务获取执行记录，时间正序
func (s *TaskLogStore) ListByTaskID(ctx context.Context, taskID string) ([]types.TaskLog, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("create_datetime")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.TaskLog
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByTaskID 删除任务下全部执行记录
func (s *TaskLogStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
