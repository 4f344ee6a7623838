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
		provider.stores.StageLogStore = NewStageLogStore(provider)
	})
}

type StageLogStore struct {
	CommonFields
}

// NewStageLogStore 创建一个新的 StageLogStore 实例
func NewStageLogStore(provider SqlProviderAchieve) *StageLogStore {
	repo := &StageLogStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TASK_STAGE_LOG)
	repo.SetAllColumns(append([]string{"id", "task_id", "log_id", "file_name", "stage",
		"status", "detail"}, types.AuditColumns...)...)
	return repo
}

// Create 追加阶段日志
func (s *StageLogStore) Create(ctx context.Context, data types.StageLog) error {
	if data.CreateDatetime == 0 {
		data.CreateDatetime = time.Now().Unix()
	}
	if data.UpdateDatetime == 0 {
		data.UpdateDatetime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.TaskID, data.LogID, data.FileName, data.Stage,
			data.Status, data.Detail,
			data.CreateDatetime, data.CreateUser, data.CreateProgram,
			data.UpdateDatetime, data.UpdateUser, data.UpdateProgram)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByLogID 获取某次执行的全部阶段日志，按写入顺序
func (s *StageLogStore) ListByLogID(ctx context.Context, taskID, logID string) ([]types.StageLog, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"task_id": taskID, "log_id": logID}).
		OrderBy("id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.StageLog
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByTaskID 删除任务下全部阶段日志
func (s *StageLogStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
