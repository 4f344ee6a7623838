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
		provider.stores.QuestionAnswerCleanStore = NewQuestionAnswerCleanStore(provider)
	})
}

type QuestionAnswerCleanStore struct {
	CommonFields
}

// NewQuestionAnswerCleanStore 创建一个新的 QuestionAnswerCleanStore 实例
func NewQuestionAnswerCleanStore(provider SqlProviderAchieve) *QuestionAnswerCleanStore {
	repo := &QuestionAnswerCleanStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_QA_CLEAN)
	repo.SetAllColumns(append([]string{"id", "task_id", "document_id", "document_chunk_id",
		"file_name", "question", "answer", "question_score", "answer_score",
		"duplicated_flag", "compare_with_id"}, types.AuditColumns...)...)
	return repo
}

// BatchCreate 批量写入去重结论
func (s *QuestionAnswerCleanStore) BatchCreate(ctx context.Context, data []*types.QuestionAnswerClean) error {
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
		query = query.Values(item.ID, item.TaskID, item.DocumentID, item.DocumentChunkID,
			item.FileName, item.Question, item.Answer, item.QuestionScore, item.AnswerScore,
			item.DuplicatedFlag, item.CompareWithID,
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

// DeleteByDocumentID 重跑去重前清掉文档旧结论
func (s *QuestionAnswerCleanStore) DeleteByDocumentID(ctx context.Context, documentID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"document_id": documentID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListUniqueByDocumentID 导出入口：duplicated_flag = 1 的保留记录
func (s *QuestionAnswerCleanStore) ListUniqueByDocumentID(ctx context.Context, documentID string) ([]types.QuestionAnswerClean, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"document_id": documentID, "duplicated_flag": types.QA_UNIQUE}).
		OrderBy("id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.QuestionAnswerClean
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// ListByTaskID 按任务获取去重结论，limit 为 0 时不限制
func (s *QuestionAnswerCleanStore) ListByTaskID(ctx context.Context, taskID string, limit uint64) ([]types.QuestionAnswerClean, error) {
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

	var res []types.QuestionAnswerClean
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByTaskID 删除任务下全部去重结论
func (s *QuestionAnswerCleanStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
