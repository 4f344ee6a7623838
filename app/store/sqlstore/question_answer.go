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
		provider.stores.QuestionAnswerStore = NewQuestionAnswerStore(provider)
	})
}

type QuestionAnswerStore struct {
	CommonFields
}

// NewQuestionAnswerStore 创建一个新的 QuestionAnswerStore 实例
func NewQuestionAnswerStore(provider SqlProviderAchieve) *QuestionAnswerStore {
	repo := &QuestionAnswerStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_QUESTION_ANSWER)
	repo.SetAllColumns(append([]string{"id", "task_id", "document_id", "document_chunk_id",
		"file_name", "question", "answer"}, types.AuditColumns...)...)
	return repo
}

// BatchCreate 批量写入 QA 拆分产出
func (s *QuestionAnswerStore) BatchCreate(ctx context.Context, data []*types.QuestionAnswerPair) error {
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
			item.FileName, item.Question, item.Answer,
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

// DeleteByChunkID 重试分片前清掉旧的 QA 产出
func (s *QuestionAnswerStore) DeleteByChunkID(ctx context.Context, taskID, documentID, chunkID string) error {
	query := sq.Delete(s.GetTable()).
		Where(sq.Eq{"task_id": taskID, "document_id": documentID, "document_chunk_id": chunkID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByDocumentID 获取文档的全部 QA，按创建顺序
func (s *QuestionAnswerStore) ListByDocumentID(ctx context.Context, documentID string) ([]types.QuestionAnswerPair, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.QuestionAnswerPair
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// ListByTaskID 按任务获取 QA，limit 为 0 时不限制
func (s *QuestionAnswerStore) ListByTaskID(ctx context.Context, taskID string, limit uint64) ([]types.QuestionAnswerPair, error) {
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

	var res []types.QuestionAnswerPair
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByTaskID 删除任务下全部 QA
func (s *QuestionAnswerStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
