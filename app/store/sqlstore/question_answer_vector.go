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
		provider.stores.QuestionAnswerVectorStore = NewQuestionAnswerVectorStore(provider)
	})
}

type QuestionAnswerVectorStore struct {
	CommonFields
}

// NewQuestionAnswerVectorStore 创建一个新的 QuestionAnswerVectorStore 实例
func NewQuestionAnswerVectorStore(provider SqlProviderAchieve) *QuestionAnswerVectorStore {
	repo := &QuestionAnswerVectorStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_QA_VECTOR)
	repo.SetAllColumns(append([]string{"id", "task_id", "document_id",
		"question_vector", "answer_vector"}, types.AuditColumns...)...)
	return repo
}

// BatchCreate 批量暂存 QA 向量，主键与 pair id 一致
func (s *QuestionAnswerVectorStore) BatchCreate(ctx context.Context, data []*types.QuestionAnswerVector) error {
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
		query = query.Values(item.ID, item.TaskID, item.DocumentID,
			item.QuestionVector, item.AnswerVector,
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

// ListByDocumentID 获取文档在暂存区的全部向量，按创建顺序
func (s *QuestionAnswerVectorStore) ListByDocumentID(ctx context.Context, documentID string) ([]types.QuestionAnswerVector, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable()).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.QuestionAnswerVector
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// BatchDelete 将被判重的向量移出暂存区，后续比较不再包含它们
func (s *QuestionAnswerVectorStore) BatchDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": ids})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// DeleteByTaskID 删除任务下全部暂存向量
func (s *QuestionAnswerVectorStore) DeleteByTaskID(ctx context.Context, taskID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"task_id": taskID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
