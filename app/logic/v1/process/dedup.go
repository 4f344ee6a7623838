package process

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"github.com/samber/lo"

	"github.com/dataprep-ai/dataprep/pkg/ai"
	"github.com/dataprep-ai/dataprep/pkg/errors"
	"github.com/dataprep-ai/dataprep/pkg/types"
	"github.com/dataprep-ai/dataprep/pkg/utils"
)

// DefaultSimilarityThreshold 问题与答案余弦相似度同时超过该值判定为重复
const DefaultSimilarityThreshold = 0.9

// deduplicate 文档级 QA 去重。先向量化全部问答对并暂存，再按创建顺序
// 两两比较：问题与答案相似度同时超过阈值的后者判定为重复，其暂存向量
// 随即删除，不再参与后续比较，因此与已删除记录相似的条目只会归到
// 最早的保留记录上。
func (p *Processor) deduplicate(ctx context.Context, task types.Task, doc types.Document,
	pairs []types.QuestionAnswerPair, driver ai.EmbeddingDriver, threshold float64) ([]*types.QuestionAnswerClean, error) {

	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	questions := lo.Map(pairs, func(pair types.QuestionAnswerPair, _ int) string { return pair.Question })
	answers := lo.Map(pairs, func(pair types.QuestionAnswerPair, _ int) string { return pair.Answer })

	questionVectors, err := p.embed(ctx, driver, questions)
	if err != nil {
		return nil, errors.New("Processor.deduplicate.embed", "failed to embed questions", err)
	}
	answerVectors, err := p.embed(ctx, driver, answers)
	if err != nil {
		return nil, errors.New("Processor.deduplicate.embed", "failed to embed answers", err)
	}
	if len(questionVectors) != len(pairs) || len(answerVectors) != len(pairs) {
		return nil, errors.New("Processor.deduplicate", "embedding result count mismatch", nil)
	}

	staged := make([]*types.QuestionAnswerVector, 0, len(pairs))
	for i, pair := range pairs {
		staged = append(staged, &types.QuestionAnswerVector{
			ID:             pair.ID,
			TaskID:         pair.TaskID,
			DocumentID:     pair.DocumentID,
			QuestionVector: pgvector.NewVector(questionVectors[i]),
			AnswerVector:   pgvector.NewVector(answerVectors[i]),
			AuditFields:    p.audit(),
		})
	}
	if err := p.store.QuestionAnswerVectorStore().BatchCreate(ctx, staged); err != nil {
		return nil, errors.New("Processor.deduplicate.QuestionAnswerVectorStore.BatchCreate", "failed to stage vectors", err)
	}

	type verdict struct {
		duplicated    bool
		compareWithID string
		questionScore float64
		answerScore   float64
	}
	verdicts := make([]verdict, len(pairs))
	alive := make([]bool, len(pairs))
	for i := range alive {
		alive[i] = true
	}

	var removed []string
	for i := range pairs {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(pairs); j++ {
			if !alive[j] {
				continue
			}
			questionScore := utils.CosineSimilarity(questionVectors[i], questionVectors[j])
			answerScore := utils.CosineSimilarity(answerVectors[i], answerVectors[j])
			if questionScore > threshold && answerScore > threshold {
				verdicts[j] = verdict{
					duplicated:    true,
					compareWithID: pairs[i].ID,
					questionScore: questionScore,
					answerScore:   answerScore,
				}
				alive[j] = false
				removed = append(removed, pairs[j].ID)
			}
		}
	}

	if len(removed) > 0 {
		if err := p.store.QuestionAnswerVectorStore().BatchDelete(ctx, removed); err != nil {
			return nil, errors.New("Processor.deduplicate.QuestionAnswerVectorStore.BatchDelete", "failed to drop duplicated vectors", err)
		}
	}

	cleaned := make([]*types.QuestionAnswerClean, 0, len(pairs))
	for i, pair := range pairs {
		row := &types.QuestionAnswerClean{
			ID:              pair.ID,
			TaskID:          pair.TaskID,
			DocumentID:      pair.DocumentID,
			DocumentChunkID: pair.DocumentChunkID,
			FileName:        pair.FileName,
			Question:        pair.Question,
			Answer:          pair.Answer,
			DuplicatedFlag:  types.QA_UNIQUE,
			AuditFields:     p.audit(),
		}
		if verdicts[i].duplicated {
			row.DuplicatedFlag = types.QA_DUPLICATED
			row.CompareWithID = verdicts[i].compareWithID
			row.QuestionScore = verdicts[i].questionScore
			row.AnswerScore = verdicts[i].answerScore
		}
		cleaned = append(cleaned, row)
	}
	return cleaned, nil
}

func (p *Processor) embed(ctx context.Context, driver ai.EmbeddingDriver, content []string) ([][]float32, error) {
	if err := p.ai.Wait(ctx); err != nil {
		return nil, err
	}
	callCtx, cancel := p.ai.WithTimeout(ctx)
	defer cancel()

	result, err := driver.Embedding(callCtx, content)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
