package types

import "github.com/pgvector/pgvector-go"

// QuestionAnswerPair QA 拆分阶段的原始产出
type QuestionAnswerPair struct {
	ID              string `json:"id" db:"id"`
	TaskID          string `json:"task_id" db:"task_id"`
	DocumentID      string `json:"document_id" db:"document_id"`
	DocumentChunkID string `json:"document_chunk_id" db:"document_chunk_id"`
	FileName        string `json:"file_name" db:"file_name"`
	Question        string `json:"question" db:"question"`
	Answer          string `json:"answer" db:"answer"`
	AuditFields
}

const (
	QA_DUPLICATED = 0 // 与某条保留记录语义重复
	QA_UNIQUE     = 1 // 唯一/保留记录
)

// QuestionAnswerClean 去重后的 QA 产出，原始表的完整超集：
// 每条 QuestionAnswerPair 恰好对应一条 clean 记录。
type QuestionAnswerClean struct {
	ID              string  `json:"id" db:"id"`
	TaskID          string  `json:"task_id" db:"task_id"`
	DocumentID      string  `json:"document_id" db:"document_id"`
	DocumentChunkID string  `json:"document_chunk_id" db:"document_chunk_id"`
	FileName        string  `json:"file_name" db:"file_name"`
	Question        string  `json:"question" db:"question"`
	Answer          string  `json:"answer" db:"answer"`
	QuestionScore   float64 `json:"question_score" db:"question_score"`
	AnswerScore     float64 `json:"answer_score" db:"answer_score"`
	DuplicatedFlag  int     `json:"duplicated_flag" db:"duplicated_flag"`
	CompareWithID   string  `json:"compare_with_id" db:"compare_with_id"`
	AuditFields
}

// QuestionAnswerVector 去重比较期间的向量暂存记录，主键与 pair id 一致；
// 被判定为重复的 pair 对应的记录会被删除，不再参与后续比较。
type QuestionAnswerVector struct {
	ID             string          `json:"id" db:"id"`
	TaskID         string          `json:"task_id" db:"task_id"`
	DocumentID     string          `json:"document_id" db:"document_id"`
	QuestionVector pgvector.Vector `json:"question_vector" db:"question_vector"`
	AnswerVector   pgvector.Vector `json:"answer_vector" db:"answer_vector"`
	AuditFields
}
