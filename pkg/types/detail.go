package types

// TransformDetail 单个清洗/去隐私算子作用于单个 chunk 的审计记录。
// 同一 (task_id, document_id, document_chunk_id) 组合重试前会先删除旧记录，
// 保证审计数据不因重试而重复。
type TransformDetail struct {
	ID              string        `json:"id" db:"id"`
	TaskID          string        `json:"task_id" db:"task_id"`
	DocumentID      string        `json:"document_id" db:"document_id"`
	DocumentChunkID string        `json:"document_chunk_id" db:"document_chunk_id"`
	FileName        string        `json:"file_name" db:"file_name"`
	TransformType   string        `json:"transform_type" db:"transform_type"`
	PreContent      string        `json:"pre_content" db:"pre_content"`
	PostContent     string        `json:"post_content" db:"post_content"`
	Status          ProcessStatus `json:"status" db:"status"`
	ErrorMessage    string        `json:"error_message" db:"error_message"`
	AuditFields
}
