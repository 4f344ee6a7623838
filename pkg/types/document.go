package types

import "encoding/json"

type ProcessStatus string

const (
	PROCESS_STATUS_NOT_START ProcessStatus = "not_start"
	PROCESS_STATUS_DOING     ProcessStatus = "doing"
	PROCESS_STATUS_SUCCESS   ProcessStatus = "success"
	PROCESS_STATUS_FAIL      ProcessStatus = "fail"
)

func (s ProcessStatus) String() string {
	return string(s)
}

type DocumentType string

const (
	DOCUMENT_TYPE_PDF  DocumentType = "pdf"
	DOCUMENT_TYPE_DOCX DocumentType = "docx"
	DOCUMENT_TYPE_WEB  DocumentType = "web"
	DOCUMENT_TYPE_CSV  DocumentType = "csv"
	DOCUMENT_TYPE_TXT  DocumentType = "txt"
)

// Document 任务内的一个源文件
type Document struct {
	ID            string        `json:"id" db:"id"`
	TaskID        string        `json:"task_id" db:"task_id"`
	FileName      string        `json:"file_name" db:"file_name"`
	DocumentType  DocumentType  `json:"document_type" db:"document_type"`
	Status        ProcessStatus `json:"status" db:"status"`
	Progress      int           `json:"progress" db:"progress"`
	// ChunkSize 切分出的分片总数，文档开始处理时写入
	ChunkSize     int           `json:"chunk_size" db:"chunk_size"`
	StartDatetime int64         `json:"start_datetime" db:"start_datetime"`
	EndDatetime   int64         `json:"end_datetime" db:"end_datetime"`
	AuditFields
}

// DocumentChunk 文档切分后的内容块，重试与恢复的最小单元。
// 状态机:  not_start → doing → {success, fail}，每次执行只走一遍；
// 重试时只会重新处理 status != success 的块。
type DocumentChunk struct {
	ID            string          `json:"id" db:"id"`
	DocumentID    string          `json:"document_id" db:"document_id"`
	TaskID        string          `json:"task_id" db:"task_id"`
	Content       string          `json:"content" db:"content"`
	MetaInfo      json.RawMessage `json:"meta_info" db:"meta_info"`
	Status        ProcessStatus   `json:"status" db:"status"`
	StartDatetime int64           `json:"start_datetime" db:"start_datetime"`
	EndDatetime   int64           `json:"end_datetime" db:"end_datetime"`
	AuditFields
}

// ChunkMeta meta_info 字段结构
type ChunkMeta struct {
	Source     string `json:"source"`
	PageNumber int    `json:"page_number"`
}

func (c DocumentChunk) Meta() (ChunkMeta, error) {
	var meta ChunkMeta
	if len(c.MetaInfo) == 0 {
		return meta, nil
	}
	err := json.Unmarshal(c.MetaInfo, &meta)
	return meta, err
}

func (m ChunkMeta) JSON() json.RawMessage {
	raw, _ := json.Marshal(m)
	return raw
}
