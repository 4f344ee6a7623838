package store

import (
	"context"

	"github.com/dataprep-ai/dataprep/pkg/sqlstore"
	"github.com/dataprep-ai/dataprep/pkg/types"
)

// TaskStore 任务主表
type TaskStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Task) error
	Get(ctx context.Context, id string) (*types.Task, error)
	SetStatus(ctx context.Context, id string, status types.TaskStatus, endDatetime int64) error
	SetCurrentLog(ctx context.Context, id, logID string) error
	List(ctx context.Context, opts types.ListTaskOptions, page, pageSize uint64) ([]types.Task, error)
	Total(ctx context.Context, opts types.ListTaskOptions) (int64, error)
	Delete(ctx context.Context, id string) error
}

// TaskLogStore 任务执行记录表，一次执行（首次或重试）一条
type TaskLogStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.TaskLog) error
	Get(ctx context.Context, id string) (*types.TaskLog, error)
	Finish(ctx context.Context, id string, status types.TaskStatus, errorMsg string, endDatetime int64) error
	ListByTaskID(ctx context.Context, taskID string) ([]types.TaskLog, error)
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// StageLogStore 阶段日志表，追加式
type StageLogStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.StageLog) error
	ListByLogID(ctx context.Context, taskID, logID string) ([]types.StageLog, error)
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// DocumentStore 任务内源文件表
type DocumentStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Document) error
	Get(ctx context.Context, id string) (*types.Document, error)
	ListByTaskID(ctx context.Context, taskID string) ([]types.Document, error)
	// SetStarted 文档切分完成后写入分片总数与开始时间
	SetStarted(ctx context.Context, id string, chunkCount int, startDatetime int64) error
	SetStatus(ctx context.Context, id string, status types.ProcessStatus, endDatetime int64) error
	SetProgress(ctx context.Context, id string, progress int) error
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// DocumentChunkStore 文档分片表，重试与恢复的最小单元
type DocumentChunkStore interface {
	sqlstore.SqlCommons
	BatchCreate(ctx context.Context, data []*types.DocumentChunk) error
	ListByDocumentID(ctx context.Context, documentID string) ([]types.DocumentChunk, error)
	// ListIncomplete 重试入口：status != success 的分片，按创建顺序
	ListIncomplete(ctx context.Context, documentID string) ([]types.DocumentChunk, error)
	CountByDocumentID(ctx context.Context, documentID string) (int64, error)
	// SetStarted 分片进入 doing 状态并记录开始时间
	SetStarted(ctx context.Context, id string, startDatetime int64) error
	SetStatus(ctx context.Context, id string, status types.ProcessStatus, endDatetime int64) error
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// TransformDetailStore 算子审计明细表
type TransformDetailStore interface {
	sqlstore.SqlCommons
	BatchCreate(ctx context.Context, data []*types.TransformDetail) error
	// DeleteByChunkID 重试分片前清掉旧明细，保证审计不重复
	DeleteByChunkID(ctx context.Context, taskID, documentID, chunkID string) error
	ListByTaskID(ctx context.Context, taskID string, limit uint64) ([]types.TransformDetail, error)
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// QuestionAnswerStore QA 拆分原始产出表
type QuestionAnswerStore interface {
	sqlstore.SqlCommons
	BatchCreate(ctx context.Context, data []*types.QuestionAnswerPair) error
	DeleteByChunkID(ctx context.Context, taskID, documentID, chunkID string) error
	ListByDocumentID(ctx context.Context, documentID string) ([]types.QuestionAnswerPair, error)
	ListByTaskID(ctx context.Context, taskID string, limit uint64) ([]types.QuestionAnswerPair, error)
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// QuestionAnswerCleanStore 去重结论表，原始表的完整超集
type QuestionAnswerCleanStore interface {
	sqlstore.SqlCommons
	BatchCreate(ctx context.Context, data []*types.QuestionAnswerClean) error
	DeleteByDocumentID(ctx context.Context, documentID string) error
	ListUniqueByDocumentID(ctx context.Context, documentID string) ([]types.QuestionAnswerClean, error)
	ListByTaskID(ctx context.Context, taskID string, limit uint64) ([]types.QuestionAnswerClean, error)
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// QuestionAnswerVectorStore 去重期间的向量暂存表
type QuestionAnswerVectorStore interface {
	sqlstore.SqlCommons
	BatchCreate(ctx context.Context, data []*types.QuestionAnswerVector) error
	ListByDocumentID(ctx context.Context, documentID string) ([]types.QuestionAnswerVector, error)
	BatchDelete(ctx context.Context, ids []string) error
	DeleteByTaskID(ctx context.Context, taskID string) error
}

// Store 全部表存储的聚合入口，编排与接口逻辑只依赖该抽象
type Store interface {
	TaskStore() TaskStore
	TaskLogStore() TaskLogStore
	StageLogStore() StageLogStore
	DocumentStore() DocumentStore
	DocumentChunkStore() DocumentChunkStore
	TransformDetailStore() TransformDetailStore
	QuestionAnswerStore() QuestionAnswerStore
	QuestionAnswerCleanStore() QuestionAnswerCleanStore
	QuestionAnswerVectorStore() QuestionAnswerVectorStore

	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
