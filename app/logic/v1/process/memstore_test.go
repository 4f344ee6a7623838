package process

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dataprep-ai/dataprep/app/store"
	"github.com/dataprep-ai/dataprep/pkg/ai"
	"github.com/dataprep-ai/dataprep/pkg/types"
)

// memStore 测试用的内存存储，保持插入顺序以模拟按创建时间排序的查询
type memStore struct {
	mu        sync.Mutex
	tasks     []*types.Task
	taskLogs  []*types.TaskLog
	stageLogs []*types.StageLog
	documents []*types.Document
	chunks    []*types.DocumentChunk
	details   []*types.TransformDetail
	pairs     []*types.QuestionAnswerPair
	clean     []*types.QuestionAnswerClean
	vectors   []*types.QuestionAnswerVector
}

func newMemStore() *memStore {
	return &memStore{}
}

type fakeTable struct{ name string }

func (f fakeTable) GetTable(...interface{}) string { return f.name }

func (s *memStore) TaskStore() store.TaskStore                 { return &memTaskStore{s, fakeTable{"task"}} }
func (s *memStore) TaskLogStore() store.TaskLogStore           { return &memTaskLogStore{s, fakeTable{"task_log"}} }
func (s *memStore) StageLogStore() store.StageLogStore         { return &memStageLogStore{s, fakeTable{"stage_log"}} }
func (s *memStore) DocumentStore() store.DocumentStore         { return &memDocumentStore{s, fakeTable{"document"}} }
func (s *memStore) DocumentChunkStore() store.DocumentChunkStore {
	return &memChunkStore{s, fakeTable{"document_chunk"}}
}
func (s *memStore) TransformDetailStore() store.TransformDetailStore {
	return &memDetailStore{s, fakeTable{"transform_detail"}}
}
func (s *memStore) QuestionAnswerStore() store.QuestionAnswerStore {
	return &memQAStore{s, fakeTable{"question_answer"}}
}
func (s *memStore) QuestionAnswerCleanStore() store.QuestionAnswerCleanStore {
	return &memQACleanStore{s, fakeTable{"question_answer_clean"}}
}
func (s *memStore) QuestionAnswerVectorStore() store.QuestionAnswerVectorStore {
	return &memQAVectorStore{s, fakeTable{"question_answer_vector"}}
}

func (s *memStore) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memTaskStore struct {
	s *memStore
	fakeTable
}

func (m *memTaskStore) Create(_ context.Context, data types.Task) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.tasks = append(m.s.tasks, &data)
	return nil
}

func (m *memTaskStore) Get(_ context.Context, id string) (*types.Task, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, t := range m.s.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("task %s not found", id)
}

func (m *memTaskStore) SetStatus(_ context.Context, id string, status types.TaskStatus, endDatetime int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, t := range m.s.tasks {
		if t.ID == id {
			t.Status = status
			if endDatetime > 0 {
				t.EndDatetime = endDatetime
			}
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func (m *memTaskStore) SetCurrentLog(_ context.Context, id, logID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, t := range m.s.tasks {
		if t.ID == id {
			t.CurrentLogID = logID
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func (m *memTaskStore) List(_ context.Context, opts types.ListTaskOptions, page, pageSize uint64) ([]types.Task, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.Task
	for _, t := range m.s.tasks {
		if opts.Status != nil && t.Status != *opts.Status {
			continue
		}
		if opts.Namespace != "" && t.Namespace != opts.Namespace {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

func (m *memTaskStore) Total(_ context.Context, opts types.ListTaskOptions) (int64, error) {
	list, _ := m.List(context.Background(), opts, 0, 0)
	return int64(len(list)), nil
}

func (m *memTaskStore) Delete(_ context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i, t := range m.s.tasks {
		if t.ID == id {
			m.s.tasks = append(m.s.tasks[:i], m.s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

type memTaskLogStore struct {
	s *memStore
	fakeTable
}

func (m *memTaskLogStore) Create(_ context.Context, data types.TaskLog) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.taskLogs = append(m.s.taskLogs, &data)
	return nil
}

func (m *memTaskLogStore) Get(_ context.Context, id string) (*types.TaskLog, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, l := range m.s.taskLogs {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("task log %s not found", id)
}

func (m *memTaskLogStore) Finish(_ context.Context, id string, status types.TaskStatus, errorMsg string, endDatetime int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, l := range m.s.taskLogs {
		if l.ID == id {
			l.Status = status
			l.ErrorMsg = errorMsg
			l.EndDatetime = endDatetime
			return nil
		}
	}
	return fmt.Errorf("task log %s not found", id)
}

func (m *memTaskLogStore) ListByTaskID(_ context.Context, taskID string) ([]types.TaskLog, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.TaskLog
	for _, l := range m.s.taskLogs {
		if l.TaskID == taskID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *memTaskLogStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.taskLogs[:0]
	for _, l := range m.s.taskLogs {
		if l.TaskID != taskID {
			kept = append(kept, l)
		}
	}
	m.s.taskLogs = kept
	return nil
}

type memStageLogStore struct {
	s *memStore
	fakeTable
}

func (m *memStageLogStore) Create(_ context.Context, data types.StageLog) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.stageLogs = append(m.s.stageLogs, &data)
	return nil
}

func (m *memStageLogStore) ListByLogID(_ context.Context, taskID, logID string) ([]types.StageLog, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.StageLog
	for _, l := range m.s.stageLogs {
		if l.TaskID == taskID && l.LogID == logID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *memStageLogStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.stageLogs[:0]
	for _, l := range m.s.stageLogs {
		if l.TaskID != taskID {
			kept = append(kept, l)
		}
	}
	m.s.stageLogs = kept
	return nil
}

type memDocumentStore struct {
	s *memStore
	fakeTable
}

func (m *memDocumentStore) Create(_ context.Context, data types.Document) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.documents = append(m.s.documents, &data)
	return nil
}

func (m *memDocumentStore) Get(_ context.Context, id string) (*types.Document, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, d := range m.s.documents {
		if d.ID == id {
			copied := *d
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("document %s not found", id)
}

func (m *memDocumentStore) ListByTaskID(_ context.Context, taskID string) ([]types.Document, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.Document
	for _, d := range m.s.documents {
		if d.TaskID == taskID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *memDocumentStore) SetStarted(_ context.Context, id string, chunkCount int, startDatetime int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, d := range m.s.documents {
		if d.ID == id {
			d.ChunkSize = chunkCount
			d.StartDatetime = startDatetime
			return nil
		}
	}
	return fmt.Errorf("document %s not found", id)
}

func (m *memDocumentStore) SetStatus(_ context.Context, id string, status types.ProcessStatus, endDatetime int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, d := range m.s.documents {
		if d.ID == id {
			d.Status = status
			if endDatetime > 0 {
				d.EndDatetime = endDatetime
			}
			return nil
		}
	}
	return fmt.Errorf("document %s not found", id)
}

func (m *memDocumentStore) SetProgress(_ context.Context, id string, progress int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, d := range m.s.documents {
		if d.ID == id {
			d.Progress = progress
			return nil
		}
	}
	return fmt.Errorf("document %s not found", id)
}

func (m *memDocumentStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.documents[:0]
	for _, d := range m.s.documents {
		if d.TaskID != taskID {
			kept = append(kept, d)
		}
	}
	m.s.documents = kept
	return nil
}

type memChunkStore struct {
	s *memStore
	fakeTable
}

func (m *memChunkStore) BatchCreate(_ context.Context, data []*types.DocumentChunk) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range data {
		copied := *c
		m.s.chunks = append(m.s.chunks, &copied)
	}
	return nil
}

func (m *memChunkStore) ListByDocumentID(_ context.Context, documentID string) ([]types.DocumentChunk, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.DocumentChunk
	for _, c := range m.s.chunks {
		if c.DocumentID == documentID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *memChunkStore) ListIncomplete(_ context.Context, documentID string) ([]types.DocumentChunk, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.DocumentChunk
	for _, c := range m.s.chunks {
		if c.DocumentID == documentID && c.Status != types.PROCESS_STATUS_SUCCESS {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *memChunkStore) CountByDocumentID(_ context.Context, documentID string) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var n int64
	for _, c := range m.s.chunks {
		if c.DocumentID == documentID {
			n++
		}
	}
	return n, nil
}

func (m *memChunkStore) SetStarted(_ context.Context, id string, startDatetime int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range m.s.chunks {
		if c.ID == id {
			c.Status = types.PROCESS_STATUS_DOING
			c.StartDatetime = startDatetime
			return nil
		}
	}
	return fmt.Errorf("chunk %s not found", id)
}

func (m *memChunkStore) SetStatus(_ context.Context, id string, status types.ProcessStatus, endDatetime int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range m.s.chunks {
		if c.ID == id {
			c.Status = status
			if endDatetime > 0 {
				c.EndDatetime = endDatetime
			}
			return nil
		}
	}
	return fmt.Errorf("chunk %s not found", id)
}

func (m *memChunkStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.chunks[:0]
	for _, c := range m.s.chunks {
		if c.TaskID != taskID {
			kept = append(kept, c)
		}
	}
	m.s.chunks = kept
	return nil
}

type memDetailStore struct {
	s *memStore
	fakeTable
}

func (m *memDetailStore) BatchCreate(_ context.Context, data []*types.TransformDetail) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, d := range data {
		copied := *d
		m.s.details = append(m.s.details, &copied)
	}
	return nil
}

func (m *memDetailStore) DeleteByChunkID(_ context.Context, taskID, documentID, chunkID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.details[:0]
	for _, d := range m.s.details {
		if d.TaskID == taskID && d.DocumentID == documentID && d.DocumentChunkID == chunkID {
			continue
		}
		kept = append(kept, d)
	}
	m.s.details = kept
	return nil
}

func (m *memDetailStore) ListByTaskID(_ context.Context, taskID string, limit uint64) ([]types.TransformDetail, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.TransformDetail
	for _, d := range m.s.details {
		if d.TaskID == taskID {
			result = append(result, *d)
			if limit > 0 && uint64(len(result)) >= limit {
				break
			}
		}
	}
	return result, nil
}

func (m *memDetailStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.details[:0]
	for _, d := range m.s.details {
		if d.TaskID != taskID {
			kept = append(kept, d)
		}
	}
	m.s.details = kept
	return nil
}

type memQAStore struct {
	s *memStore
	fakeTable
}

func (m *memQAStore) BatchCreate(_ context.Context, data []*types.QuestionAnswerPair) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, p := range data {
		copied := *p
		m.s.pairs = append(m.s.pairs, &copied)
	}
	return nil
}

func (m *memQAStore) DeleteByChunkID(_ context.Context, taskID, documentID, chunkID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.pairs[:0]
	for _, p := range m.s.pairs {
		if p.TaskID == taskID && p.DocumentID == documentID && p.DocumentChunkID == chunkID {
			continue
		}
		kept = append(kept, p)
	}
	m.s.pairs = kept
	return nil
}

func (m *memQAStore) ListByDocumentID(_ context.Context, documentID string) ([]types.QuestionAnswerPair, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.QuestionAnswerPair
	for _, p := range m.s.pairs {
		if p.DocumentID == documentID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *memQAStore) ListByTaskID(_ context.Context, taskID string, limit uint64) ([]types.QuestionAnswerPair, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.QuestionAnswerPair
	for _, p := range m.s.pairs {
		if p.TaskID == taskID {
			result = append(result, *p)
			if limit > 0 && uint64(len(result)) >= limit {
				break
			}
		}
	}
	return result, nil
}

func (m *memQAStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.pairs[:0]
	for _, p := range m.s.pairs {
		if p.TaskID != taskID {
			kept = append(kept, p)
		}
	}
	m.s.pairs = kept
	return nil
}

type memQACleanStore struct {
	s *memStore
	fakeTable
}

func (m *memQACleanStore) BatchCreate(_ context.Context, data []*types.QuestionAnswerClean) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, r := range data {
		copied := *r
		m.s.clean = append(m.s.clean, &copied)
	}
	return nil
}

func (m *memQACleanStore) DeleteByDocumentID(_ context.Context, documentID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.clean[:0]
	for _, r := range m.s.clean {
		if r.DocumentID != documentID {
			kept = append(kept, r)
		}
	}
	m.s.clean = kept
	return nil
}

func (m *memQACleanStore) ListUniqueByDocumentID(_ context.Context, documentID string) ([]types.QuestionAnswerClean, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.QuestionAnswerClean
	for _, r := range m.s.clean {
		if r.DocumentID == documentID && r.DuplicatedFlag == types.QA_UNIQUE {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *memQACleanStore) ListByTaskID(_ context.Context, taskID string, limit uint64) ([]types.QuestionAnswerClean, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.QuestionAnswerClean
	for _, r := range m.s.clean {
		if r.TaskID == taskID {
			result = append(result, *r)
			if limit > 0 && uint64(len(result)) >= limit {
				break
			}
		}
	}
	return result, nil
}

func (m *memQACleanStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.clean[:0]
	for _, r := range m.s.clean {
		if r.TaskID != taskID {
			kept = append(kept, r)
		}
	}
	m.s.clean = kept
	return nil
}

type memQAVectorStore struct {
	s *memStore
	fakeTable
}

func (m *memQAVectorStore) BatchCreate(_ context.Context, data []*types.QuestionAnswerVector) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, v := range data {
		copied := *v
		m.s.vectors = append(m.s.vectors, &copied)
	}
	return nil
}

func (m *memQAVectorStore) ListByDocumentID(_ context.Context, documentID string) ([]types.QuestionAnswerVector, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var result []types.QuestionAnswerVector
	for _, v := range m.s.vectors {
		if v.DocumentID == documentID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (m *memQAVectorStore) BatchDelete(_ context.Context, ids []string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := m.s.vectors[:0]
	for _, v := range m.s.vectors {
		if _, ok := drop[v.ID]; !ok {
			kept = append(kept, v)
		}
	}
	m.s.vectors = kept
	return nil
}

func (m *memQAVectorStore) DeleteByTaskID(_ context.Context, taskID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	kept := m.s.vectors[:0]
	for _, v := range m.s.vectors {
		if v.TaskID != taskID {
			kept = append(kept, v)
		}
	}
	m.s.vectors = kept
	return nil
}

// fakeAIService 直接返回预置驱动，不限速不超时
type fakeAIService struct {
	driver     ai.Driver
	resolveErr error
}

func (f *fakeAIService) Resolve(cfg types.LLMConfig) (ai.Driver, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.driver, nil
}

func (f *fakeAIService) Wait(ctx context.Context) error {
	return ctx.Err()
}

func (f *fakeAIService) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

func (f *fakeAIService) QARetry() (uint, time.Duration) {
	return 2, time.Millisecond
}

// fakeDriver QA 与向量化的可编程驱动
type fakeDriver struct {
	mu          sync.Mutex
	qaCalls     int
	qaResult    []ai.QAPair
	qaErr       error
	embedByText map[string][]float32
}

func (f *fakeDriver) Lang() string { return ai.MODEL_BASE_LANGUAGE_CN }

func (f *fakeDriver) GenerateQA(ctx context.Context, text string, opts ai.GenerateOptions) ([]ai.QAPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.qaCalls++
	if f.qaErr != nil {
		return nil, f.qaErr
	}
	return f.qaResult, nil
}

func (f *fakeDriver) Embedding(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := ai.EmbeddingResult{Model: "fake-embedding"}
	for _, text := range content {
		vec, ok := f.embedByText[text]
		if !ok {
			vec = []float32{1, 0, 0}
		}
		result.Data = append(result.Data, vec)
	}
	return result, nil
}

func (f *fakeDriver) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.qaCalls
}
