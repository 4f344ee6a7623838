package process

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/avast/retry-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataprep-ai/dataprep/pkg/ai"
	"github.com/dataprep-ai/dataprep/pkg/dataset"
	"github.com/dataprep-ai/dataprep/pkg/transform"
	"github.com/dataprep-ai/dataprep/pkg/types"
	"github.com/dataprep-ai/dataprep/pkg/utils"
)

func TestMain(m *testing.M) {
	utils.SetupIDWorker(1)
	os.Exit(m.Run())
}

func newTestProcessor(t *testing.T, store *memStore, aiSrv AIService, notifier *dataset.Notifier) *Processor {
	t.Helper()
	return NewProcessor(Options{
		Store:         store,
		AI:            aiSrv,
		Notifier:      notifier,
		DownloadDir:   t.TempDir(),
		CreateProgram: "dataprep-test",
	})
}

func mustConfig(t *testing.T, options []types.TransformOption) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(options)
	require.NoError(t, err)
	return raw
}

func seedTask(t *testing.T, s *memStore, options []types.TransformOption, chunkContents []string,
	chunkStatus types.ProcessStatus) (types.Task, types.Document, []types.DocumentChunk) {
	t.Helper()
	ctx := context.Background()

	task := types.Task{
		ID:                 utils.GenUniqIDStr(),
		Name:               "weekly-report",
		Namespace:          "default",
		FileType:           "txt",
		Status:             types.TASK_STATUS_PROCESSING,
		PostDatasetName:    "report-qa",
		PostDatasetVersion: "v1",
		Config:             mustConfig(t, options),
	}
	task.CurrentLogID = utils.GenUniqIDStr()
	require.NoError(t, s.TaskStore().Create(ctx, task))
	require.NoError(t, s.TaskLogStore().Create(ctx, types.TaskLog{
		ID:     task.CurrentLogID,
		TaskID: task.ID,
		Type:   types.TASK_LOG_TYPE_NOW,
		Status: types.TASK_STATUS_PROCESSING,
	}))

	doc := types.Document{
		ID:           utils.GenUniqIDStr(),
		TaskID:       task.ID,
		FileName:     "sample.txt",
		DocumentType: types.DOCUMENT_TYPE_TXT,
		Status:       types.PROCESS_STATUS_NOT_START,
	}
	require.NoError(t, s.DocumentStore().Create(ctx, doc))

	var chunks []types.DocumentChunk
	for _, content := range chunkContents {
		chunk := types.DocumentChunk{
			ID:         utils.GenUniqIDStr(),
			DocumentID: doc.ID,
			TaskID:     task.ID,
			Content:    content,
			Status:     chunkStatus,
		}
		require.NoError(t, s.DocumentChunkStore().BatchCreate(ctx, []*types.DocumentChunk{&chunk}))
		chunks = append(chunks, chunk)
	}
	return task, doc, chunks
}

func qaSplitOptions(removeDuplicate bool) []types.TransformOption {
	return []types.TransformOption{
		{Type: types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS},
		{Type: types.TRANSFORM_REMOVE_EMAIL},
		{
			Type: types.TRANSFORM_QA_SPLIT,
			LLMConfig: &types.LLMConfig{
				Provider:        types.LLM_PROVIDER_WORKER,
				Model:           "test-model",
				RemoveDuplicate: removeDuplicate,
			},
		},
	}
}

func TestProcessTaskCompletes(t *testing.T) {
	s := newMemStore()
	driver := &fakeDriver{
		qaResult: []ai.QAPair{{Question: "什么是周报", Answer: "每周一次的工作总结"}},
	}
	p := newTestProcessor(t, s, &fakeAIService{driver: driver}, nil)

	task, doc, chunks := seedTask(t, s, qaSplitOptions(false), []string{
		"Hello​World, contact me at someone@example.com",
		"第二段内容没有需要清理的东西",
	}, types.PROCESS_STATUS_NOT_START)

	p.ProcessTask(context.Background(), task, task.CurrentLogID)

	stored, err := s.TaskStore().Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TASK_STATUS_PROCESS_COMPLETE, stored.Status)
	assert.NotZero(t, stored.EndDatetime)

	taskLog, err := s.TaskLogStore().Get(context.Background(), task.CurrentLogID)
	require.NoError(t, err)
	assert.Equal(t, types.TASK_STATUS_PROCESS_COMPLETE, taskLog.Status)
	assert.Empty(t, taskLog.ErrorMsg)

	storedDoc, err := s.DocumentStore().Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, storedDoc.Status)
	assert.Equal(t, 100, storedDoc.Progress)
	// chunk_size 记录的是切分出的分片总数
	assert.Equal(t, len(chunks), storedDoc.ChunkSize)
	assert.NotZero(t, storedDoc.StartDatetime)

	all, err := s.DocumentChunkStore().ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, all, len(chunks))
	for _, chunk := range all {
		assert.Equal(t, types.PROCESS_STATUS_SUCCESS, chunk.Status)
		assert.NotZero(t, chunk.StartDatetime)
		assert.NotZero(t, chunk.EndDatetime)
	}

	// 第一段包含零宽字符与邮箱，应产生两类算子明细
	details, err := s.TransformDetailStore().ListByTaskID(context.Background(), task.ID, 0)
	require.NoError(t, err)
	detailTypes := make(map[string]bool)
	for _, d := range details {
		detailTypes[d.TransformType] = true
	}
	assert.True(t, detailTypes[types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS])
	assert.True(t, detailTypes[types.TRANSFORM_REMOVE_EMAIL])

	pairs, err := s.QuestionAnswerStore().ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Len(t, pairs, len(chunks))
	assert.Equal(t, len(chunks), driver.calls())

	// 未开启去重时全部 QA 直接保留
	cleaned, err := s.QuestionAnswerCleanStore().ListUniqueByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Len(t, cleaned, len(pairs))

	stages, err := s.StageLogStore().ListByLogID(context.Background(), task.ID, task.CurrentLogID)
	require.NoError(t, err)
	seen := make(map[types.Stage]types.ProcessStatus)
	for _, l := range stages {
		seen[l.Stage] = l.Status
	}
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, seen[types.STAGE_START])
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, seen[types.STAGE_CLEAN])
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, seen[types.STAGE_PRIVACY])
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, seen[types.STAGE_QA_SPLIT])
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, seen[types.STAGE_FINISH])

	// 对象存储未配置，导出文件应留在本地
	_, err = os.Stat(filepath.Join(p.downloadDir, "sample_final.csv"))
	assert.NoError(t, err)
}

// brokenTransform 固定报错的算子
type brokenTransform struct{}

func (brokenTransform) Type() string { return types.TRANSFORM_REMOVE_HTML_TAG }

func (brokenTransform) Apply(text string) (transform.Result, error) {
	return transform.Result{}, assert.AnError
}

func TestTransformFailureDoesNotAbortChunk(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(t, s, &fakeAIService{driver: &fakeDriver{}}, nil)

	task, doc, chunks := seedTask(t, s, nil, []string{"内容​继续"}, types.PROCESS_STATUS_NOT_START)

	pipeline := &transform.Pipeline{Clean: []transform.Transform{
		brokenTransform{},
		&transform.InvisibleCharacterCleaner{},
	}}
	agg := newStageAggregator()

	err := p.processChunk(context.Background(), task, doc, chunks[0], pipeline, nil, nil, agg)
	require.NoError(t, err)

	stored, err := s.DocumentChunkStore().ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, stored[0].Status)

	// 失败算子落 fail 明细，后续算子照常执行并落 success 明细
	details, err := s.TransformDetailStore().ListByTaskID(context.Background(), task.ID, 0)
	require.NoError(t, err)
	byType := make(map[string]types.ProcessStatus)
	for _, d := range details {
		byType[d.TransformType] = d.Status
	}
	assert.Equal(t, types.PROCESS_STATUS_FAIL, byType[types.TRANSFORM_REMOVE_HTML_TAG])
	assert.Equal(t, types.PROCESS_STATUS_SUCCESS, byType[types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS])
}

func TestResumeSkipsSuccessfulChunks(t *testing.T) {
	s := newMemStore()
	driver := &fakeDriver{
		qaResult: []ai.QAPair{{Question: "Q", Answer: "A"}},
	}
	p := newTestProcessor(t, s, &fakeAIService{driver: driver}, nil)

	task, doc, chunks := seedTask(t, s, qaSplitOptions(false), []string{
		"已经处理成功的段落",
		"上一轮失败的段落",
	}, types.PROCESS_STATUS_NOT_START)

	ctx := context.Background()
	require.NoError(t, s.DocumentChunkStore().SetStatus(ctx, chunks[0].ID, types.PROCESS_STATUS_SUCCESS, 1))
	require.NoError(t, s.DocumentChunkStore().SetStatus(ctx, chunks[1].ID, types.PROCESS_STATUS_FAIL, 1))
	// 成功分片上一轮的产出必须原样保留
	require.NoError(t, s.QuestionAnswerStore().BatchCreate(ctx, []*types.QuestionAnswerPair{{
		ID:              "kept-pair",
		TaskID:          task.ID,
		DocumentID:      doc.ID,
		DocumentChunkID: chunks[0].ID,
		Question:        "旧问题",
		Answer:          "旧答案",
	}}))

	p.ProcessTask(ctx, task, task.CurrentLogID)

	assert.Equal(t, 1, driver.calls())

	pairs, err := s.QuestionAnswerStore().ListByDocumentID(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	byID := make(map[string]types.QuestionAnswerPair)
	for _, pair := range pairs {
		byID[pair.ID] = pair
	}
	assert.Contains(t, byID, "kept-pair")
}

func TestRetryReplacesPreviousChunkResults(t *testing.T) {
	s := newMemStore()
	driver := &fakeDriver{
		qaResult: []ai.QAPair{{Question: "新问题", Answer: "新答案"}},
	}
	p := newTestProcessor(t, s, &fakeAIService{driver: driver}, nil)

	task, doc, chunks := seedTask(t, s, qaSplitOptions(false), []string{
		"重试的段落",
	}, types.PROCESS_STATUS_FAIL)

	ctx := context.Background()
	// 上一轮的残留产物
	require.NoError(t, s.QuestionAnswerStore().BatchCreate(ctx, []*types.QuestionAnswerPair{
		{ID: "stale-1", TaskID: task.ID, DocumentID: doc.ID, DocumentChunkID: chunks[0].ID},
		{ID: "stale-2", TaskID: task.ID, DocumentID: doc.ID, DocumentChunkID: chunks[0].ID},
	}))
	require.NoError(t, s.TransformDetailStore().BatchCreate(ctx, []*types.TransformDetail{
		{ID: "stale-detail", TaskID: task.ID, DocumentID: doc.ID, DocumentChunkID: chunks[0].ID},
	}))

	p.ProcessTask(ctx, task, task.CurrentLogID)

	pairs, err := s.QuestionAnswerStore().ListByDocumentID(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "新问题", pairs[0].Question)
	assert.NotEqual(t, "stale-1", pairs[0].ID)

	details, err := s.TransformDetailStore().ListByTaskID(ctx, task.ID, 0)
	require.NoError(t, err)
	for _, d := range details {
		assert.NotEqual(t, "stale-detail", d.ID)
	}
}

func TestDeduplicateDropsComparedVectors(t *testing.T) {
	s := newMemStore()
	// A 与 B 相似，B 与 C 相似，但 A 与 C 不相似。
	// B 判重后其向量退出比较，C 不应再被 B 连带判重。
	driver := &fakeDriver{
		embedByText: map[string][]float32{
			"qa": {1, 0, 0}, "aa": {1, 0, 0},
			"qb": {0.95, 0.31225, 0}, "ab": {0.95, 0.31225, 0},
			"qc": {0.8, 0.6, 0}, "ac": {0.8, 0.6, 0},
		},
	}
	p := newTestProcessor(t, s, &fakeAIService{driver: driver}, nil)

	task := types.Task{ID: "t1"}
	doc := types.Document{ID: "d1", TaskID: "t1"}
	pairs := []types.QuestionAnswerPair{
		{ID: "A", TaskID: "t1", DocumentID: "d1", Question: "qa", Answer: "aa"},
		{ID: "B", TaskID: "t1", DocumentID: "d1", Question: "qb", Answer: "ab"},
		{ID: "C", TaskID: "t1", DocumentID: "d1", Question: "qc", Answer: "ac"},
	}

	cleaned, err := p.deduplicate(context.Background(), task, doc, pairs, driver, 0.9)
	require.NoError(t, err)
	require.Len(t, cleaned, 3)

	byID := make(map[string]*types.QuestionAnswerClean)
	for _, row := range cleaned {
		byID[row.ID] = row
	}

	assert.Equal(t, types.QA_UNIQUE, byID["A"].DuplicatedFlag)

	assert.Equal(t, types.QA_DUPLICATED, byID["B"].DuplicatedFlag)
	assert.Equal(t, "A", byID["B"].CompareWithID)
	assert.InDelta(t, 0.95, byID["B"].QuestionScore, 0.001)

	assert.Equal(t, types.QA_UNIQUE, byID["C"].DuplicatedFlag)
	assert.Empty(t, byID["C"].CompareWithID)

	// 暂存向量表里只剩保留记录
	vectors, err := s.QuestionAnswerVectorStore().ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	ids := make([]string, 0, len(vectors))
	for _, v := range vectors {
		ids = append(ids, v.ID)
	}
	assert.ElementsMatch(t, []string{"A", "C"}, ids)
}

type failingStatusClient struct{}

func (failingStatusClient) GetStatus(ctx context.Context, namespace, name string) ([]dataset.Condition, error) {
	return nil, assert.AnError
}

func (failingStatusClient) PatchStatus(ctx context.Context, namespace, name string, conditions []dataset.Condition) error {
	return assert.AnError
}

func TestNotifyFailureOverridesTerminalStatus(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(t, s, &fakeAIService{driver: &fakeDriver{}}, dataset.NewNotifier(failingStatusClient{}))

	task, _, _ := seedTask(t, s, []types.TransformOption{
		{Type: types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS},
	}, []string{"正常内容"}, types.PROCESS_STATUS_NOT_START)

	p.ProcessTask(context.Background(), task, task.CurrentLogID)

	stored, err := s.TaskStore().Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TASK_STATUS_PROCESS_FAIL, stored.Status)

	taskLog, err := s.TaskLogStore().Get(context.Background(), task.CurrentLogID)
	require.NoError(t, err)
	assert.Contains(t, taskLog.ErrorMsg, "dataset")
}

type recordingStatusClient struct {
	conditions []dataset.Condition
}

func (c *recordingStatusClient) GetStatus(ctx context.Context, namespace, name string) ([]dataset.Condition, error) {
	return c.conditions, nil
}

func (c *recordingStatusClient) PatchStatus(ctx context.Context, namespace, name string, conditions []dataset.Condition) error {
	c.conditions = conditions
	return nil
}

func TestGenerationFailurePropagatesToTaskAndCondition(t *testing.T) {
	s := newMemStore()
	client := &recordingStatusClient{}
	driver := &fakeDriver{qaErr: retry.Unrecoverable(assert.AnError)}
	p := newTestProcessor(t, s, &fakeAIService{driver: driver}, dataset.NewNotifier(client))

	task, doc, chunks := seedTask(t, s, qaSplitOptions(false), []string{"目标内容"}, types.PROCESS_STATUS_NOT_START)

	p.ProcessTask(context.Background(), task, task.CurrentLogID)

	storedChunks, err := s.DocumentChunkStore().ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, storedChunks, len(chunks))
	assert.Equal(t, types.PROCESS_STATUS_FAIL, storedChunks[0].Status)

	storedDoc, err := s.DocumentStore().Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PROCESS_STATUS_FAIL, storedDoc.Status)

	storedTask, err := s.TaskStore().Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TASK_STATUS_PROCESS_FAIL, storedTask.Status)

	require.Len(t, client.conditions, 1)
	assert.Equal(t, dataset.ConditionTypeDataProcessing, client.conditions[0].Type)
	assert.Equal(t, types.TASK_STATUS_PROCESS_FAIL.String(), client.conditions[0].Reason)
}

func TestUnsupportedProviderFailsTask(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(t, s, &fakeAIService{resolveErr: ai.ErrUnsupportedProvider}, nil)

	task, _, _ := seedTask(t, s, qaSplitOptions(false), []string{"内容"}, types.PROCESS_STATUS_NOT_START)

	p.ProcessTask(context.Background(), task, task.CurrentLogID)

	stored, err := s.TaskStore().Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TASK_STATUS_PROCESS_FAIL, stored.Status)

	stages, err := s.StageLogStore().ListByLogID(context.Background(), task.ID, task.CurrentLogID)
	require.NoError(t, err)
	require.NotEmpty(t, stages)
	assert.Equal(t, types.STAGE_START, stages[0].Stage)
	assert.Equal(t, types.PROCESS_STATUS_FAIL, stages[0].Status)
}

func TestCancelledRunWritesNoTerminalState(t *testing.T) {
	s := newMemStore()
	p := newTestProcessor(t, s, &fakeAIService{driver: &fakeDriver{}}, nil)

	task, _, _ := seedTask(t, s, qaSplitOptions(false), []string{"内容"}, types.PROCESS_STATUS_NOT_START)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.ProcessTask(ctx, task, task.CurrentLogID)

	stored, err := s.TaskStore().Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TASK_STATUS_PROCESSING, stored.Status)
}

func TestWorkerManager(t *testing.T) {
	m := &workerManager{workers: make(map[string]context.CancelFunc)}

	_, cancel := context.WithCancel(context.Background())
	assert.True(t, m.add("task-1", cancel))
	assert.False(t, m.add("task-1", cancel))
	assert.True(t, m.running("task-1"))

	m.cancel("task-1")
	assert.False(t, m.running("task-1"))

	m.remove("task-1")
	assert.True(t, m.add("task-1", cancel))
}
