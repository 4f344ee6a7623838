package process

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"github.com/dataprep-ai/dataprep/app/core"
	"github.com/dataprep-ai/dataprep/app/store"
	"github.com/dataprep-ai/dataprep/pkg/ai"
	"github.com/dataprep-ai/dataprep/pkg/dataset"
	"github.com/dataprep-ai/dataprep/pkg/errors"
	"github.com/dataprep-ai/dataprep/pkg/loader"
	"github.com/dataprep-ai/dataprep/pkg/transform"
	"github.com/dataprep-ai/dataprep/pkg/types"
	"github.com/dataprep-ai/dataprep/pkg/utils"
)

// AIService 编排层对模型服务的最小依赖
type AIService interface {
	Resolve(cfg types.LLMConfig) (ai.Driver, error)
	Wait(ctx context.Context) error
	WithTimeout(ctx context.Context) (context.Context, context.CancelFunc)
	// QARetry QA 拆分的重试次数与基础间隔
	QARetry() (uint, time.Duration)
}

// ObjectStorage 编排层对对象存储的最小依赖。为 nil 时源文件路径按
// 本地文件处理，导出产物只落本地目录。
type ObjectStorage interface {
	Download(ctx context.Context, key, localDir string) (string, error)
	Upload(ctx context.Context, key string, body io.Reader, tags map[string]string) error
}

type Options struct {
	Store         store.Store
	AI            AIService
	Storage       ObjectStorage
	Notifier      *dataset.Notifier
	Metrics       *core.Metrics
	DownloadDir   string
	CreateProgram string
}

// Processor 数据处理任务的编排器。每个任务一个 worker 协程，
// 文档与分片串行处理，分片是重试与恢复的最小单元。
type Processor struct {
	store         store.Store
	ai            AIService
	storage       ObjectStorage
	notifier      *dataset.Notifier
	metrics       *core.Metrics
	downloadDir   string
	createProgram string
}

func NewProcessor(opts Options) *Processor {
	downloadDir := opts.DownloadDir
	if downloadDir == "" {
		downloadDir = "/tmp/dataprep"
	}
	return &Processor{
		store:         opts.Store,
		ai:            opts.AI,
		storage:       opts.Storage,
		notifier:      opts.Notifier,
		metrics:       opts.Metrics,
		downloadDir:   downloadDir,
		createProgram: opts.CreateProgram,
	}
}

func (p *Processor) audit() types.AuditFields {
	now := time.Now().Unix()
	return types.AuditFields{
		CreateDatetime: now,
		CreateProgram:  p.createProgram,
		UpdateDatetime: now,
		UpdateProgram:  p.createProgram,
	}
}

// RetryTask 为任务追加一条 RETRY 执行记录并重新派发 worker。
// 已经 success 的分片不会被重新处理。
func (p *Processor) RetryTask(ctx context.Context, taskID string) error {
	task, err := p.store.TaskStore().Get(ctx, taskID)
	if err != nil {
		return errors.New("Processor.RetryTask.TaskStore.Get", "task not found", err)
	}
	if Running(task.ID) {
		return errors.New("Processor.RetryTask", "task is already processing", nil)
	}

	taskLog := types.TaskLog{
		ID:            utils.GenUniqIDStr(),
		TaskID:        task.ID,
		Type:          types.TASK_LOG_TYPE_RETRY,
		Status:        types.TASK_STATUS_PROCESSING,
		StartDatetime: time.Now().Unix(),
		AuditFields:   p.audit(),
	}

	err = p.store.Transaction(ctx, func(ctx context.Context) error {
		if err := p.store.TaskLogStore().Create(ctx, taskLog); err != nil {
			return errors.New("Processor.RetryTask.TaskLogStore.Create", "failed to create task log", err)
		}
		if err := p.store.TaskStore().SetCurrentLog(ctx, task.ID, taskLog.ID); err != nil {
			return errors.New("Processor.RetryTask.TaskStore.SetCurrentLog", "failed to update current log", err)
		}
		if err := p.store.TaskStore().SetStatus(ctx, task.ID, types.TASK_STATUS_PROCESSING, 0); err != nil {
			return errors.New("Processor.RetryTask.TaskStore.SetStatus", "failed to update task status", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	task.Status = types.TASK_STATUS_PROCESSING
	task.CurrentLogID = taskLog.ID
	return p.Dispatch(*task, taskLog.ID)
}

// ProcessTask 任务处理主流程，在独立协程里同步执行到终态。
// ctx 取消（任务被删除）时直接退出，不写终态。
func (p *Processor) ProcessTask(ctx context.Context, task types.Task, logID string) {
	if p.metrics != nil {
		p.metrics.ProcessingTasksInc()
		defer p.metrics.ProcessingTasksDec()
	}
	start := time.Now()

	status, errMsg := p.run(ctx, task, logID)
	if ctx.Err() != nil {
		slog.Info("Task processing cancelled", slog.String("task_id", task.ID))
		return
	}

	// 终态先同步到数据集对象，同步失败视为任务失败
	if p.notifier != nil && task.PostDatasetName != "" {
		err := p.notifier.UpdateProcessingReason(ctx, task.Namespace, task.PostDatasetName, status.String(), errMsg)
		if err != nil {
			slog.Error("Failed to update dataset condition",
				slog.String("task_id", task.ID),
				slog.String("error", err.Error()))
			status = types.TASK_STATUS_PROCESS_FAIL
			errMsg = fmt.Sprintf("failed to update dataset condition: %s", err.Error())
		}
	}

	now := time.Now().Unix()
	if err := p.store.TaskLogStore().Finish(ctx, logID, status, errMsg, now); err != nil {
		slog.Error("Failed to finish task log", slog.String("task_id", task.ID), slog.String("error", err.Error()))
	}
	if err := p.store.TaskStore().SetStatus(ctx, task.ID, status, now); err != nil {
		slog.Error("Failed to update task status", slog.String("task_id", task.ID), slog.String("error", err.Error()))
	}

	if p.metrics != nil {
		p.metrics.TaskProcessObserve(status.String(), time.Since(start))
	}
	slog.Info("Task processing finished",
		slog.String("task_id", task.ID),
		slog.String("status", status.String()),
		slog.String("error", errMsg))
}

func (p *Processor) run(ctx context.Context, task types.Task, logID string) (types.TaskStatus, string) {
	options, err := task.ProcessConfig()
	if err != nil {
		return types.TASK_STATUS_PROCESS_FAIL, fmt.Sprintf("invalid task config: %s", err.Error())
	}

	pipeline := transform.NewPipeline(options)
	var qaConfig *types.LLMConfig
	for _, opt := range options {
		if opt.Type == types.TRANSFORM_QA_SPLIT && opt.LLMConfig != nil {
			qaConfig = opt.LLMConfig
		}
	}

	var qaDriver ai.Driver
	if qaConfig != nil {
		qaDriver, err = p.ai.Resolve(*qaConfig)
		if err != nil {
			p.stageLog(ctx, task, logID, "", types.STAGE_START, types.PROCESS_STATUS_FAIL,
				types.StageDetail{Config: options, ErrorMessage: err.Error()})
			return types.TASK_STATUS_PROCESS_FAIL, err.Error()
		}
	}

	p.stageLog(ctx, task, logID, "", types.STAGE_START, types.PROCESS_STATUS_SUCCESS,
		types.StageDetail{Config: options})

	docs, err := p.store.DocumentStore().ListByTaskID(ctx, task.ID)
	if err != nil {
		return types.TASK_STATUS_PROCESS_FAIL, fmt.Sprintf("failed to list documents: %s", err.Error())
	}

	var firstErr string
	for _, doc := range docs {
		if ctx.Err() != nil {
			return types.TASK_STATUS_PROCESS_FAIL, ctx.Err().Error()
		}
		if doc.Status == types.PROCESS_STATUS_SUCCESS {
			continue
		}
		if err := p.processDocument(ctx, task, doc, logID, pipeline, qaConfig, qaDriver); err != nil {
			if ctx.Err() != nil {
				return types.TASK_STATUS_PROCESS_FAIL, ctx.Err().Error()
			}
			slog.Error("Document processing failed",
				slog.String("task_id", task.ID),
				slog.String("file_name", doc.FileName),
				slog.String("error", err.Error()))
			if firstErr == "" {
				firstErr = err.Error()
			}
		}
	}

	if firstErr != "" {
		p.stageLog(ctx, task, logID, "", types.STAGE_FINISH, types.PROCESS_STATUS_FAIL,
			types.StageDetail{ErrorMessage: firstErr})
		return types.TASK_STATUS_PROCESS_FAIL, firstErr
	}

	p.stageLog(ctx, task, logID, "", types.STAGE_FINISH, types.PROCESS_STATUS_SUCCESS, types.StageDetail{})
	return types.TASK_STATUS_PROCESS_COMPLETE, ""
}

func (p *Processor) processDocument(ctx context.Context, task types.Task, doc types.Document, logID string,
	pipeline *transform.Pipeline, qaConfig *types.LLMConfig, qaDriver ai.Driver) error {

	if err := p.store.DocumentStore().SetStatus(ctx, doc.ID, types.PROCESS_STATUS_DOING, 0); err != nil {
		return errors.New("Processor.processDocument.DocumentStore.SetStatus", "failed to update document status", err)
	}

	chunks, err := p.prepareChunks(ctx, task, doc, qaConfig)
	if err != nil {
		p.failDocument(ctx, task, doc, logID, types.STAGE_CLEAN, err)
		return err
	}

	total, err := p.store.DocumentChunkStore().CountByDocumentID(ctx, doc.ID)
	if err != nil {
		return errors.New("Processor.processDocument.DocumentChunkStore.CountByDocumentID", "failed to count chunks", err)
	}
	succeeded := total - int64(len(chunks))

	// 切分完成即记录分片总数与开始时间
	if err := p.store.DocumentStore().SetStarted(ctx, doc.ID, int(total), time.Now().Unix()); err != nil {
		return errors.New("Processor.processDocument.DocumentStore.SetStarted", "failed to mark document started", err)
	}

	agg := newStageAggregator()
	var chunkErr error
	for _, chunk := range chunks {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := p.processChunk(ctx, task, doc, chunk, pipeline, qaConfig, qaDriver, agg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if chunkErr == nil {
				chunkErr = err
			}
			continue
		}
		succeeded++
		if total > 0 {
			_ = p.store.DocumentStore().SetProgress(ctx, doc.ID, int(succeeded*100/total))
		}
	}

	p.writeStageLogs(ctx, task, doc, logID, pipeline, qaConfig, agg, chunkErr)

	if chunkErr != nil {
		_ = p.store.DocumentStore().SetStatus(ctx, doc.ID, types.PROCESS_STATUS_FAIL, time.Now().Unix())
		return chunkErr
	}

	if qaConfig != nil {
		if err := p.finalizeQA(ctx, task, doc, qaConfig, qaDriver); err != nil {
			p.failDocument(ctx, task, doc, logID, types.STAGE_FINISH, err)
			return err
		}
	}

	if err := p.store.DocumentStore().SetStatus(ctx, doc.ID, types.PROCESS_STATUS_SUCCESS, time.Now().Unix()); err != nil {
		return errors.New("Processor.processDocument.DocumentStore.SetStatus", "failed to update document status", err)
	}
	_ = p.store.DocumentStore().SetProgress(ctx, doc.ID, 100)
	return nil
}

// prepareChunks 首次执行时加载并切分文档，重试时只返回未成功的分片
func (p *Processor) prepareChunks(ctx context.Context, task types.Task, doc types.Document,
	qaConfig *types.LLMConfig) ([]types.DocumentChunk, error) {

	existed, err := p.store.DocumentChunkStore().CountByDocumentID(ctx, doc.ID)
	if err != nil {
		return nil, errors.New("Processor.prepareChunks.DocumentChunkStore.CountByDocumentID", "failed to count chunks", err)
	}
	if existed > 0 {
		chunks, err := p.store.DocumentChunkStore().ListIncomplete(ctx, doc.ID)
		if err != nil {
			return nil, errors.New("Processor.prepareChunks.DocumentChunkStore.ListIncomplete", "failed to list chunks", err)
		}
		return chunks, nil
	}

	source := doc.FileName
	if p.storage != nil && doc.DocumentType != types.DOCUMENT_TYPE_WEB {
		key := fmt.Sprintf("dataset/%s/%s/%s", task.PreDatasetName, task.PreDatasetVersion, doc.FileName)
		source, err = p.storage.Download(ctx, key, p.downloadDir)
		if err != nil {
			return nil, errors.New("Processor.prepareChunks.Storage.Download", "failed to download source file", err)
		}
	}

	l, err := loader.For(doc.DocumentType)
	if err != nil {
		return nil, errors.New("Processor.prepareChunks.Loader.For", "unsupported document type", err)
	}
	pages, err := l.Load(ctx, source)
	if err != nil {
		return nil, errors.New("Processor.prepareChunks.Loader.Load", "failed to load document", err)
	}

	chunkSize, chunkOverlap := loader.DEFAULT_CHUNK_SIZE, loader.DEFAULT_CHUNK_OVERLAP
	if qaConfig != nil {
		if qaConfig.ChunkSize > 0 {
			chunkSize = qaConfig.ChunkSize
		}
		if qaConfig.ChunkOverlap > 0 {
			chunkOverlap = qaConfig.ChunkOverlap
		}
	}
	splitter, err := loader.NewSplitter(chunkSize, chunkOverlap)
	if err != nil {
		return nil, errors.New("Processor.prepareChunks.NewSplitter", "invalid chunk config", err)
	}
	pages = splitter.SplitPages(pages)

	chunks := make([]*types.DocumentChunk, 0, len(pages))
	for _, page := range pages {
		chunks = append(chunks, &types.DocumentChunk{
			ID:         utils.GenUniqIDStr(),
			DocumentID: doc.ID,
			TaskID:     task.ID,
			Content:    page.Content,
			MetaInfo: types.ChunkMeta{
				Source:     doc.FileName,
				PageNumber: page.PageNumber,
			}.JSON(),
			Status:      types.PROCESS_STATUS_NOT_START,
			AuditFields: p.audit(),
		})
	}
	if err := p.store.DocumentChunkStore().BatchCreate(ctx, chunks); err != nil {
		return nil, errors.New("Processor.prepareChunks.DocumentChunkStore.BatchCreate", "failed to create chunks", err)
	}

	return lo.Map(chunks, func(c *types.DocumentChunk, _ int) types.DocumentChunk {
		return *c
	}), nil
}

func (p *Processor) processChunk(ctx context.Context, task types.Task, doc types.Document, chunk types.DocumentChunk,
	pipeline *transform.Pipeline, qaConfig *types.LLMConfig, qaDriver ai.Driver, agg *stageAggregator) error {

	if err := p.store.DocumentChunkStore().SetStarted(ctx, chunk.ID, time.Now().Unix()); err != nil {
		return errors.New("Processor.processChunk.DocumentChunkStore.SetStarted", "failed to mark chunk started", err)
	}

	// 幂等：重试前清掉该分片上一轮的产物
	err := p.store.Transaction(ctx, func(ctx context.Context) error {
		if err := p.store.TransformDetailStore().DeleteByChunkID(ctx, task.ID, doc.ID, chunk.ID); err != nil {
			return err
		}
		return p.store.QuestionAnswerStore().DeleteByChunkID(ctx, task.ID, doc.ID, chunk.ID)
	})
	if err != nil {
		return errors.New("Processor.processChunk.DeleteByChunkID", "failed to clean previous results", err)
	}

	text, err := p.applyTransforms(ctx, task, doc, chunk, pipeline, agg)
	if err != nil {
		_ = p.store.DocumentChunkStore().SetStatus(ctx, chunk.ID, types.PROCESS_STATUS_FAIL, time.Now().Unix())
		return err
	}

	if qaConfig != nil {
		pairs, err := p.generateQA(ctx, text, *qaConfig, qaDriver)
		if err != nil {
			if p.metrics != nil {
				p.metrics.StageErrorInc(types.STAGE_QA_SPLIT.String())
			}
			agg.qaFailed++
			_ = p.store.DocumentChunkStore().SetStatus(ctx, chunk.ID, types.PROCESS_STATUS_FAIL, time.Now().Unix())
			return errors.New("Processor.processChunk.generateQA", "failed to split question answer pairs", err)
		}

		rows := make([]*types.QuestionAnswerPair, 0, len(pairs))
		for _, pair := range pairs {
			rows = append(rows, &types.QuestionAnswerPair{
				ID:              utils.GenUniqIDStr(),
				TaskID:          task.ID,
				DocumentID:      doc.ID,
				DocumentChunkID: chunk.ID,
				FileName:        doc.FileName,
				Question:        pair.Question,
				Answer:          pair.Answer,
				AuditFields:     p.audit(),
			})
		}
		if err := p.store.QuestionAnswerStore().BatchCreate(ctx, rows); err != nil {
			_ = p.store.DocumentChunkStore().SetStatus(ctx, chunk.ID, types.PROCESS_STATUS_FAIL, time.Now().Unix())
			return errors.New("Processor.processChunk.QuestionAnswerStore.BatchCreate", "failed to save question answer pairs", err)
		}
		agg.qaPairs += len(rows)
		if p.metrics != nil {
			p.metrics.QAPairAdd("raw", len(rows))
		}
	}

	if err := p.store.DocumentChunkStore().SetStatus(ctx, chunk.ID, types.PROCESS_STATUS_SUCCESS, time.Now().Unix()); err != nil {
		return errors.New("Processor.processChunk.DocumentChunkStore.SetStatus", "failed to update chunk status", err)
	}
	return nil
}

// applyTransforms 按固定顺序执行 clean 与 privacy 算子，落审计明细。
// 逐段审计的算子每处变更一条明细，整体审计的算子有变更时记一条整体明细。
func (p *Processor) applyTransforms(ctx context.Context, task types.Task, doc types.Document, chunk types.DocumentChunk,
	pipeline *transform.Pipeline, agg *stageAggregator) (string, error) {

	text := chunk.Content
	var details []*types.TransformDetail

	newDetail := func(transformType, pre, post string, status types.ProcessStatus, errMsg string) *types.TransformDetail {
		return &types.TransformDetail{
			ID:              utils.GenUniqIDStr(),
			TaskID:          task.ID,
			DocumentID:      doc.ID,
			DocumentChunkID: chunk.ID,
			FileName:        doc.FileName,
			TransformType:   transformType,
			PreContent:      pre,
			PostContent:     post,
			Status:          status,
			ErrorMessage:    errMsg,
			AuditFields:     p.audit(),
		}
	}

	for _, t := range pipeline.All() {
		result, err := t.Apply(text)
		if err != nil {
			// 算子失败只记审计明细，不中断流水线，原文继续交给后续算子
			details = append(details, newDetail(t.Type(), text, "", types.PROCESS_STATUS_FAIL, err.Error()))
			agg.fail(t.Type())
			if p.metrics != nil {
				p.metrics.StageErrorInc(stageOf(t.Type()).String())
			}
			slog.Warn("Transform failed, skipping",
				slog.String("transform_type", t.Type()),
				slog.String("chunk_id", chunk.ID),
				slog.String("error", err.Error()))
			continue
		}

		if result.Found > 0 {
			if result.Whole {
				details = append(details, newDetail(t.Type(), text, result.Text, types.PROCESS_STATUS_SUCCESS, ""))
			} else {
				for _, span := range result.Spans {
					details = append(details, newDetail(t.Type(), span.Pre, span.Post, types.PROCESS_STATUS_SUCCESS, ""))
				}
			}
			agg.affect(t.Type(), result.Found)
		}
		text = result.Text
	}

	if err := p.store.TransformDetailStore().BatchCreate(ctx, details); err != nil {
		return "", errors.New("Processor.applyTransforms.TransformDetailStore.BatchCreate", "failed to save transform details", err)
	}
	return text, nil
}

func (p *Processor) generateQA(ctx context.Context, text string, cfg types.LLMConfig, driver ai.Driver) ([]ai.QAPair, error) {
	if err := p.ai.Wait(ctx); err != nil {
		return nil, err
	}
	callCtx, cancel := p.ai.WithTimeout(ctx)
	defer cancel()

	var timer *prometheus.Timer
	if p.metrics != nil {
		timer = p.metrics.LLMRequestTimer(string(cfg.Provider))
	}
	attempts, delay := p.ai.QARetry()
	pairs, err := ai.GenerateQAWithRetry(callCtx, driver, text, ai.GenerateOptions{
		Model:         cfg.Model,
		Prompt:        cfg.PromptTemplate,
		Temperature:   cfg.Temperature,
		TopP:          cfg.TopP,
		MaxTokens:     cfg.MaxTokens,
		RetryAttempts: attempts,
		RetryDelay:    delay,
	})
	if timer != nil {
		timer.ObserveDuration()
	}
	return pairs, err
}

// finalizeQA 文档级收尾：去重（或直接落 clean 表）并导出最终产物
func (p *Processor) finalizeQA(ctx context.Context, task types.Task, doc types.Document,
	cfg *types.LLMConfig, driver ai.Driver) error {

	pairs, err := p.store.QuestionAnswerStore().ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return errors.New("Processor.finalizeQA.QuestionAnswerStore.ListByDocumentID", "failed to list question answer pairs", err)
	}

	if err := p.store.QuestionAnswerCleanStore().DeleteByDocumentID(ctx, doc.ID); err != nil {
		return errors.New("Processor.finalizeQA.QuestionAnswerCleanStore.DeleteByDocumentID", "failed to reset clean results", err)
	}

	var cleaned []*types.QuestionAnswerClean
	if cfg.RemoveDuplicate && len(pairs) > 1 {
		cleaned, err = p.deduplicate(ctx, task, doc, pairs, driver, cfg.SimilarityThreshold)
		if err != nil {
			return err
		}
	} else {
		cleaned = make([]*types.QuestionAnswerClean, 0, len(pairs))
		for _, pair := range pairs {
			cleaned = append(cleaned, &types.QuestionAnswerClean{
				ID:              pair.ID,
				TaskID:          pair.TaskID,
				DocumentID:      pair.DocumentID,
				DocumentChunkID: pair.DocumentChunkID,
				FileName:        pair.FileName,
				Question:        pair.Question,
				Answer:          pair.Answer,
				DuplicatedFlag:  types.QA_UNIQUE,
				AuditFields:     p.audit(),
			})
		}
	}

	if err := p.store.QuestionAnswerCleanStore().BatchCreate(ctx, cleaned); err != nil {
		return errors.New("Processor.finalizeQA.QuestionAnswerCleanStore.BatchCreate", "failed to save clean results", err)
	}

	unique := 0
	for _, row := range cleaned {
		if row.DuplicatedFlag == types.QA_UNIQUE {
			unique++
		}
	}
	if p.metrics != nil {
		p.metrics.QAPairAdd("unique", unique)
		p.metrics.QAPairAdd("duplicated", len(cleaned)-unique)
	}

	return p.exportFinal(ctx, task, doc)
}

func (p *Processor) failDocument(ctx context.Context, task types.Task, doc types.Document, logID string,
	stage types.Stage, cause error) {
	if p.metrics != nil {
		p.metrics.StageErrorInc(stage.String())
	}
	p.stageLog(ctx, task, logID, doc.FileName, stage, types.PROCESS_STATUS_FAIL,
		types.StageDetail{ErrorMessage: cause.Error()})
	_ = p.store.DocumentStore().SetStatus(ctx, doc.ID, types.PROCESS_STATUS_FAIL, time.Now().Unix())
}

func (p *Processor) stageLog(ctx context.Context, task types.Task, logID, fileName string,
	stage types.Stage, status types.ProcessStatus, detail types.StageDetail) {
	err := p.store.StageLogStore().Create(ctx, types.StageLog{
		ID:          utils.GenUniqIDStr(),
		TaskID:      task.ID,
		LogID:       logID,
		FileName:    fileName,
		Stage:       stage,
		Status:      status,
		Detail:      detail.JSON(),
		AuditFields: p.audit(),
	})
	if err != nil {
		slog.Error("Failed to create stage log",
			slog.String("task_id", task.ID),
			slog.String("stage", stage.String()),
			slog.String("error", err.Error()))
	}
}

// writeStageLogs 文档处理完后按阶段落汇总日志
func (p *Processor) writeStageLogs(ctx context.Context, task types.Task, doc types.Document, logID string,
	pipeline *transform.Pipeline, qaConfig *types.LLMConfig, agg *stageAggregator, chunkErr error) {

	errMsg := ""
	if chunkErr != nil {
		errMsg = chunkErr.Error()
	}

	if len(pipeline.Clean) > 0 {
		status, results := agg.stageResult(pipeline.Clean)
		p.stageLog(ctx, task, logID, doc.FileName, types.STAGE_CLEAN, status,
			types.StageDetail{OperatorResults: results})
	}
	if len(pipeline.Privacy) > 0 {
		status, results := agg.stageResult(pipeline.Privacy)
		p.stageLog(ctx, task, logID, doc.FileName, types.STAGE_PRIVACY, status,
			types.StageDetail{OperatorResults: results})
	}
	if qaConfig != nil {
		status := types.PROCESS_STATUS_SUCCESS
		if agg.qaFailed > 0 {
			status = types.PROCESS_STATUS_FAIL
		}
		p.stageLog(ctx, task, logID, doc.FileName, types.STAGE_QA_SPLIT, status,
			types.StageDetail{PairCount: agg.qaPairs, ErrorMessage: errMsg})
	}
}

func stageOf(transformType string) types.Stage {
	for _, name := range types.PrivacyTransformOrder {
		if name == transformType {
			return types.STAGE_PRIVACY
		}
	}
	return types.STAGE_CLEAN
}

// stageAggregator 单文档范围内各算子的汇总计数
type stageAggregator struct {
	affected map[string]int
	failed   map[string]int
	qaPairs  int
	qaFailed int
}

func newStageAggregator() *stageAggregator {
	return &stageAggregator{
		affected: make(map[string]int),
		failed:   make(map[string]int),
	}
}

func (a *stageAggregator) affect(transformType string, n int) {
	a.affected[transformType] += n
}

func (a *stageAggregator) fail(transformType string) {
	a.failed[transformType]++
}

func (a *stageAggregator) stageResult(transforms []transform.Transform) (types.ProcessStatus, []types.OperatorResult) {
	status := types.PROCESS_STATUS_SUCCESS
	results := make([]types.OperatorResult, 0, len(transforms))
	for _, t := range transforms {
		result := types.OperatorResult{
			TransformType: t.Type(),
			AffectedCount: a.affected[t.Type()],
			FailedCount:   a.failed[t.Type()],
		}
		if result.FailedCount > 0 {
			status = types.PROCESS_STATUS_FAIL
		}
		results = append(results, result)
	}
	return status, results
}
