// Package v1 任务接口逻辑层，HTTP handler 只做参数绑定，业务语义都在这里。
package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dataprep-ai/dataprep/app/core"
	"github.com/dataprep-ai/dataprep/app/logic/v1/process"
	"github.com/dataprep-ai/dataprep/pkg/errors"
	"github.com/dataprep-ai/dataprep/pkg/loader"
	"github.com/dataprep-ai/dataprep/pkg/types"
	"github.com/dataprep-ai/dataprep/pkg/utils"
)

// CODE_UNSUPPORTED_PROVIDER 任务配置指向了未接入的模型提供方
const CODE_UNSUPPORTED_PROVIDER = 1000

const previewLimit = 10

type TaskLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTaskLogic(ctx context.Context, core *core.Core) *TaskLogic {
	return &TaskLogic{
		ctx:  ctx,
		core: core,
	}
}

type CreateTaskArgs struct {
	Name               string                  `json:"name" binding:"required"`
	Namespace          string                  `json:"namespace" binding:"required"`
	FileType           string                  `json:"file_type" binding:"required"`
	PreDatasetName     string                  `json:"pre_data_set_name"`
	PreDatasetVersion  string                  `json:"pre_data_set_version"`
	PostDatasetName    string                  `json:"post_data_set_name"`
	PostDatasetVersion string                  `json:"post_data_set_version"`
	FileNames          []string                `json:"file_names" binding:"required"`
	Config             []types.TransformOption `json:"config"`
	CreateUser         string                  `json:"create_user"`
}

// CreateTask 创建任务并立即派发后台处理。任务、执行记录与文档记录
// 在同一事务内落库，事务成功后才启动 worker。
func (l *TaskLogic) CreateTask(args CreateTaskArgs) (*types.Task, error) {
	if _, err := loader.For(types.DocumentType(args.FileType)); err != nil {
		return nil, errors.New("TaskLogic.CreateTask.FileType", "unsupported file type", err).Code(http.StatusBadRequest)
	}
	if len(args.FileNames) == 0 {
		return nil, errors.New("TaskLogic.CreateTask.FileNames", "file_names is empty", nil).Code(http.StatusBadRequest)
	}

	var qaConfig *types.LLMConfig
	for _, opt := range args.Config {
		if opt.Type == types.TRANSFORM_QA_SPLIT && opt.LLMConfig != nil {
			qaConfig = opt.LLMConfig
		}
	}
	if qaConfig != nil {
		if _, err := l.core.Srv().AI().Resolve(*qaConfig); err != nil {
			return nil, errors.New("TaskLogic.CreateTask.Resolve", "unsupported llm provider", err).Code(CODE_UNSUPPORTED_PROVIDER)
		}
	}

	fileNames, err := json.Marshal(args.FileNames)
	if err != nil {
		return nil, errors.New("TaskLogic.CreateTask.Marshal", "invalid file_names", err).Code(http.StatusBadRequest)
	}
	config, err := json.Marshal(args.Config)
	if err != nil {
		return nil, errors.New("TaskLogic.CreateTask.Marshal", "invalid config", err).Code(http.StatusBadRequest)
	}

	now := time.Now().Unix()
	audit := types.AuditFields{
		CreateDatetime: now,
		CreateUser:     args.CreateUser,
		CreateProgram:  l.core.Cfg().Process.CreateProgram,
		UpdateDatetime: now,
		UpdateUser:     args.CreateUser,
		UpdateProgram:  l.core.Cfg().Process.CreateProgram,
	}

	taskLog := types.TaskLog{
		ID:            utils.GenUniqIDStr(),
		TaskID:        utils.GenUniqIDStr(),
		Type:          types.TASK_LOG_TYPE_NOW,
		Status:        types.TASK_STATUS_PROCESSING,
		StartDatetime: now,
		AuditFields:   audit,
	}

	task := types.Task{
		ID:                 taskLog.TaskID,
		Name:               args.Name,
		Namespace:          args.Namespace,
		FileType:           args.FileType,
		Status:             types.TASK_STATUS_PROCESSING,
		CurrentLogID:       taskLog.ID,
		PreDatasetName:     args.PreDatasetName,
		PreDatasetVersion:  args.PreDatasetVersion,
		PostDatasetName:    args.PostDatasetName,
		PostDatasetVersion: args.PostDatasetVersion,
		FileNames:          fileNames,
		Config:             config,
		StartDatetime:      now,
		AuditFields:        audit,
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().TaskStore().Create(ctx, task); err != nil {
			return errors.New("TaskLogic.CreateTask.TaskStore.Create", "failed to create task", err)
		}
		if err := l.core.Store().TaskLogStore().Create(ctx, taskLog); err != nil {
			return errors.New("TaskLogic.CreateTask.TaskLogStore.Create", "failed to create task log", err)
		}
		for _, fileName := range args.FileNames {
			doc := types.Document{
				ID:           utils.GenUniqIDStr(),
				TaskID:       task.ID,
				FileName:     fileName,
				DocumentType: types.DocumentType(args.FileType),
				Status:       types.PROCESS_STATUS_NOT_START,
				AuditFields:  audit,
			}
			if err := l.core.Store().DocumentStore().Create(ctx, doc); err != nil {
				return errors.New("TaskLogic.CreateTask.DocumentStore.Create", "failed to create document", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p := process.Default(); p != nil {
		if err := p.Dispatch(task, taskLog.ID); err != nil {
			return nil, errors.Trace("TaskLogic.CreateTask.Dispatch", err)
		}
	}
	return &task, nil
}

// RetryTask 重新执行任务中未成功的部分
func (l *TaskLogic) RetryTask(taskID string) error {
	p := process.Default()
	if p == nil {
		return errors.New("TaskLogic.RetryTask", "processor is not ready", nil).Code(http.StatusServiceUnavailable)
	}
	if process.Running(taskID) {
		return errors.New("TaskLogic.RetryTask", "task is already processing", nil).Code(http.StatusConflict)
	}
	if err := p.RetryTask(l.ctx, taskID); err != nil {
		return errors.Trace("TaskLogic.RetryTask", err)
	}
	return nil
}

// TaskDetail 任务详情，附带执行记录与文档列表
type TaskDetail struct {
	Task      types.Task       `json:"task"`
	Logs      []types.TaskLog  `json:"logs"`
	Documents []types.Document `json:"documents"`
}

func (l *TaskLogic) GetTask(taskID string) (*TaskDetail, error) {
	task, err := l.core.Store().TaskStore().Get(l.ctx, taskID)
	if err != nil {
		return nil, errors.New("TaskLogic.GetTask.TaskStore.Get", "task not found", err).Code(http.StatusNotFound)
	}
	logs, err := l.core.Store().TaskLogStore().ListByTaskID(l.ctx, taskID)
	if err != nil {
		return nil, errors.New("TaskLogic.GetTask.TaskLogStore.ListByTaskID", "failed to list task logs", err)
	}
	docs, err := l.core.Store().DocumentStore().ListByTaskID(l.ctx, taskID)
	if err != nil {
		return nil, errors.New("TaskLogic.GetTask.DocumentStore.ListByTaskID", "failed to list documents", err)
	}
	return &TaskDetail{
		Task:      *task,
		Logs:      logs,
		Documents: docs,
	}, nil
}

func (l *TaskLogic) ListTasks(opts types.ListTaskOptions, page, pageSize uint64) ([]types.Task, int64, error) {
	tasks, err := l.core.Store().TaskStore().List(l.ctx, opts, page, pageSize)
	if err != nil {
		return nil, 0, errors.New("TaskLogic.ListTasks.TaskStore.List", "failed to list tasks", err)
	}
	total, err := l.core.Store().TaskStore().Total(l.ctx, opts)
	if err != nil {
		return nil, 0, errors.New("TaskLogic.ListTasks.TaskStore.Total", "failed to count tasks", err)
	}
	return tasks, total, nil
}

// DeleteTask 取消在途处理并级联删除任务的全部数据
func (l *TaskLogic) DeleteTask(taskID string) error {
	task, err := l.core.Store().TaskStore().Get(l.ctx, taskID)
	if err != nil {
		return errors.New("TaskLogic.DeleteTask.TaskStore.Get", "task not found", err).Code(http.StatusNotFound)
	}

	process.Cancel(task.ID)

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		store := l.core.Store()
		if err := store.QuestionAnswerVectorStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.QuestionAnswerVectorStore.DeleteByTaskID", "failed to delete vectors", err)
		}
		if err := store.QuestionAnswerCleanStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.QuestionAnswerCleanStore.DeleteByTaskID", "failed to delete clean results", err)
		}
		if err := store.QuestionAnswerStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.QuestionAnswerStore.DeleteByTaskID", "failed to delete question answer pairs", err)
		}
		if err := store.TransformDetailStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.TransformDetailStore.DeleteByTaskID", "failed to delete transform details", err)
		}
		if err := store.DocumentChunkStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.DocumentChunkStore.DeleteByTaskID", "failed to delete chunks", err)
		}
		if err := store.DocumentStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.DocumentStore.DeleteByTaskID", "failed to delete documents", err)
		}
		if err := store.StageLogStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.StageLogStore.DeleteByTaskID", "failed to delete stage logs", err)
		}
		if err := store.TaskLogStore().DeleteByTaskID(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.TaskLogStore.DeleteByTaskID", "failed to delete task logs", err)
		}
		if err := store.TaskStore().Delete(ctx, task.ID); err != nil {
			return errors.New("TaskLogic.DeleteTask.TaskStore.Delete", "failed to delete task", err)
		}
		return nil
	})
	return err
}

// PreviewTransform 清洗/去隐私明细预览，取最早的若干条
func (l *TaskLogic) PreviewTransform(taskID string) ([]types.TransformDetail, error) {
	details, err := l.core.Store().TransformDetailStore().ListByTaskID(l.ctx, taskID, previewLimit)
	if err != nil {
		return nil, errors.New("TaskLogic.PreviewTransform.TransformDetailStore.ListByTaskID", "failed to list transform details", err)
	}
	return details, nil
}

// PreviewQA QA 拆分结果预览，取最早的若干条
func (l *TaskLogic) PreviewQA(taskID string) ([]types.QuestionAnswerPair, error) {
	pairs, err := l.core.Store().QuestionAnswerStore().ListByTaskID(l.ctx, taskID, previewLimit)
	if err != nil {
		return nil, errors.New("TaskLogic.PreviewQA.QuestionAnswerStore.ListByTaskID", "failed to list question answer pairs", err)
	}
	return pairs, nil
}

// SupportTypes 全部可用算子的说明
func (l *TaskLogic) SupportTypes() []types.SupportType {
	return types.SupportTypes
}
