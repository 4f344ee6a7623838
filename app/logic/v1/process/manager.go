// Package process 数据处理任务的后台编排：源文件加载、切片、清洗、
// 去隐私、QA 拆分与去重，以及最终产物导出。
package process

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/dataprep-ai/dataprep/pkg/errors"
	"github.com/dataprep-ai/dataprep/pkg/safe"
	"github.com/dataprep-ai/dataprep/pkg/types"
)

// workerManager 运行中任务的注册表，任务删除时通过这里取消在途处理
type workerManager struct {
	mu      sync.Mutex
	workers map[string]context.CancelFunc
}

var defaultWorkers = &workerManager{
	workers: make(map[string]context.CancelFunc),
}

var defaultProcessor *Processor

// StartProcess 初始化全局编排器，sweepCron 非空时同时启动卡死任务巡检
func StartProcess(opts Options, sweepCron string) (*Processor, error) {
	p := NewProcessor(opts)
	defaultProcessor = p
	if sweepCron != "" {
		if _, err := StartSweeper(p, sweepCron); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Default 全局编排器，未初始化时为 nil
func Default() *Processor {
	return defaultProcessor
}

func (m *workerManager) add(taskID string, cancel context.CancelFunc) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exist := m.workers[taskID]; exist {
		return false
	}
	m.workers[taskID] = cancel
	return true
}

func (m *workerManager) remove(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workers, taskID)
}

func (m *workerManager) cancel(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cancel, exist := m.workers[taskID]; exist {
		cancel()
		delete(m.workers, taskID)
	}
}

func (m *workerManager) running(taskID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exist := m.workers[taskID]
	return exist
}

// Dispatch 为任务启动处理协程并注册到 worker 注册表。
// 同一任务同一时刻只允许一个 worker。
func (p *Processor) Dispatch(task types.Task, logID string) error {
	ctx, cancel := context.WithCancel(context.Background())
	if !defaultWorkers.add(task.ID, cancel) {
		cancel()
		return errors.New("Processor.Dispatch", "task is already processing", nil)
	}

	go safe.Run(func() {
		defer defaultWorkers.remove(task.ID)
		p.ProcessTask(ctx, task, logID)
	})
	return nil
}

// Cancel 取消任务的在途处理
func Cancel(taskID string) {
	defaultWorkers.cancel(taskID)
}

// Running 任务当前是否有 worker 在跑
func Running(taskID string) bool {
	return defaultWorkers.running(taskID)
}

// StartSweeper 周期巡检：状态仍是 processing 但没有 worker 的任务
// （进程重启或崩溃遗留）通过重试入口重新排队。
func StartSweeper(p *Processor, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		p.sweep()
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func (p *Processor) sweep() {
	processing := types.TASK_STATUS_PROCESSING
	tasks, err := p.store.TaskStore().List(context.Background(), types.ListTaskOptions{Status: &processing}, 0, 0)
	if err != nil {
		slog.Error("Failed to list processing tasks", slog.String("error", err.Error()))
		return
	}

	for _, task := range tasks {
		if Running(task.ID) {
			continue
		}
		slog.Warn("Found stuck task, requeue", slog.String("task_id", task.ID))
		if err := p.RetryTask(context.Background(), task.ID); err != nil {
			slog.Error("Failed to requeue stuck task", slog.String("task_id", task.ID), slog.String("error", err.Error()))
		}
	}
}
