package core

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dataprep-ai/dataprep/pkg/metrics"
)

type Metrics struct {
	apiResponseTime   *prometheus.HistogramVec
	apiErrorCounter   *prometheus.CounterVec
	taskProcessTime   *prometheus.HistogramVec
	stageErrorCounter *prometheus.CounterVec
	llmRequestTime    *prometheus.HistogramVec
	qaPairCounter     *prometheus.CounterVec
	processingTasks   *prometheus.GaugeVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:   metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:   metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		taskProcessTime:   metrics.NewHistogramVec("task_process_time", []string{"status"}),
		stageErrorCounter: metrics.NewCounterVec("stage_error", []string{"stage"}),
		llmRequestTime:    metrics.NewHistogramVec("llm_request_time", []string{"provider"}),
		qaPairCounter:     metrics.NewCounterVec("qa_pair_total", []string{"kind"}),
		processingTasks:   metrics.NewGaugeVec("processing_tasks", nil),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) TaskProcessObserve(status string, d time.Duration) {
	m.taskProcessTime.WithLabelValues(status).Observe(d.Seconds())
}

func (m *Metrics) StageErrorInc(stage string) {
	m.stageErrorCounter.WithLabelValues(stage).Inc()
}

func (m *Metrics) LLMRequestTimer(provider string) *prometheus.Timer {
	return prometheus.NewTimer(m.llmRequestTime.WithLabelValues(provider))
}

func (m *Metrics) QAPairAdd(kind string, n int) {
	m.qaPairCounter.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) ProcessingTasksInc() {
	m.processingTasks.WithLabelValues().Inc()
}

func (m *Metrics) ProcessingTasksDec() {
	m.processingTasks.WithLabelValues().Dec()
}
