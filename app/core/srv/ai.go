package srv

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/dataprep-ai/dataprep/pkg/ai"
	"github.com/dataprep-ai/dataprep/pkg/ai/openai"
	"github.com/dataprep-ai/dataprep/pkg/ai/zhipu"
	"github.com/dataprep-ai/dataprep/pkg/types"
)

// AIConfig 模型调用的全局约束，具体模型端点由任务配置给出
type AIConfig struct {
	// RequestsPerSecond 全局限速，0 表示不限速
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// RequestTimeout 单次调用超时秒数
	RequestTimeout int `toml:"request_timeout"`
	// QARetryCount QA 拆分单个分片的最大尝试次数
	QARetryCount int `toml:"qa_retry_count"`
	// QARetryInterval 重试基础间隔秒数，按指数退避递增
	QARetryInterval int `toml:"qa_retry_interval"`
}

type AI struct {
	limiter      *rate.Limiter
	timeout      time.Duration
	retryCount   uint
	retryDelay   time.Duration
}

func SetupAI(cfg AIConfig) *AI {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = time.Minute * 3
	}
	retryCount := uint(ai.DEFAULT_QA_RETRY_ATTEMPTS)
	if cfg.QARetryCount > 0 {
		retryCount = uint(cfg.QARetryCount)
	}
	retryDelay := ai.DEFAULT_QA_RETRY_DELAY
	if cfg.QARetryInterval > 0 {
		retryDelay = time.Duration(cfg.QARetryInterval) * time.Second
	}

	return &AI{
		limiter:    rate.NewLimiter(limit, burst),
		timeout:    timeout,
		retryCount: retryCount,
		retryDelay: retryDelay,
	}
}

// QARetry QA 拆分的重试次数与基础间隔
func (s *AI) QARetry() (uint, time.Duration) {
	return s.retryCount, s.retryDelay
}

// Resolve 根据任务配置选择模型驱动。worker 指平台内的 openai 兼容
// 推理服务，zhipu 为第三方在线服务，其余类型一律拒绝。
func (s *AI) Resolve(cfg types.LLMConfig) (ai.Driver, error) {
	switch cfg.Provider {
	case types.LLM_PROVIDER_WORKER:
		return openai.New(cfg.APIKey, cfg.BaseURL, ""), nil
	case types.LLM_PROVIDER_ZHIPU:
		return zhipu.New(cfg.APIKey, cfg.BaseURL, ""), nil
	default:
		return nil, ai.ErrUnsupportedProvider
	}
}

// Wait 全局限速，所有 chat 与 embedding 调用共用同一令牌桶
func (s *AI) Wait(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}

// WithTimeout 单次模型调用的超时上下文
func (s *AI) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}
