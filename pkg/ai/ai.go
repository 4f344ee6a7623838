// Package ai 定义 QA 拆分与向量化的模型驱动接口，具体实现见
// openai / zhipu 子包。
package ai

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sashabaranov/go-openai"
)

const (
	MODEL_BASE_LANGUAGE_CN = "中文"
	MODEL_BASE_LANGUAGE_EN = "English"
)

var (
	// ErrUnsupportedProvider 任务配置指向了未接入的模型提供方
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	// ErrEmptyQAResult 模型返回内容未解析出任何 QA 对
	ErrEmptyQAResult = errors.New("empty question answer result")
)

// QAPair 一条从模型输出解析出的问答对
type QAPair struct {
	Question string
	Answer   string
}

type GenerateOptions struct {
	Model       string
	Prompt      string
	Temperature float32
	TopP        float32
	MaxTokens   int
	// RetryAttempts 最大尝试次数，0 取默认值
	RetryAttempts uint
	// RetryDelay 重试基础间隔，按指数退避递增，0 取默认值
	RetryDelay time.Duration
}

// QADriver 将一段文本拆分为问答对
type QADriver interface {
	GenerateQA(ctx context.Context, text string, opts GenerateOptions) ([]QAPair, error)
	Lang() string
}

type EmbeddingResult struct {
	Model string
	Data  [][]float32
	Usage *openai.Usage
}

// EmbeddingDriver 文本向量化
type EmbeddingDriver interface {
	Embedding(ctx context.Context, content []string) (EmbeddingResult, error)
}

// Driver QA 拆分与向量化的完整驱动
type Driver interface {
	QADriver
	EmbeddingDriver
}

const (
	DEFAULT_QA_RETRY_ATTEMPTS = 3
	DEFAULT_QA_RETRY_DELAY    = time.Second * 2
)

// GenerateQAWithRetry 调用模型拆分 QA，空结果按可重试错误处理。
// 模型偶发返回不符合 Q/A 语法的内容，重试通常能拿到有效结果。
func GenerateQAWithRetry(ctx context.Context, driver QADriver, text string, opts GenerateOptions) ([]QAPair, error) {
	attempts := opts.RetryAttempts
	if attempts == 0 {
		attempts = DEFAULT_QA_RETRY_ATTEMPTS
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DEFAULT_QA_RETRY_DELAY
	}
	return retry.DoWithData(func() ([]QAPair, error) {
		pairs, err := driver.GenerateQA(ctx, text, opts)
		if err != nil {
			return nil, err
		}
		if len(pairs) == 0 {
			return nil, ErrEmptyQAResult
		}
		return pairs, nil
	},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
	)
}
