package zhipu

// provider for https://open.bigmodel.cn/
// - chat completion
// - embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dataprep-ai/dataprep/pkg/ai"
)

const (
	NAME = "zhipu"

	defaultBaseURL = "https://open.bigmodel.cn/api/paas/v4"
)

type Driver struct {
	client         *http.Client
	token          string
	baseURL        string
	embeddingModel string
}

func New(token, baseURL, embeddingModel string) *Driver {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if embeddingModel == "" {
		embeddingModel = "embedding-2"
	}
	return &Driver{
		client:         &http.Client{},
		token:          token,
		baseURL:        baseURL,
		embeddingModel: embeddingModel,
	}
}

func (s *Driver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_CN
}

func (s *Driver) applyBaseHeader(req *http.Request) {
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+s.token)
}

type chatRequestBody struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	TopP        float32       `json:"top_p,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Driver) GenerateQA(ctx context.Context, text string, opts ai.GenerateOptions) ([]ai.QAPair, error) {
	slog.Debug("GenerateQA", slog.String("driver", NAME), slog.String("model", opts.Model))

	request := chatRequestBody{
		Model: opts.Model,
		Messages: []chatMessage{
			{Role: "user", Content: ai.BuildPrompt(opts.Prompt, text)},
		},
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   opts.MaxTokens,
	}

	var result chatResponse
	if err := s.post(ctx, "/chat/completions", request, &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to request zhipu chat, code %s, %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, ai.ErrEmptyQAResult
	}

	return ai.ParseQAPairs(result.Choices[0].Message.Content), nil
}

type embeddingRequestBody struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Model string `json:"model"`
	Data  []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// Embedding 智谱 embedding 接口单条输入，逐条请求后合并
func (s *Driver) Embedding(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	slog.Debug("Embedding", slog.String("driver", NAME))

	r := ai.EmbeddingResult{
		Usage: &openai.Usage{},
	}
	for _, item := range content {
		var result embeddingResponse
		if err := s.post(ctx, "/embeddings", embeddingRequestBody{Model: s.embeddingModel, Input: item}, &result); err != nil {
			return r, err
		}
		if len(result.Data) == 0 {
			return r, fmt.Errorf("Failed to request zhipu embedding, empty data")
		}

		r.Data = append(r.Data, result.Data[0].Embedding)
		r.Model = result.Model
		r.Usage.PromptTokens += result.Usage.PromptTokens
		r.Usage.TotalTokens += result.Usage.TotalTokens
	}

	return r, nil
}

func (s *Driver) post(ctx context.Context, path string, body any, out any) error {
	raw, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	s.applyBaseHeader(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("Failed to request zhipu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Failed to request zhipu, %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("Failed to unmarshal response, %w", err)
	}
	return nil
}
