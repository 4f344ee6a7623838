package openai_test

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataprep-ai/dataprep/pkg/ai"
	"github.com/dataprep-ai/dataprep/pkg/ai/openai"
)

func loadTestEnv(t *testing.T) (token, baseURL, model string) {
	t.Helper()
	if err := godotenv.Load("../../../.env"); err != nil {
		t.Logf("Warning: Could not load .env file: %v", err)
	}

	token = os.Getenv("TEST_OPENAI_API_KEY")
	baseURL = os.Getenv("TEST_OPENAI_ENDPOINT")
	model = os.Getenv("TEST_OPENAI_MODEL")
	if token == "" {
		t.Skip("TEST_OPENAI_API_KEY not set, skipping test")
	}
	return
}

func TestGenerateQA(t *testing.T) {
	token, baseURL, model := loadTestEnv(t)

	driver := openai.New(token, baseURL, "")
	pairs, err := ai.GenerateQAWithRetry(context.Background(), driver,
		"周报是每周一次的工作总结，用于同步项目进展和风险。", ai.GenerateOptions{
			Model: model,
		})
	require.NoError(t, err)
	assert.NotEmpty(t, pairs)
	for _, pair := range pairs {
		assert.NotEmpty(t, pair.Question)
		assert.NotEmpty(t, pair.Answer)
	}
}

func TestEmbedding(t *testing.T) {
	token, baseURL, _ := loadTestEnv(t)

	embeddingModel := os.Getenv("TEST_OPENAI_EMBEDDING_MODEL")
	driver := openai.New(token, baseURL, embeddingModel)

	result, err := driver.Embedding(context.Background(), []string{"周报", "日报"})
	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.NotEmpty(t, result.Data[0])
}
