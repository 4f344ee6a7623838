package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedDriver struct {
	calls   int
	results [][]QAPair
	errs    []error
}

func (d *scriptedDriver) Lang() string { return MODEL_BASE_LANGUAGE_CN }

func (d *scriptedDriver) GenerateQA(ctx context.Context, text string, opts GenerateOptions) ([]QAPair, error) {
	i := d.calls
	d.calls++
	if i >= len(d.results) {
		i = len(d.results) - 1
	}
	return d.results[i], d.errs[i]
}

func TestGenerateQAWithRetryRecoversFromEmptyResult(t *testing.T) {
	driver := &scriptedDriver{
		results: [][]QAPair{
			nil,
			{{Question: "Q", Answer: "A"}},
		},
		errs: []error{nil, nil},
	}

	pairs, err := GenerateQAWithRetry(context.Background(), driver, "text", GenerateOptions{RetryDelay: time.Millisecond})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, 2, driver.calls)
}

func TestGenerateQAWithRetryHonorsConfiguredAttempts(t *testing.T) {
	driver := &scriptedDriver{
		results: [][]QAPair{nil},
		errs:    []error{ErrEmptyQAResult},
	}

	_, err := GenerateQAWithRetry(context.Background(), driver, "text", GenerateOptions{
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
	})
	require.ErrorIs(t, err, ErrEmptyQAResult)
	assert.Equal(t, 2, driver.calls)
}

func TestGenerateQAWithRetryCancelledBetweenAttempts(t *testing.T) {
	driver := &scriptedDriver{
		results: [][]QAPair{nil},
		errs:    []error{ErrEmptyQAResult},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateQAWithRetry(ctx, driver, "text", GenerateOptions{})
	require.Error(t, err)
	// 取消后不会继续后面的尝试
	assert.LessOrEqual(t, driver.calls, 1)
}
