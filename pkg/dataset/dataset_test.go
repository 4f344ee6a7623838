package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertConditionReplacesInPlace(t *testing.T) {
	conditions := []Condition{
		{Type: "Ready", Status: "True", Reason: "ok"},
		{Type: ConditionTypeDataProcessing, Status: "True", Reason: "processing"},
		{Type: "Synced", Status: "True", Reason: "ok"},
	}

	result := UpsertCondition(conditions, Condition{
		Type:   ConditionTypeDataProcessing,
		Status: "True",
		Reason: "process_complete",
	})

	require.Len(t, result, 3)
	// 原有顺序保持不变，只有目标条目被替换
	assert.Equal(t, "Ready", result[0].Type)
	assert.Equal(t, ConditionTypeDataProcessing, result[1].Type)
	assert.Equal(t, "process_complete", result[1].Reason)
	assert.Equal(t, "Synced", result[2].Type)
}

func TestUpsertConditionAppendsWhenMissing(t *testing.T) {
	conditions := []Condition{
		{Type: "Ready", Status: "True", Reason: "ok"},
	}

	result := UpsertCondition(conditions, Condition{
		Type:   ConditionTypeDataProcessing,
		Status: "True",
		Reason: "process_fail",
	})

	require.Len(t, result, 2)
	assert.Equal(t, ConditionTypeDataProcessing, result[1].Type)
}

type recordingClient struct {
	conditions []Condition
	patched    []Condition
}

func (c *recordingClient) GetStatus(ctx context.Context, namespace, name string) ([]Condition, error) {
	return c.conditions, nil
}

func (c *recordingClient) PatchStatus(ctx context.Context, namespace, name string, conditions []Condition) error {
	c.patched = conditions
	return nil
}

func TestNotifierUpdatesProcessingReason(t *testing.T) {
	client := &recordingClient{
		conditions: []Condition{{Type: "Ready", Status: "True"}},
	}
	n := NewNotifier(client)

	err := n.UpdateProcessingReason(context.Background(), "default", "report-qa", "process_complete", "")
	require.NoError(t, err)

	require.Len(t, client.patched, 2)
	assert.Equal(t, ConditionTypeDataProcessing, client.patched[1].Type)
	assert.Equal(t, "process_complete", client.patched[1].Reason)
	assert.NotEmpty(t, client.patched[1].LastTransitionTime)
}
