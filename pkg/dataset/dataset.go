// Package dataset 维护外部数据集生命周期对象（Kubernetes 自定义资源）的
// DataProcessing 状态。资源本身的读写由外部实现提供，这里只负责
// conditions 的 find-or-append 语义。
package dataset

import (
	"context"
	"time"
)

const ConditionTypeDataProcessing = "DataProcessing"

// Condition 数据集 CR status.conditions 的一项
type Condition struct {
	Type               string `json:"type"`
	Status             string `json:"status"`
	Reason             string `json:"reason"`
	Message            string `json:"message,omitempty"`
	LastTransitionTime string `json:"lastTransitionTime"`
}

// StatusClient 外部数据集生命周期对象的最小读写接口
type StatusClient interface {
	GetStatus(ctx context.Context, namespace, name string) ([]Condition, error)
	PatchStatus(ctx context.Context, namespace, name string, conditions []Condition) error
}

// UpsertCondition 按 type 查找已有条目，找到则原地替换，否则追加，
// 其余条目保持原有顺序不变。
func UpsertCondition(conditions []Condition, cond Condition) []Condition {
	for i := range conditions {
		if conditions[i].Type == cond.Type {
			conditions[i] = cond
			return conditions
		}
	}
	return append(conditions, cond)
}

// Notifier 将任务终态同步到数据集 CR
type Notifier struct {
	client StatusClient
}

func NewNotifier(client StatusClient) *Notifier {
	return &Notifier{client: client}
}

// UpdateProcessingReason 更新 DataProcessing 条目的 reason 字段，
// reason 为任务终态（process_complete / process_fail）。
func (n *Notifier) UpdateProcessingReason(ctx context.Context, namespace, name, reason, message string) error {
	conditions, err := n.client.GetStatus(ctx, namespace, name)
	if err != nil {
		return err
	}

	conditions = UpsertCondition(conditions, Condition{
		Type:               ConditionTypeDataProcessing,
		Status:             "True",
		Reason:             reason,
		Message:            message,
		LastTransitionTime: time.Now().UTC().Format(time.RFC3339),
	})

	return n.client.PatchStatus(ctx, namespace, name, conditions)
}
