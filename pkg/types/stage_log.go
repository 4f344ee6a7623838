package types

import "encoding/json"

type Stage string

const (
	STAGE_START    Stage = "start"
	STAGE_CLEAN    Stage = "clean"
	STAGE_PRIVACY  Stage = "privacy"
	STAGE_QA_SPLIT Stage = "qa_split"
	STAGE_FINISH   Stage = "finish"
)

func (s Stage) String() string {
	return string(s)
}

// StageLog 编排过程的追加式审计日志，每个阶段一条，detail 为该阶段结果的
// JSON 快照，仅追加不修改。
type StageLog struct {
	ID       string        `json:"id" db:"id"`
	TaskID   string        `json:"task_id" db:"task_id"`
	LogID    string        `json:"log_id" db:"log_id"`
	FileName string        `json:"file_name" db:"file_name"`
	Stage    Stage         `json:"stage" db:"stage"`
	Status   ProcessStatus `json:"status" db:"status"`
	Detail   string        `json:"detail" db:"detail"`
	AuditFields
}

// OperatorResult clean/privacy 阶段里单个算子的汇总结果
type OperatorResult struct {
	TransformType string `json:"transform_type"`
	AffectedCount int    `json:"affected_count"`
	FailedCount   int    `json:"failed_count"`
}

// StageDetail StageLog.Detail 的通用结构
type StageDetail struct {
	Config          []TransformOption `json:"config,omitempty"`
	OperatorResults []OperatorResult  `json:"operator_result,omitempty"`
	PairCount       int               `json:"pair_count,omitempty"`
	ErrorMessage    string            `json:"error_message,omitempty"`
}

func (d StageDetail) JSON() string {
	raw, _ := json.Marshal(d)
	return string(raw)
}
