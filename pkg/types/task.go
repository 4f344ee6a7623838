package types

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

type TaskStatus string

const (
	TASK_STATUS_PROCESSING       TaskStatus = "processing"
	TASK_STATUS_PROCESS_COMPLETE TaskStatus = "process_complete"
	TASK_STATUS_PROCESS_FAIL     TaskStatus = "process_fail"
)

func (s TaskStatus) String() string {
	return string(s)
}

// Terminal 任务状态离开 processing 后不再变化
func (s TaskStatus) Terminal() bool {
	return s == TASK_STATUS_PROCESS_COMPLETE || s == TASK_STATUS_PROCESS_FAIL
}

type TaskLogType string

const (
	TASK_LOG_TYPE_NOW   TaskLogType = "NOW"
	TASK_LOG_TYPE_RETRY TaskLogType = "RETRY"
)

// Task 数据处理任务，一次提交对应一条记录
type Task struct {
	ID                 string          `json:"id" db:"id"`
	Name               string          `json:"name" db:"name"`
	Namespace          string          `json:"namespace" db:"namespace"`
	FileType           string          `json:"file_type" db:"file_type"`
	Status             TaskStatus      `json:"status" db:"status"`
	CurrentLogID       string          `json:"current_log_id" db:"current_log_id"`
	PreDatasetName     string          `json:"pre_data_set_name" db:"pre_data_set_name"`
	PreDatasetVersion  string          `json:"pre_data_set_version" db:"pre_data_set_version"`
	PostDatasetName    string          `json:"post_data_set_name" db:"post_data_set_name"`
	PostDatasetVersion string          `json:"post_data_set_version" db:"post_data_set_version"`
	FileNames          json.RawMessage `json:"file_names" db:"file_names"`
	Config             json.RawMessage `json:"config" db:"config"`
	StartDatetime      int64           `json:"start_datetime" db:"start_datetime"`
	EndDatetime        int64           `json:"end_datetime" db:"end_datetime"`
	AuditFields
}

// TaskLog 任务的一次执行记录（首次执行或重试），关闭后不再修改
type TaskLog struct {
	ID            string      `json:"id" db:"id"`
	TaskID        string      `json:"task_id" db:"task_id"`
	Type          TaskLogType `json:"type" db:"type"`
	Status        TaskStatus  `json:"status" db:"status"`
	ErrorMsg      string      `json:"error_msg" db:"error_msg"`
	StartDatetime int64       `json:"start_datetime" db:"start_datetime"`
	EndDatetime   int64       `json:"end_datetime" db:"end_datetime"`
	AuditFields
}

// AuditFields 所有数据处理表共有的审计字段
type AuditFields struct {
	CreateDatetime int64  `json:"create_datetime" db:"create_datetime"`
	CreateUser     string `json:"create_user" db:"create_user"`
	CreateProgram  string `json:"create_program" db:"create_program"`
	UpdateDatetime int64  `json:"update_datetime" db:"update_datetime"`
	UpdateUser     string `json:"update_user" db:"update_user"`
	UpdateProgram  string `json:"update_program" db:"update_program"`
}

var AuditColumns = []string{"create_datetime", "create_user", "create_program", "update_datetime", "update_user", "update_program"}

type ListTaskOptions struct {
	Keyword   string
	Namespace string
	Status    *TaskStatus
}

func (opts ListTaskOptions) Apply(query *sq.SelectBuilder) {
	if opts.Keyword != "" {
		*query = query.Where(sq.Like{"name": "%" + opts.Keyword + "%"})
	}
	if opts.Namespace != "" {
		*query = query.Where(sq.Eq{"namespace": opts.Namespace})
	}
	if opts.Status != nil {
		*query = query.Where(sq.Eq{"status": *opts.Status})
	}
}

// FileNameList 解析 file_names 字段
func (t Task) FileNameList() ([]string, error) {
	var names []string
	if len(t.FileNames) == 0 {
		return names, nil
	}
	err := json.Unmarshal(t.FileNames, &names)
	return names, err
}

// ProcessConfig 解析 config 字段
func (t Task) ProcessConfig() ([]TransformOption, error) {
	var opts []TransformOption
	if len(t.Config) == 0 {
		return opts, nil
	}
	err := json.Unmarshal(t.Config, &opts)
	return opts, err
}
