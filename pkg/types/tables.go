package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "data_process_"

const (
	TABLE_TASK            = TableName("task")
	TABLE_TASK_LOG        = TableName("task_log")
	TABLE_TASK_STAGE_LOG  = TableName("task_stage_log")
	TABLE_DOCUMENT        = TableName("task_document")
	TABLE_DOCUMENT_CHUNK  = TableName("task_document_chunk")
	TABLE_TASK_DETAIL     = TableName("task_detail")
	TABLE_QUESTION_ANSWER = TableName("task_question_answer")
	TABLE_QA_CLEAN        = TableName("task_question_answer_clean")
	TABLE_QA_VECTOR       = TableName("task_question_answer_vector")
)
