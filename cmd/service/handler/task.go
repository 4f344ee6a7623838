package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/dataprep-ai/dataprep/app/logic/v1"
	"github.com/dataprep-ai/dataprep/app/response"
	"github.com/dataprep-ai/dataprep/pkg/types"
	"github.com/dataprep-ai/dataprep/pkg/utils"
)

func (s *HttpSrv) CreateTask(c *gin.Context) {
	var (
		err error
		req v1.CreateTaskArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	task, err := v1.NewTaskLogic(c, s.Core).CreateTask(req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, task)
}

func (s *HttpSrv) RetryTask(c *gin.Context) {
	taskID, _ := c.Params.Get("taskid")
	if err := v1.NewTaskLogic(c, s.Core).RetryTask(taskID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteTask(c *gin.Context) {
	taskID, _ := c.Params.Get("taskid")
	if err := v1.NewTaskLogic(c, s.Core).DeleteTask(taskID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) GetTask(c *gin.Context) {
	taskID, _ := c.Params.Get("taskid")
	detail, err := v1.NewTaskLogic(c, s.Core).GetTask(taskID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, detail)
}

type ListTasksRequest struct {
	Keyword   string            `json:"keyword" form:"keyword"`
	Namespace string            `json:"namespace" form:"namespace"`
	Status    *types.TaskStatus `json:"status" form:"status"`
	Page      uint64            `json:"page" form:"page"`
	PageSize  uint64            `json:"pagesize" form:"pagesize"`
}

type ListTasksResponse struct {
	List  []types.Task `json:"list"`
	Total int64        `json:"total"`
}

func (s *HttpSrv) ListTasks(c *gin.Context) {
	var (
		err error
		req ListTasksRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 || req.PageSize > 100 {
		req.PageSize = 20
	}

	tasks, total, err := v1.NewTaskLogic(c, s.Core).ListTasks(types.ListTaskOptions{
		Keyword:   req.Keyword,
		Namespace: req.Namespace,
		Status:    req.Status,
	}, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ListTasksResponse{
		List:  tasks,
		Total: total,
	})
}

func (s *HttpSrv) PreviewTransform(c *gin.Context) {
	taskID, _ := c.Params.Get("taskid")
	details, err := v1.NewTaskLogic(c, s.Core).PreviewTransform(taskID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, details)
}

func (s *HttpSrv) PreviewQA(c *gin.Context) {
	taskID, _ := c.Params.Get("taskid")
	pairs, err := v1.NewTaskLogic(c, s.Core).PreviewQA(taskID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, pairs)
}

func (s *HttpSrv) SupportTypes(c *gin.Context) {
	response.APISuccess(c, v1.NewTaskLogic(c, s.Core).SupportTypes())
}
