package service

import (
	"github.com/dataprep-ai/dataprep/app/core"
	"github.com/dataprep-ai/dataprep/app/response"
	"github.com/dataprep-ai/dataprep/cmd/service/handler"
	"github.com/dataprep-ai/dataprep/cmd/service/middleware"
	"github.com/dataprep-ai/dataprep/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.Recovery(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.Observability(s.Core))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		tasks := apiV1.Group("/tasks")
		{
			tasks.POST("", s.CreateTask)
			tasks.GET("", s.ListTasks)
			tasks.GET("/:taskid", s.GetTask)
			tasks.DELETE("/:taskid", s.DeleteTask)
			tasks.POST("/:taskid/retry", s.RetryTask)
			tasks.GET("/:taskid/previews/transform", s.PreviewTransform)
			tasks.GET("/:taskid/previews/qa", s.PreviewQA)
		}
		apiV1.GET("/support-types", s.SupportTypes)
	}
}
