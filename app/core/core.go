package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dataprep-ai/dataprep/app/core/srv"
	"github.com/dataprep-ai/dataprep/app/store/sqlstore"
	"github.com/dataprep-ai/dataprep/pkg/dataset"
	"github.com/dataprep-ai/dataprep/pkg/objectstorage/s3"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores        func() *sqlstore.Provider
	objectStorage *s3.S3
	notifier      *dataset.Notifier
	httpEngine    *gin.Engine
	metrics       *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("dataprep", "core"),
		httpEngine: gin.New(),
	}

	setupSqlStore(core)

	if cfg.ObjectStorage.Endpoint != "" {
		core.objectStorage = s3.NewS3Client(
			cfg.ObjectStorage.Endpoint,
			cfg.ObjectStorage.Region,
			cfg.ObjectStorage.Bucket,
			cfg.ObjectStorage.AccessKey,
			cfg.ObjectStorage.SecretKey,
		)
	}

	core.srv = srv.SetupSrvs(
		srv.ApplyAI(cfg.AI), // 模型驱动选择与全局限速
	)

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) ObjectStorage() *s3.S3 {
	return s.objectStorage
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

// SetDatasetNotifier 注入数据集生命周期对象的状态写入实现
func (s *Core) SetDatasetNotifier(n *dataset.Notifier) {
	s.notifier = n
}

func (s *Core) DatasetNotifier() *dataset.Notifier {
	return s.notifier
}
