package service

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dataprep-ai/dataprep/app/core"
	"github.com/dataprep-ai/dataprep/app/logic/v1/process"
	"github.com/dataprep-ai/dataprep/pkg/utils"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init service by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "data process service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app, err := setupApp(opts)
	if err != nil {
		return err
	}

	serve(app)
	return nil
}

// NewProcessCommand 只跑后台处理 worker，不开 HTTP 服务
func NewProcessCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "data process workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunProcess(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func RunProcess(opts *Options) error {
	if _, err := setupApp(opts); err != nil {
		return err
	}

	fmt.Println("Process starting...")
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs
	return nil
}

func setupApp(opts *Options) (*core.Core, error) {
	utils.SetupIDWorker(1)
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))

	_, err := process.StartProcess(process.Options{
		Store:         app.Store(),
		AI:            app.Srv().AI(),
		Storage:       objectStorageOrNil(app),
		Notifier:      app.DatasetNotifier(),
		Metrics:       app.Metrics(),
		DownloadDir:   app.Cfg().Process.DownloadDir,
		CreateProgram: app.Cfg().Process.CreateProgram,
	}, app.Cfg().Process.SweepCron)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// objectStorageOrNil 未配置对象存储时保持接口值为 nil，
// 避免携带 nil 指针的非 nil 接口
func objectStorageOrNil(app *core.Core) process.ObjectStorage {
	if app.ObjectStorage() == nil {
		return nil
	}
	return app.ObjectStorage()
}
