package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dataprep-ai/dataprep/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr          string        `toml:"addr"`
	Log           Log           `toml:"log"`
	Postgres      PGConfig      `toml:"postgres"`
	ObjectStorage S3Config      `toml:"object_storage"`
	AI            srv.AIConfig  `toml:"ai"`
	Process       ProcessConfig `toml:"process"`
}

type ProcessConfig struct {
	// DownloadDir 任务源文件与导出产物的本地暂存目录
	DownloadDir string `toml:"download_dir"`
	// SweepCron 卡死任务巡检表达式，空表示关闭巡检
	SweepCron string `toml:"sweep_cron"`
	// CreateProgram 审计字段里写入的程序标识
	CreateProgram string `toml:"create_program"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DATAPREP_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.ObjectStorage = S3Config{
		Bucket:    os.Getenv("DATAPREP_S3_BUCKET"),
		Region:    os.Getenv("DATAPREP_S3_REGION"),
		Endpoint:  os.Getenv("DATAPREP_S3_ENDPOINT"),
		AccessKey: os.Getenv("DATAPREP_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("DATAPREP_S3_SECRET_KEY"),
	}
	c.Process.DownloadDir = os.Getenv("DATAPREP_DOWNLOAD_DIR")
	c.Process.SweepCron = os.Getenv("DATAPREP_SWEEP_CRON")
	c.Process.CreateProgram = os.Getenv("DATAPREP_CREATE_PROGRAM")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("DATAPREP_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DATAPREP_LOG_LEVEL")
	l.Path = os.Getenv("DATAPREP_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
