package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Approval ApprovalConfig `yaml:"approval"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type ServerConfig struct {
	Port            int `yaml:"port" env:"SERVER_PORT" env-default:"3000"`
	ReadTimeout     int `yaml:"read_timeout" env-default:"15"`
	WriteTimeout    int `yaml:"write_timeout" env-default:"15"`
	ShutdownTimeout int `yaml:"shutdown_timeout" env-default:"10"`
}

// StorageConfig selects the row-store backend. Backend is one of
// "memory", "csv", "sqlite" or "xlsx".
type StorageConfig struct {
	Backend    string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"csv"`
	DataDir    string `yaml:"data_dir" env:"STORAGE_DATA_DIR" env-default:"data"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"data/tracker.db"`
	XLSXPath   string `yaml:"xlsx_path" env:"STORAGE_XLSX_PATH" env-default:"data/tracker.xlsx"`
}

type ApprovalConfig struct {
	// AnyoneMayReject keeps the legacy behavior where rejecting a pending
	// task requires no identity check. When false, the submitter may not
	// reject their own entry.
	AnyoneMayReject bool `yaml:"anyone_may_reject" env:"APPROVAL_ANYONE_MAY_REJECT" env-default:"true"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return &cfg, nil
	}

	// No config file: environment variables and defaults only.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
