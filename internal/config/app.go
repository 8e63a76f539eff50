package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
)

type AppConfig struct {
	HomePath string `env:"PROMPTVAULT_HOME" envDefault:".promptvault"`

	// Storage location
	StorageMode   core.StorageMode `env:"PROMPTVAULT_STORAGE_MODE" envDefault:"global"`
	StoragePath   string           `env:"PROMPTVAULT_STORAGE_PATH"`
	WorkspaceRoot string           `env:"PROMPTVAULT_WORKSPACE"`

	DefaultTags []string `env:"PROMPTVAULT_DEFAULT_TAGS" envSeparator:","`
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}

	switch c.StorageMode {
	case core.StorageGlobal, core.StorageWorkspace, core.StorageCustom:
	default:
		return nil, fmt.Errorf("unknown storage mode: %q", c.StorageMode)
	}
	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetHomePath() string {
	return resolveHome(c.HomePath)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.GetHomePath(), ".env")
}

func (c AppConfig) GetStorageMode() core.StorageMode {
	return c.StorageMode
}

func (c AppConfig) GetStoragePath() string {
	return c.StoragePath
}

func (c AppConfig) GetWorkspaceRoot() string {
	return c.WorkspaceRoot
}

func (c AppConfig) GetGlobalPath() string {
	return c.GetHomePath()
}
