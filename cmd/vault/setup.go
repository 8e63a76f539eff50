package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/promptvault/internal/config"
	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/internal/providers/llm"
	"github.com/sandevgo/promptvault/internal/service/suggest"
	"github.com/sandevgo/promptvault/internal/service/ui"
	"github.com/sandevgo/promptvault/internal/storage/jsonfile"
	"github.com/sandevgo/promptvault/pkg/log"
	"github.com/spf13/cobra"
)

// App is the per-invocation wiring shared by every command.
type App struct {
	cfg       *config.AppConfig
	fileCfg   config.AppConfig // before --workspace
	aiCfg     *config.AIConfig
	store     core.PromptRepository
	suggester core.Suggester
	ui        *ui.Formatter

	in  io.Reader
	out io.Writer
}

func NewApp(ctx context.Context) (*App, error) {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetHomePath()); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// 1. Configuration
	appCfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("app config: %w", err)
	}
	aiCfg, err := config.ParseAIConfig()
	if err != nil {
		return nil, fmt.Errorf("ai config: %w", err)
	}
	fileCfg := *appCfg
	if err := applyWorkspace(appCfg, workspace); err != nil {
		return nil, err
	}

	// 2. Storage
	store, err := jsonfile.Open(ctx, appCfg)
	if err != nil {
		return nil, err
	}
	if loadErr := store.LoadError(); loadErr != nil {
		logger.Warn().
			Err(loadErr).
			Str("path", store.Path()).
			Msg("prompt file could not be loaded, starting with an empty vault")
	}

	// 3. AI suggestions
	suggester := suggest.NewService(llm.NewProviders(ctx, aiCfg.Timeout))

	logger.Debug().
		Str("storage", store.Path()).
		Str("provider", aiCfg.Provider).
		Bool("ai_enabled", aiCfg.EnableAI).
		Msg("vault ready")

	return &App{
		cfg:       appCfg,
		fileCfg:   fileCfg,
		aiCfg:     aiCfg,
		store:     store,
		suggester: suggester,
		ui:        ui.NewFormatter(),
		in:        os.Stdin,
		out:       os.Stdout,
	}, nil
}

// runWithApp wraps a command body with logging and vault setup.
func runWithApp(fn func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app, err := NewApp(ctx)
		if err != nil {
			return err
		}
		app.in = cmd.InOrStdin()
		app.out = cmd.OutOrStdout()

		return fn(ctx, app, cmd, args)
	}
}

// applyWorkspace points storage at dir. An explicit custom path still wins.
func applyWorkspace(cfg *config.AppConfig, dir string) error {
	if dir == "" {
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("workspace path: %w", err)
	}
	cfg.WorkspaceRoot = abs
	if cfg.StorageMode == core.StorageGlobal {
		cfg.StorageMode = core.StorageWorkspace
	}
	return nil
}

func initEnv(ctx context.Context, homePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(homePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
