package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/env"
	"github.com/sandevgo/promptvault/pkg/log"
	"github.com/spf13/cobra"
)

// initOptions holds only what the user asked to change; nil keeps the
// current value.
type initOptions struct {
	storageMode *string
	storagePath *string
	provider    *string
	apiKey      *string
	endpoint    *string
	model       *string
	region      *string
	enableAI    *bool
}

var initFlags struct {
	storageMode string
	storagePath string
	provider    string
	apiKey      string
	endpoint    string
	model       string
	region      string
	enableAI    bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the vault configuration to <home>/.env",
	Long: `Write the effective configuration, with the given changes, to the .env file in
the vault home. Keys the vault does not own are preserved.`,
	Example: `  vault init --provider anthropic --api-key sk-ant-... --enable-ai
  vault init --storage-mode custom --storage-path ~/prompts`,
	Args: cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		var opts initOptions
		f := cmd.Flags()
		if f.Changed("storage-mode") {
			opts.storageMode = &initFlags.storageMode
		}
		if f.Changed("storage-path") {
			opts.storagePath = &initFlags.storagePath
		}
		if f.Changed("provider") {
			opts.provider = &initFlags.provider
		}
		if f.Changed("api-key") {
			opts.apiKey = &initFlags.apiKey
		}
		if f.Changed("endpoint") {
			opts.endpoint = &initFlags.endpoint
		}
		if f.Changed("model") {
			opts.model = &initFlags.model
		}
		if f.Changed("region") {
			opts.region = &initFlags.region
		}
		if f.Changed("enable-ai") {
			opts.enableAI = &initFlags.enableAI
		}
		return app.writeConfig(ctx, opts)
	}),
}

func init() {
	f := initCmd.Flags()
	f.StringVar(&initFlags.storageMode, "storage-mode", "", "global, workspace or custom")
	f.StringVar(&initFlags.storagePath, "storage-path", "", "directory used by custom storage mode")
	f.StringVar(&initFlags.provider, "provider", "", "AI provider: openai, anthropic, bedrock or custom")
	f.StringVar(&initFlags.apiKey, "api-key", "", "API key (access key for bedrock) of the selected provider")
	f.StringVar(&initFlags.endpoint, "endpoint", "", "base URL of a custom OpenAI-compatible server")
	f.StringVar(&initFlags.model, "model", "", "model override; empty uses the provider default")
	f.StringVar(&initFlags.region, "region", "", "AWS region for bedrock")
	f.BoolVar(&initFlags.enableAI, "enable-ai", false, "use the AI provider for suggestions")
	rootCmd.AddCommand(initCmd)
}

func (a *App) writeConfig(ctx context.Context, opts initOptions) error {
	logger := log.FromCtx(ctx)

	// a one-off --workspace is not saved
	appCfg := a.fileCfg
	aiCfg := *a.aiCfg

	if opts.storageMode != nil {
		appCfg.StorageMode = core.StorageMode(*opts.storageMode)
	}
	switch appCfg.StorageMode {
	case core.StorageGlobal, core.StorageWorkspace, core.StorageCustom:
	default:
		return fmt.Errorf("unknown storage mode: %q", appCfg.StorageMode)
	}
	if opts.storagePath != nil {
		appCfg.StoragePath = *opts.storagePath
	}

	if opts.provider != nil {
		aiCfg.Provider = *opts.provider
	}
	provider := core.ProviderID(aiCfg.Provider)
	switch provider {
	case core.ProviderOpenAI, core.ProviderAnthropic, core.ProviderBedrock, core.ProviderCustom:
	default:
		return fmt.Errorf("%w: %q", core.ErrProviderUnsupported, aiCfg.Provider)
	}
	if opts.apiKey != nil {
		switch provider {
		case core.ProviderOpenAI:
			aiCfg.OpenAIAPIKey = *opts.apiKey
		case core.ProviderAnthropic:
			aiCfg.AnthropicAPIKey = *opts.apiKey
		case core.ProviderBedrock:
			aiCfg.AWSAccessKey = *opts.apiKey
		case core.ProviderCustom:
			aiCfg.CustomAPIKey = *opts.apiKey
		}
	}
	if opts.endpoint != nil {
		aiCfg.CustomEndpoint = *opts.endpoint
	}
	if opts.model != nil {
		aiCfg.Model = *opts.model
	}
	if opts.region != nil {
		aiCfg.AWSRegion = *opts.region
	}
	if opts.enableAI != nil {
		aiCfg.EnableAI = *opts.enableAI
	}

	envPath := a.cfg.GetEnvPath()
	existing, err := godotenv.Read(envPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envPath, err)
		}
		existing = map[string]string{}
	}

	// the home is located before .env is read, so it cannot live inside it
	appCfg.HomePath = ""

	content, err := env.MarshalEnv(existing, &appCfg, &aiCfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(envPath), 0755); err != nil {
		return fmt.Errorf("create home: %w", err)
	}
	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("write %s: %w", envPath, err)
	}

	logger.Debug().Str("path", envPath).Msg("configuration written")
	a.print(a.ui.Success("Configuration written to " + envPath))
	return nil
}
