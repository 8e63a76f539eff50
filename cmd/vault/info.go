package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/internal/service/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where prompts are stored and how AI is configured",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.info(ctx)
	}),
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func (a *App) info(ctx context.Context) error {
	info := a.store.Info(ctx)

	a.print(ui.TitleStyle.Render(core.VaultName+" "+core.VaultVersion) + "\n")
	a.print(a.ui.Label("Storage", info.Path))
	a.print(a.ui.Label("Mode", string(a.cfg.GetStorageMode())))
	a.print(a.ui.Label("Prompts", strconv.Itoa(info.Count)))
	a.print(a.ui.Label("Size", fmt.Sprintf("%d bytes", info.Size)))
	a.print(a.ui.Label("AI", a.aiStatus()))
	return nil
}

func (a *App) aiStatus() string {
	if !a.aiCfg.EnableAI {
		return "disabled"
	}
	cfg := a.aiCfg.ProviderConfig()
	if cfg.APIKey == "" {
		return fmt.Sprintf("%s (no api key)", cfg.Provider)
	}
	return string(cfg.Provider)
}
