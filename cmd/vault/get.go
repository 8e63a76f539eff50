package main

import (
	"context"
	"fmt"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/spf13/cobra"
)

var getRaw bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.get(ctx, args[0], getRaw)
	}),
}

func init() {
	getCmd.Flags().BoolVarP(&getRaw, "raw", "r", false, "print only the content, for piping")
	rootCmd.AddCommand(getCmd)
}

func (a *App) get(ctx context.Context, id string, raw bool) error {
	p, ok := a.store.Get(ctx, id)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	if raw {
		a.print(p.Content)
		return nil
	}
	a.print(a.ui.PromptDetail(p))
	return nil
}
