package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write every prompt to a portable JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.export(ctx, args[0])
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add prompts from an export file or a JSON array",
	Long: `Add prompts from an export file or a bare JSON array of prompts.
Every imported prompt gets a fresh id, so importing the same file twice duplicates it.`,
	Args: cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.importFile(ctx, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func (a *App) export(ctx context.Context, path string) error {
	if err := a.store.Export(ctx, path); err != nil {
		return err
	}
	a.print(a.ui.Success("Exported to " + path))
	return nil
}

func (a *App) importFile(ctx context.Context, path string) error {
	n, err := a.store.Import(ctx, path)
	if err != nil {
		return err
	}
	a.print(a.ui.Success(fmt.Sprintf("Imported %d prompt(s)", n)))
	return nil
}
