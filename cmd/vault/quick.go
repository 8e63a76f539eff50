package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

var quickTags string

var quickCmd = &cobra.Command{
	Use:     "quick <title> <content>",
	Short:   "Save a prompt in one line",
	Example: `  vault quick "Commit message" "Write a conventional commit message for this diff" -t git`,
	Args:    cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.quick(ctx, args[0], args[1], quickTags)
	}),
}

func init() {
	quickCmd.Flags().StringVarP(&quickTags, "tags", "t", "", "comma-separated tags")
	rootCmd.AddCommand(quickCmd)
}

func (a *App) quick(ctx context.Context, title, content, tagInput string) error {
	if strings.TrimSpace(content) == "" {
		return errEmptyContent
	}

	tags := a.parseTags(tagInput)
	if tags == nil {
		tags = a.defaultTags()
	}

	p, err := a.store.QuickCreate(ctx, title, content, tags)
	if err != nil {
		return err
	}

	a.print(a.ui.Success("Saved prompt"))
	a.print(a.ui.PromptLine(p))
	return nil
}
