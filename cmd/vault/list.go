package main

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List prompts, most recently updated first",
	Args:    cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		app.print(app.ui.PromptList(app.store.List(ctx)))
		return nil
	}),
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find prompts whose title, content or tags contain term",
	Long:  `Case-insensitive substring match over title and content, and over each tag.`,
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		app.print(app.ui.PromptList(app.store.Search(ctx, args[0])))
		return nil
	}),
}

var tagCmd = &cobra.Command{
	Use:   "tag <tag>",
	Short: "List prompts carrying exactly this tag",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		app.print(app.ui.PromptList(app.store.ByTag(ctx, args[0])))
		return nil
	}),
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag in use",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.tags(ctx)
	}),
}

func init() {
	rootCmd.AddCommand(listCmd, searchCmd, tagCmd, tagsCmd)
}

func (a *App) tags(ctx context.Context) error {
	tags := a.store.AllTags(ctx)
	if len(tags) == 0 {
		a.print(a.ui.Tip("no tags yet; add some with `vault add -t a,b`"))
		return nil
	}
	a.print(a.ui.List(tags))
	return nil
}
