package main

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/internal/service/suggest"
	"github.com/spf13/cobra"
)

var updateOpts struct {
	title   string
	content string
	tags    string
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a prompt's title, content or tags",
	Long:  `Only the flags given are changed. Identity, creation time and provenance are kept.`,
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		var upd core.PromptUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &updateOpts.title
		}
		if cmd.Flags().Changed("content") {
			upd.Content = &updateOpts.content
		}
		if cmd.Flags().Changed("tags") {
			tags := updateTags(updateOpts.tags)
			upd.Tags = &tags
		}
		return app.update(ctx, args[0], upd)
	}),
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a prompt",
	Args:    cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.delete(ctx, args[0])
	}),
}

func init() {
	f := updateCmd.Flags()
	f.StringVar(&updateOpts.title, "title", "", "new title")
	f.StringVarP(&updateOpts.content, "content", "c", "", "new content")
	f.StringVarP(&updateOpts.tags, "tags", "t", "", "new comma-separated tags, replacing the old ones")
	rootCmd.AddCommand(updateCmd, deleteCmd)
}

// updateTags parses --tags for update. Input without any tag clears them.
func updateTags(input string) []string {
	if strings.Trim(input, ", \t") == "" {
		return []string{}
	}
	return suggest.ParseTagList(input)
}

func (a *App) update(ctx context.Context, id string, upd core.PromptUpdate) error {
	if upd.Title == nil && upd.Content == nil && upd.Tags == nil {
		return errors.New("nothing to update; pass --title, --content or --tags")
	}
	if err := a.store.Update(ctx, id, upd); err != nil {
		return err
	}

	p, _ := a.store.Get(ctx, id)
	a.print(a.ui.Success("Updated prompt"))
	a.print(a.ui.PromptLine(p))
	return nil
}

func (a *App) delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, id); err != nil {
		return err
	}
	a.print(a.ui.Success("Deleted " + id))
	return nil
}
