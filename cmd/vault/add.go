package main

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
	"github.com/spf13/cobra"
)

type addOptions struct {
	title    string
	content  string
	file     string
	tags     string
	language string
	source   string
	context  string
	ai       bool
}

var addOpts addOptions

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Save a new prompt",
	Long: `Save a new prompt. Content is read from --content, --file or standard input.
With --ai a missing title or tag list is suggested from the content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		opts := addOpts
		if len(args) == 1 {
			opts.title = args[0]
		}
		return app.add(ctx, opts)
	}),
}

func init() {
	f := addCmd.Flags()
	f.StringVarP(&addOpts.content, "content", "c", "", "prompt text")
	f.StringVarP(&addOpts.file, "file", "f", "", "read prompt text from a file")
	f.StringVarP(&addOpts.tags, "tags", "t", "", "comma-separated tags")
	f.StringVarP(&addOpts.language, "language", "l", "text", "language of the prompt content")
	f.StringVar(&addOpts.source, "source", "cli", "where the prompt came from")
	f.StringVar(&addOpts.context, "context", "", "free-form origin context, e.g. a file path")
	f.BoolVar(&addOpts.ai, "ai", false, "suggest a missing title or tags from the content")
	rootCmd.AddCommand(addCmd)
}

func (a *App) add(ctx context.Context, opts addOptions) error {
	content, err := a.readContent(opts.content, opts.file)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return errEmptyContent
	}

	title := strings.TrimSpace(opts.title)
	tags := a.parseTags(opts.tags)

	if opts.ai && (title == "" || tags == nil) {
		s, origin := a.suggestionsFor(ctx, content, opts.language)
		log.FromCtx(ctx).Debug().Str("origin", origin).Msg("filled prompt metadata from suggestions")
		if title == "" {
			title = s.Title
		}
		if tags == nil {
			tags = s.Tags
		}
	}

	if title == "" {
		return errors.New("a title is required; pass one or use --ai")
	}
	if tags == nil {
		tags = a.defaultTags()
	}

	p, err := a.store.Create(ctx, core.PromptInput{
		Title:    title,
		Content:  content,
		Tags:     tags,
		Language: opts.language,
		Source:   opts.source,
		Context:  opts.context,
	})
	if err != nil {
		return err
	}

	a.print(a.ui.Success("Saved prompt"))
	a.print(a.ui.PromptLine(p))
	return nil
}
