package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/spf13/cobra"
)

var suggestOpts struct {
	content  string
	file     string
	language string
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a title and tags for some content",
	Long: `Suggest a title and tags for content read from --content, --file or standard input.
The configured AI provider is asked when AI is enabled; keyword heuristics are used otherwise.`,
	Args: cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.suggest(ctx, suggestOpts.content, suggestOpts.file, suggestOpts.language)
	}),
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configured AI provider accepts the credentials",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		return app.validate(ctx)
	}),
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported AI providers",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		app.providers()
		return nil
	}),
}

func init() {
	f := suggestCmd.Flags()
	f.StringVarP(&suggestOpts.content, "content", "c", "", "text to analyze")
	f.StringVarP(&suggestOpts.file, "file", "f", "", "read the text from a file")
	f.StringVarP(&suggestOpts.language, "language", "l", "text", "language of the content")
	rootCmd.AddCommand(suggestCmd, validateCmd, providersCmd)
}

func (a *App) suggest(ctx context.Context, inline, file, language string) error {
	content, err := a.readContent(inline, file)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return errEmptyContent
	}

	s, origin := a.suggestionsFor(ctx, content, language)
	a.print(a.ui.Suggestions(s, origin))
	return nil
}

func (a *App) validate(ctx context.Context) error {
	cfg := a.aiCfg.ProviderConfig()
	if !a.suggester.ValidateConfig(ctx, cfg) {
		return errors.New("provider " + string(cfg.Provider) + " rejected the configuration")
	}
	a.print(a.ui.Success(fmt.Sprintf("Provider %s is configured correctly", cfg.Provider)))
	if !a.aiCfg.EnableAI {
		a.print(a.ui.Tip("AI suggestions are disabled; enable them with `vault init --enable-ai`"))
	}
	return nil
}

func (a *App) providers() {
	selected := core.ProviderID(a.aiCfg.Provider)

	var items []string
	for _, id := range a.suggester.ListProviders() {
		item := string(id)
		if id == selected {
			item += " (selected)"
		}
		items = append(items, item)
	}
	a.print(a.ui.List(items))
}
