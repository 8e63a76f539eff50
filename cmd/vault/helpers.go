package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/internal/service/suggest"
	"github.com/sandevgo/promptvault/pkg/log"
)

const heuristicOrigin = "heuristic"

var errEmptyContent = errors.New("prompt content is empty")

// readContent takes inline text first, then a file, then standard input.
func (a *App) readContent(inline, file string) (string, error) {
	switch {
	case inline != "":
		return inline, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

// suggestionsFor asks the configured provider when AI is enabled and falls
// back to keyword heuristics otherwise. The second result names the origin.
func (a *App) suggestionsFor(ctx context.Context, content, language string) (*core.Suggestions, string) {
	if a.aiCfg.EnableAI {
		cfg := a.aiCfg.ProviderConfig()
		s, err := a.suggester.GenerateSuggestions(ctx, content, language, cfg)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("ai suggestions unavailable")
		}
		if s != nil {
			return s, string(cfg.Provider)
		}
	}
	return suggest.Heuristic(content), heuristicOrigin
}

func (a *App) defaultTags() []string {
	if len(a.cfg.DefaultTags) > 0 {
		return append([]string(nil), a.cfg.DefaultTags...)
	}
	return []string{suggest.DefaultTag}
}

// parseTags returns nil when the user gave no tag input.
func (a *App) parseTags(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return suggest.ParseTagList(input)
}

func (a *App) print(s string) {
	fmt.Fprint(a.out, s)
}
