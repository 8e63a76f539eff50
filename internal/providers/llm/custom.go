package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/sandevgo/promptvault/internal/core"
)

var errNoEndpoint = errors.New("custom endpoint is not configured")

// CustomOpenAI talks to any OpenAI-compatible server. The endpoint is taken
// from each call's config.
type CustomOpenAI struct {
	*OpenAICompatible
}

func NewCustomOpenAI(client *http.Client) *CustomOpenAI {
	return &CustomOpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			DefaultModel: OpenAIDefaultModel,
			AuthHeader:   "Authorization",
			AuthPrefix:   "Bearer ",
		}, client),
	}
}

func (c *CustomOpenAI) Suggest(ctx context.Context, cfg core.AIConfig, content, language string) (*core.Suggestions, error) {
	if cfg.Endpoint == "" {
		return nil, errNoEndpoint
	}
	return c.suggest(ctx, cfg.Endpoint, cfg, content, language)
}

func (c *CustomOpenAI) Validate(ctx context.Context, cfg core.AIConfig) error {
	if cfg.Endpoint == "" {
		return errNoEndpoint
	}
	return c.validate(ctx, cfg.Endpoint, cfg)
}
