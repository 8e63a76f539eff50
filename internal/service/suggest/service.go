package suggest

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
)

var _ core.Suggester = (*Service)(nil)

// Service dispatches suggestion requests to the provider selected by the
// caller's config. Provider failures never reach the caller.
type Service struct {
	providers map[core.ProviderID]core.AIProvider
}

func NewService(providers map[core.ProviderID]core.AIProvider) *Service {
	return &Service{providers: providers}
}

func (s *Service) GenerateSuggestions(ctx context.Context, content, language string, cfg core.AIConfig) (*core.Suggestions, error) {
	provider, ok := s.providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrProviderUnsupported, cfg.Provider)
	}

	logger := log.FromCtx(ctx).With().Str("provider", string(cfg.Provider)).Logger()

	if cfg.APIKey == "" {
		logger.Debug().Msg("no api key configured, skipping suggestions")
		return nil, nil
	}
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	suggestions, err := provider.Suggest(ctx, cfg, content, language)
	if err != nil {
		logger.Warn().Err(err).Msg("suggestion request failed")
		return nil, nil
	}
	if suggestions == nil {
		return nil, nil
	}

	logger.Debug().
		Str("title", suggestions.Title).
		Strs("tags", suggestions.Tags).
		Msg("received suggestions")

	return suggestions, nil
}

func (s *Service) ValidateConfig(ctx context.Context, cfg core.AIConfig) bool {
	provider, ok := s.providers[cfg.Provider]
	if !ok || cfg.APIKey == "" {
		return false
	}

	if err := provider.Validate(ctx, cfg); err != nil {
		log.FromCtx(ctx).Warn().
			Err(err).
			Str("provider", string(cfg.Provider)).
			Msg("provider validation failed")
		return false
	}
	return true
}

func (s *Service) ListProviders() []core.ProviderID {
	ids := make([]core.ProviderID, 0, len(s.providers))
	for id := range s.providers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
