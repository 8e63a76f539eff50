package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	suggestions *core.Suggestions
	suggestErr  error
	validateErr error

	suggestCalls  int
	validateCalls int
	lastCfg       core.AIConfig
	lastLanguage  string
}

func (s *stubProvider) Suggest(_ context.Context, cfg core.AIConfig, _, language string) (*core.Suggestions, error) {
	s.suggestCalls++
	s.lastCfg = cfg
	s.lastLanguage = language
	return s.suggestions, s.suggestErr
}

func (s *stubProvider) Validate(_ context.Context, cfg core.AIConfig) error {
	s.validateCalls++
	s.lastCfg = cfg
	return s.validateErr
}

func newService(p core.AIProvider) *Service {
	return NewService(map[core.ProviderID]core.AIProvider{core.ProviderOpenAI: p})
}

func TestGenerateSuggestions(t *testing.T) {
	ctx := context.Background()
	want := &core.Suggestions{Title: "Sorting", Tags: []string{"python"}}

	t.Run("returns provider result", func(t *testing.T) {
		p := &stubProvider{suggestions: want}
		cfg := core.AIConfig{Provider: core.ProviderOpenAI, APIKey: "k", Model: "m"}

		got, err := newService(p).GenerateSuggestions(ctx, "sort a list", "python", cfg)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, cfg, p.lastCfg)
		assert.Equal(t, "python", p.lastLanguage)
	})

	t.Run("unknown provider is an error", func(t *testing.T) {
		p := &stubProvider{suggestions: want}
		cfg := core.AIConfig{Provider: "gemini", APIKey: "k"}

		got, err := newService(p).GenerateSuggestions(ctx, "sort a list", "python", cfg)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, core.ErrProviderUnsupported))
		assert.Equal(t, 0, p.suggestCalls)
	})

	t.Run("unknown provider wins over missing key", func(t *testing.T) {
		_, err := newService(&stubProvider{}).GenerateSuggestions(ctx, "x", "text", core.AIConfig{Provider: "gemini"})
		assert.True(t, errors.Is(err, core.ErrProviderUnsupported))
	})

	tests := []struct {
		name      string
		content   string
		cfg       core.AIConfig
		provider  *stubProvider
		wantCalls int
	}{
		{
			name:      "empty key",
			content:   "sort a list",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI},
			provider:  &stubProvider{suggestions: want},
			wantCalls: 0,
		},
		{
			name:      "blank content",
			content:   " \n\t ",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI, APIKey: "k"},
			provider:  &stubProvider{suggestions: want},
			wantCalls: 0,
		},
		{
			name:      "provider failure is absorbed",
			content:   "sort a list",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI, APIKey: "k"},
			provider:  &stubProvider{suggestErr: errors.New("http 401: invalid key")},
			wantCalls: 1,
		},
		{
			name:      "provider returns nothing",
			content:   "sort a list",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI, APIKey: "k"},
			provider:  &stubProvider{},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newService(tt.provider).GenerateSuggestions(ctx, tt.content, "text", tt.cfg)
			assert.NoError(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.wantCalls, tt.provider.suggestCalls)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		cfg       core.AIConfig
		provider  *stubProvider
		want      bool
		wantCalls int
	}{
		{
			name:      "valid",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI, APIKey: "k"},
			provider:  &stubProvider{},
			want:      true,
			wantCalls: 1,
		},
		{
			name:      "rejected by provider",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI, APIKey: "k"},
			provider:  &stubProvider{validateErr: errors.New("http 401")},
			want:      false,
			wantCalls: 1,
		},
		{
			name:      "empty key",
			cfg:       core.AIConfig{Provider: core.ProviderOpenAI},
			provider:  &stubProvider{},
			want:      false,
			wantCalls: 0,
		},
		{
			name:      "unknown provider",
			cfg:       core.AIConfig{Provider: "gemini", APIKey: "k"},
			provider:  &stubProvider{},
			want:      false,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newService(tt.provider).ValidateConfig(ctx, tt.cfg)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.provider.validateCalls)
		})
	}
}

func TestListProviders(t *testing.T) {
	s := NewService(map[core.ProviderID]core.AIProvider{
		core.ProviderOpenAI:    &stubProvider{},
		core.ProviderCustom:    &stubProvider{},
		core.ProviderAnthropic: &stubProvider{},
		core.ProviderBedrock:   &stubProvider{},
	})

	assert.Equal(t, []core.ProviderID{
		core.ProviderAnthropic,
		core.ProviderBedrock,
		core.ProviderCustom,
		core.ProviderOpenAI,
	}, s.ListProviders())

	assert.Empty(t, NewService(nil).ListProviders())
}
