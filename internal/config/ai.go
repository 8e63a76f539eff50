package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
)

type AIConfig struct {
	EnableAI bool   `env:"PROMPTVAULT_ENABLE_AI" envDefault:"false"`
	Provider string `env:"PROMPTVAULT_AI_PROVIDER" envDefault:"openai"`
	// Empty means the provider's default model.
	Model   string        `env:"PROMPTVAULT_AI_MODEL"`
	Timeout time.Duration `env:"PROMPTVAULT_AI_TIMEOUT" envDefault:"120s"`

	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AWSAccessKey    string `env:"AWS_ACCESS_KEY_ID"`
	AWSRegion       string `env:"AWS_REGION" envDefault:"us-east-1"`
	CustomAPIKey    string `env:"CUSTOM_AI_API_KEY"`
	CustomEndpoint  string `env:"CUSTOM_AI_ENDPOINT"`
}

func ParseAIConfig() (*AIConfig, error) {
	c := &AIConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewAIConfig(ctx context.Context) *AIConfig {
	c, err := ParseAIConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse AI config")
	}
	return c
}

// ProviderConfig picks the credentials belonging to the selected provider.
// An unknown provider is passed through untouched so dispatch can reject it.
func (c AIConfig) ProviderConfig() core.AIConfig {
	cfg := core.AIConfig{
		Provider: core.ProviderID(c.Provider),
		Model:    c.Model,
	}

	switch cfg.Provider {
	case core.ProviderOpenAI:
		cfg.APIKey = c.OpenAIAPIKey
	case core.ProviderAnthropic:
		cfg.APIKey = c.AnthropicAPIKey
	case core.ProviderBedrock:
		cfg.APIKey = c.AWSAccessKey
		cfg.Region = c.AWSRegion
	case core.ProviderCustom:
		cfg.APIKey = c.CustomAPIKey
		cfg.Endpoint = c.CustomEndpoint
	}
	return cfg
}
