package core

import "context"

// ProviderID names an AI backend. The set is closed.
type ProviderID string

const (
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderBedrock   ProviderID = "bedrock"
	ProviderCustom    ProviderID = "custom"
)

// AIConfig selects a provider and carries its credentials.
type AIConfig struct {
	Provider ProviderID
	APIKey   string
	Model    string
	Endpoint string
	Region   string
}

// AIProvider is one backend variant. Implementations report failures as
// errors; absorbing them is the caller's concern.
type AIProvider interface {
	Suggest(ctx context.Context, cfg AIConfig, content, language string) (*Suggestions, error)
	Validate(ctx context.Context, cfg AIConfig) error
}

type Suggester interface {
	GenerateSuggestions(ctx context.Context, content, language string, cfg AIConfig) (*Suggestions, error)
	ValidateConfig(ctx context.Context, cfg AIConfig) bool
	ListProviders() []ProviderID
}
