package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/promptvault/internal/core"
)

// Bedrock is a managed-model placeholder. It can tell whether credentials
// are present but cannot generate yet.
type Bedrock struct{}

func NewBedrock() *Bedrock {
	return &Bedrock{}
}

func (b *Bedrock) Suggest(ctx context.Context, cfg core.AIConfig, content, language string) (*core.Suggestions, error) {
	return nil, fmt.Errorf("bedrock generation: %w", core.ErrNotImplemented)
}

func (b *Bedrock) Validate(ctx context.Context, cfg core.AIConfig) error {
	if cfg.APIKey == "" || cfg.Region == "" {
		return errors.New("bedrock requires an access key and a region")
	}
	return nil
}
