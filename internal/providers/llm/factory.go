package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
)

var (
	_ core.AIProvider = (*OpenAI)(nil)
	_ core.AIProvider = (*Anthropic)(nil)
	_ core.AIProvider = (*Bedrock)(nil)
	_ core.AIProvider = (*CustomOpenAI)(nil)
)

// NewProviders builds every known provider variant sharing one HTTP client.
func NewProviders(ctx context.Context, timeout time.Duration) map[core.ProviderID]core.AIProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	log.FromCtx(ctx).Debug().
		Dur("timeout", timeout).
		Msg("registering llm providers")

	return map[core.ProviderID]core.AIProvider{
		core.ProviderOpenAI:    NewOpenAI(OpenAIBaseURL, client),
		core.ProviderAnthropic: NewAnthropic(AnthropicBaseURL, client),
		core.ProviderBedrock:   NewBedrock(),
		core.ProviderCustom:    NewCustomOpenAI(client),
	}
}
