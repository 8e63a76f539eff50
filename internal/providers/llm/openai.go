package llm

import "net/http"

const (
	OpenAIBaseURL      = "https://api.openai.com"
	OpenAIDefaultModel = "gpt-3.5-turbo"
)

// OpenAI provider is implemented using OpenAICompatible.
type OpenAI struct {
	*OpenAICompatible
}

// NewOpenAI creates a new OpenAI provider. A nil client gets the default timeout.
func NewOpenAI(baseURL string, client *http.Client) *OpenAI {
	return &OpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:      baseURL,
			DefaultModel: OpenAIDefaultModel,
			AuthHeader:   "Authorization",
			AuthPrefix:   "Bearer ",
		}, client),
	}
}
