package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
)

const (
	suggestMaxTokens   = 150
	suggestTemperature = 0.3
)

var errEmptyCompletion = errors.New("empty completion")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAICompatible speaks the chat-completions protocol. Credentials come
// with each call, so one instance serves any key.
type OpenAICompatible struct {
	baseProvider
	defaultModel string
	authHeader   string
	authPrefix   string
}

type OpenAICompatibleConfig struct {
	BaseURL      string
	DefaultModel string
	AuthHeader   string // e.g., "Authorization"
	AuthPrefix   string // e.g., "Bearer "
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig, client *http.Client) *OpenAICompatible {
	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, client),
		defaultModel: cfg.DefaultModel,
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
	}
}

func (o *OpenAICompatible) Suggest(ctx context.Context, cfg core.AIConfig, content, language string) (*core.Suggestions, error) {
	return o.suggest(ctx, o.baseURL, cfg, content, language)
}

func (o *OpenAICompatible) Validate(ctx context.Context, cfg core.AIConfig) error {
	return o.validate(ctx, o.baseURL, cfg)
}

func (o *OpenAICompatible) suggest(ctx context.Context, base string, cfg core.AIConfig, content, language string) (*core.Suggestions, error) {
	payload := map[string]any{
		"model": o.model(cfg),
		"messages": []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: BuildPrompt(content, language)},
		},
		"max_tokens":  suggestMaxTokens,
		"temperature": suggestTemperature,
	}

	text, err := o.complete(ctx, base, cfg.APIKey, payload)
	if err != nil {
		return nil, err
	}

	s := ParseSuggestions(text)
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparsableResponse, text)
	}
	return s, nil
}

func (o *OpenAICompatible) validate(ctx context.Context, base string, cfg core.AIConfig) error {
	payload := map[string]any{
		"model":      o.model(cfg),
		"messages":   []chatMessage{{Role: "user", Content: "test"}},
		"max_tokens": 1,
	}

	_, err := o.complete(ctx, base, cfg.APIKey, payload)
	if errors.Is(err, errEmptyCompletion) {
		// a one-token reply may legitimately be empty
		return nil
	}
	return err
}

func (o *OpenAICompatible) complete(ctx context.Context, base, apiKey string, payload map[string]any) (string, error) {
	headers := make(map[string]string)
	if o.authHeader != "" && apiKey != "" {
		headers[o.authHeader] = o.authPrefix + apiKey
	}

	data, err := o.postJSON(ctx, chatCompletionsURL(base), payload, headers)
	if err != nil {
		return "", err
	}
	return parseOpenAIResponse(data)
}

func (o *OpenAICompatible) model(cfg core.AIConfig) string {
	if cfg.Model != "" {
		return cfg.Model
	}
	return o.defaultModel
}

func parseOpenAIResponse(data []byte) (string, error) {
	var result struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices: %s", string(data))
	}
	if result.Choices[0].Message.Content == "" {
		return "", errEmptyCompletion
	}
	return result.Choices[0].Message.Content, nil
}

// chatCompletionsURL accepts a bare host, a /v1 base or a full endpoint.
func chatCompletionsURL(base string) string {
	base = strings.TrimRight(base, "/")
	switch {
	case strings.HasSuffix(base, "/chat/completions"):
		return base
	case strings.HasSuffix(base, "/v1"):
		return base + "/chat/completions"
	default:
		return base + "/v1/chat/completions"
	}
}
