package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
)

const (
	AnthropicBaseURL      = "https://api.anthropic.com"
	AnthropicDefaultModel = "claude-3-haiku-20240307"
	anthropicVersion      = "2023-06-01"
)

type Anthropic struct {
	baseProvider
}

func NewAnthropic(baseURL string, client *http.Client) *Anthropic {
	return &Anthropic{
		baseProvider: newBaseProvider(baseURL, client),
	}
}

func (a *Anthropic) Suggest(ctx context.Context, cfg core.AIConfig, content, language string) (*core.Suggestions, error) {
	text, err := a.message(ctx, cfg, BuildPrompt(content, language), suggestMaxTokens)
	if err != nil {
		return nil, err
	}

	s := ParseSuggestions(text)
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparsableResponse, text)
	}
	return s, nil
}

func (a *Anthropic) Validate(ctx context.Context, cfg core.AIConfig) error {
	_, err := a.message(ctx, cfg, "test", 1)
	return err
}

func (a *Anthropic) message(ctx context.Context, cfg core.AIConfig, prompt string, maxTokens int) (string, error) {
	model := cfg.Model
	if model == "" {
		model = AnthropicDefaultModel
	}

	payload := map[string]any{
		"model":      model,
		"max_tokens": maxTokens,
		"messages":   []chatMessage{{Role: "user", Content: prompt}},
	}

	headers := map[string]string{
		"x-api-key":         cfg.APIKey,
		"anthropic-version": anthropicVersion,
	}

	data, err := a.postJSON(ctx, strings.TrimRight(a.baseURL, "/")+"/v1/messages", payload, headers)
	if err != nil {
		return "", err
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	var text string
	for _, c := range result.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	return text, nil
}
