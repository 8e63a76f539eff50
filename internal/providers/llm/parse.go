package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
)

const (
	maxTitleLength = 100
	maxTags        = 5
)

var ErrUnparsableResponse = errors.New("unparsable suggestion response")

// ParseSuggestions pulls the JSON object out of a model reply, which may be
// wrapped in prose. Returns nil unless the object has a non-empty string
// title and an array of string tags.
func ParseSuggestions(raw string) *core.Suggestions {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil
	}

	var parsed struct {
		Title json.RawMessage `json:"title"`
		Tags  json.RawMessage `json:"tags"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil
	}

	var title string
	if err := json.Unmarshal(parsed.Title, &title); err != nil {
		return nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	if t := bytes.TrimSpace(parsed.Tags); len(t) == 0 || t[0] != '[' {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(parsed.Tags, &tags); err != nil {
		return nil
	}

	if r := []rune(title); len(r) > maxTitleLength {
		title = string(r[:maxTitleLength])
	}
	normalized := make([]string, 0, min(len(tags), maxTags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if normalized = append(normalized, tag); len(normalized) == maxTags {
			break
		}
	}

	return &core.Suggestions{Title: title, Tags: normalized}
}
