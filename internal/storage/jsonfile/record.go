package jsonfile

import (
	"encoding/json"
	"time"

	"github.com/sandevgo/promptvault/internal/core"
)

// rawRecord is one prompt object as found on disk or in an import file.
// Every field is kept raw so a wrongly typed value costs that field only,
// never the record.
type rawRecord struct {
	ID        json.RawMessage `json:"id"`
	Title     json.RawMessage `json:"title"`
	Content   json.RawMessage `json:"content"`
	Tags      json.RawMessage `json:"tags"`
	CreatedAt json.RawMessage `json:"createdAt"`
	UpdatedAt json.RawMessage `json:"updatedAt"`
	Source    json.RawMessage `json:"source"`
	Language  json.RawMessage `json:"language"`
	Context   json.RawMessage `json:"context"`
}

// timestampLayouts are tried in order. Hand-edited files tend to use the
// shorter forms.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
}

// rawString returns the value when raw is a JSON string.
func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// rawTags returns the string elements of a JSON array. ok is false when raw
// is absent, null or not an array.
func rawTags(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		if tag, ok := rawString(item); ok {
			tags = append(tags, tag)
		}
	}
	return tags, true
}

// rawTime parses a timestamp string in any of timestampLayouts.
func rawTime(raw json.RawMessage) (time.Time, bool) {
	s, ok := rawString(raw)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// stored rebuilds a prompt from the prompts file. Missing or unreadable
// values fall back to empty ones; timestamps fall back to each other and
// then to now, and updatedAt is never before createdAt.
func (r rawRecord) stored(newID func() string, now func() time.Time) core.Prompt {
	p := core.Prompt{}
	p.ID, _ = rawString(r.ID)
	if p.ID == "" {
		p.ID = newID()
	}
	p.Title, _ = rawString(r.Title)
	p.Content, _ = rawString(r.Content)
	p.Source, _ = rawString(r.Source)
	p.Language, _ = rawString(r.Language)
	p.Context, _ = rawString(r.Context)

	if tags, ok := rawTags(r.Tags); ok {
		p.Tags = tags
	} else {
		p.Tags = []string{}
	}

	created, hasCreated := rawTime(r.CreatedAt)
	updated, hasUpdated := rawTime(r.UpdatedAt)
	switch {
	case hasCreated && !hasUpdated:
		updated = created
	case !hasCreated && hasUpdated:
		created = updated
	case !hasCreated && !hasUpdated:
		created = now()
		updated = created
	}
	if updated.Before(created) {
		updated = created
	}
	p.CreatedAt = created
	p.UpdatedAt = updated
	return p
}

// imported builds a new prompt from an import record. ok is false when the
// record has no usable title or content; every other field falls back to
// its import default.
func (r rawRecord) imported(id string, now time.Time) (core.Prompt, bool) {
	title, _ := rawString(r.Title)
	content, _ := rawString(r.Content)
	if title == "" || content == "" {
		return core.Prompt{}, false
	}

	p := core.Prompt{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// only a past timestamp survives
	if t, ok := rawTime(r.CreatedAt); ok && !t.After(now) {
		p.CreatedAt = t
	}

	if tags, ok := rawTags(r.Tags); ok {
		p.Tags = tags
	} else {
		p.Tags = []string{"imported"}
	}
	if p.Source, _ = rawString(r.Source); p.Source == "" {
		p.Source = "imported"
	}
	if p.Language, _ = rawString(r.Language); p.Language == "" {
		p.Language = "text"
	}
	p.Context, _ = rawString(r.Context)
	return p, true
}
