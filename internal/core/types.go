package core

import "time"

const (
	VaultName    = "PromptVault"
	VaultVersion = "0.1.0"

	// ExportVersion is written into every export envelope.
	ExportVersion = "1.0.0"
)

// Prompt is a stored text snippet with its metadata.
type Prompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Source    string    `json:"source"`
	Language  string    `json:"language"`
	Context   string    `json:"context"`
}

// HasTag reports exact membership of tag.
func (p Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PromptInput is everything a caller supplies on creation.
// ID and timestamps are minted by the store.
type PromptInput struct {
	Title    string
	Content  string
	Tags     []string
	Language string
	Source   string
	Context  string
}

// PromptUpdate carries the mutable fields. Nil fields are left untouched.
type PromptUpdate struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// ExportEnvelope is the versioned wrapper used for bulk export.
type ExportEnvelope struct {
	Version    string    `json:"version"`
	ExportDate time.Time `json:"exportDate"`
	Prompts    []Prompt  `json:"prompts"`
}

type StorageInfo struct {
	Path  string
	Count int
	Size  int64
}

// Suggestions is an inferred title and tag set. Never persisted directly.
type Suggestions struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}
