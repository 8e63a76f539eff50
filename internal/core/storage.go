package core

import "context"

type PromptRepository interface {
	Create(ctx context.Context, input PromptInput) (Prompt, error)
	QuickCreate(ctx context.Context, title, content string, tags []string) (Prompt, error)
	Get(ctx context.Context, id string) (Prompt, bool)
	Update(ctx context.Context, id string, upd PromptUpdate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) []Prompt
	Search(ctx context.Context, term string) []Prompt
	ByTag(ctx context.Context, tag string) []Prompt
	AllTags(ctx context.Context) []string
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (int, error)
	Info(ctx context.Context) StorageInfo
}
