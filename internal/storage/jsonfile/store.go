package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
)

// Store keeps the prompt collection in memory and mirrors every mutation to
// a single JSON file. Each write replaces the whole file.
//
// The mutex only protects the in-process index. Two processes sharing the
// same file are last-writer-wins.
type Store struct {
	dir  string
	file string

	mu    sync.RWMutex
	byID  map[string]*core.Prompt
	order []string

	loadErr error

	now   func() time.Time
	newID func() string
}

var _ core.PromptRepository = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id minting.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Open resolves the storage directory from cfg and loads the collection.
func Open(ctx context.Context, cfg core.StorageConfig, opts ...Option) (*Store, error) {
	return OpenDir(ctx, ResolveDir(cfg), opts...)
}

// OpenDir creates dir if needed and loads dir/prompts.json. A missing or
// broken file yields an empty collection; see LoadError.
func OpenDir(ctx context.Context, dir string, opts ...Option) (*Store, error) {
	s := &Store{
		dir:   dir,
		file:  filepath.Join(dir, promptsFileName),
		byID:  make(map[string]*core.Prompt),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	logger := log.FromCtx(ctx)
	logger.Debug().Str("path", s.file).Msg("opening prompt storage")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create storage directory: %w", core.ErrStorageIO, err)
	}

	if err := s.load(ctx); err != nil {
		s.loadErr = err
		logger.Error().Err(err).Str("path", s.file).Msg("failed to load prompts, starting empty")
	}

	logger.Debug().Int("count", len(s.order)).Msg("prompts loaded")
	return s, nil
}

// LoadError reports why the collection could not be read at startup, if it
// could not. The store is usable either way.
func (s *Store) LoadError() error {
	return s.loadErr
}

func (s *Store) Path() string {
	return s.file
}

func (s *Store) load(ctx context.Context) error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.FromCtx(ctx).Debug().Msg("prompts file not found, starting with empty collection")
			return nil
		}
		return fmt.Errorf("%w: read prompts: %w", core.ErrStorageIO, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: parse prompts: %w", core.ErrStorageIO, err)
	}

	for i, msg := range records {
		var rec rawRecord
		if err := json.Unmarshal(msg, &rec); err != nil || string(msg) == "null" {
			log.FromCtx(ctx).Warn().Int("index", i).Msg("skipping stored record that is not an object")
			continue
		}
		s.put(rec.stored(s.newID, s.now))
	}
	return nil
}

// put inserts or replaces. Replacing keeps the original position.
func (s *Store) put(p core.Prompt) {
	if _, ok := s.byID[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.byID[p.ID] = &p
}

// snapshot copies the collection in insertion order. Caller holds the lock.
func (s *Store) snapshot() []core.Prompt {
	out := make([]core.Prompt, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(*s.byID[id]))
	}
	return out
}

// persist rewrites the file from memory. Caller holds the write lock.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.MarshalIndent(s.snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal prompts: %w", core.ErrStorageIO, err)
	}

	if err := os.WriteFile(s.file, data, 0644); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("path", s.file).Msg("failed to save prompts")
		return fmt.Errorf("%w: write prompts: %w", core.ErrStorageIO, err)
	}

	log.FromCtx(ctx).Debug().Int("count", len(s.order)).Int("bytes", len(data)).Msg("prompts saved")
	return nil
}

func (s *Store) Create(ctx context.Context, input core.PromptInput) (core.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := core.Prompt{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		Tags:      cloneTags(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
		Source:    input.Source,
		Language:  input.Language,
		Context:   input.Context,
	}

	s.put(p)
	if err := s.persist(ctx); err != nil {
		return core.Prompt{}, err
	}

	log.FromCtx(ctx).Info().Str("id", p.ID).Str("title", p.Title).Msg("prompt created")
	return clone(p), nil
}

// QuickCreate stores a manually entered prompt with default provenance.
func (s *Store) QuickCreate(ctx context.Context, title, content string, tags []string) (core.Prompt, error) {
	return s.Create(ctx, core.PromptInput{
		Title:    title,
		Content:  content,
		Tags:     tags,
		Source:   "manual",
		Language: "text",
		Context:  "",
	})
}

func (s *Store) Get(ctx context.Context, id string) (core.Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return core.Prompt{}, false
	}
	return clone(*p), true
}

func (s *Store) Update(ctx context.Context, id string, upd core.PromptUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	p := clone(*cur)
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Tags != nil {
		p.Tags = cloneTags(*upd.Tags)
	}

	// wall clock may step back; updatedAt must not
	now := s.now()
	if now.Before(p.UpdatedAt) {
		now = p.UpdatedAt
	}
	p.UpdatedAt = now

	s.byID[id] = &p
	if err := s.persist(ctx); err != nil {
		return err
	}

	log.FromCtx(ctx).Info().Str("id", id).Msg("prompt updated")
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	delete(s.byID, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	log.FromCtx(ctx).Info().Str("id", id).Msg("prompt deleted")
	return nil
}

// List returns every prompt, most recently updated first.
func (s *Store) List(ctx context.Context) []core.Prompt {
	s.mu.RLock()
	out := s.snapshot()
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b core.Prompt) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// Search matches term case-insensitively against title, content and tags.
func (s *Store) Search(ctx context.Context, term string) []core.Prompt {
	needle := strings.ToLower(term)
	return s.filter(func(p *core.Prompt) bool {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			return true
		}
		return slices.ContainsFunc(p.Tags, func(t string) bool {
			return strings.Contains(strings.ToLower(t), needle)
		})
	})
}

func (s *Store) ByTag(ctx context.Context, tag string) []core.Prompt {
	return s.filter(func(p *core.Prompt) bool {
		return p.HasTag(tag)
	})
}

func (s *Store) AllTags(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, p := range s.byID {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	slices.Sort(tags)
	return tags
}

func (s *Store) Info(ctx context.Context) core.StorageInfo {
	s.mu.RLock()
	count := len(s.order)
	s.mu.RUnlock()

	var size int64
	if st, err := os.Stat(s.file); err == nil {
		size = st.Size()
	}
	return core.StorageInfo{Path: s.dir, Count: count, Size: size}
}

func (s *Store) filter(match func(p *core.Prompt) bool) []core.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Prompt, 0)
	for _, id := range s.order {
		if p := s.byID[id]; match(p) {
			out = append(out, clone(*p))
		}
	}
	return out
}

func clone(p core.Prompt) core.Prompt {
	p.Tags = cloneTags(p.Tags)
	return p
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
