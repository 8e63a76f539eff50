package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newClock() *stepClock {
	return &stepClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := OpenDir(context.Background(), dir, WithClock(newClock().Now))
	require.NoError(t, err)
	require.NoError(t, s.LoadError())
	return s, dir
}

func input(title, content string, tags ...string) core.PromptInput {
	return core.PromptInput{
		Title:    title,
		Content:  content,
		Tags:     tags,
		Language: "text",
		Source:   "manual",
		Context:  "",
	}
}

func ptr[T any](v T) *T { return &v }

func TestStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	p, err := s.Create(ctx, input("Foo", "bar", "x"))
	require.NoError(t, err)

	assert.Equal(t, "Foo", p.Title)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	got, ok := s.Get(ctx, p.ID)
	require.True(t, ok)
	assert.Equal(t, "bar", got.Content)
	assert.Equal(t, p, got)
}

func TestStore_Create_UniqueIDsAndDuplicatesAllowed(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, err := s.Create(ctx, input("Same", "same"))
	require.NoError(t, err)
	b, err := s.Create(ctx, input("Same", "same"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.List(ctx), 2)
}

func TestStore_Create_NilTagsStoredAsEmpty(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	p, err := s.Create(ctx, core.PromptInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestStore_Create_ReturnsDetachedCopy(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	tags := []string{"a"}
	p, err := s.Create(ctx, input("t", "c", tags...))
	require.NoError(t, err)

	p.Tags[0] = "mutated"
	got, _ := s.Get(ctx, p.ID)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestStore_QuickCreate(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	p, err := s.QuickCreate(context.Background(), "Quick", "body", []string{"q"})
	require.NoError(t, err)

	assert.Equal(t, "manual", p.Source)
	assert.Equal(t, "text", p.Language)
	assert.Equal(t, "", p.Context)
	assert.Equal(t, []string{"q"}, p.Tags)
}

func TestStore_Get_Missing(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	_, ok := s.Get(context.Background(), "non-existent-id")
	assert.False(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	s, dir := newTestStore(t)
	ctx := context.Background()

	p, err := s.Create(ctx, core.PromptInput{
		Title:    "Persisted",
		Content:  "survives restart",
		Tags:     []string{"disk"},
		Language: "go",
		Source:   "editor",
		Context:  "/tmp/main.go",
	})
	require.NoError(t, err)

	reopened, err := OpenDir(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, reopened.LoadError())

	got, ok := reopened.Get(ctx, p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestStore_FileFormat(t *testing.T) {
	t.Parallel()
	s, dir := newTestStore(t)

	_, err := s.Create(context.Background(), input("t", "c", "a"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "prompts.json"))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"id\": "), "unexpected layout: %s", text)
	assert.Contains(t, text, `"createdAt": "2025-01-01T00:00:01Z"`)
}

func TestStore_Update(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	orig, err := s.Create(ctx, input("Original Title", "Original content", "original"))
	require.NoError(t, err)

	err = s.Update(ctx, orig.ID, core.PromptUpdate{
		Title: ptr("Updated Title"),
		Tags:  ptr([]string{"updated", "modified"}),
	})
	require.NoError(t, err)

	got, ok := s.Get(ctx, orig.ID)
	require.True(t, ok)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, []string{"updated", "modified"}, got.Tags)
	assert.Equal(t, "Original content", got.Content)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(orig.UpdatedAt))
}

func TestStore_Update_EmptyTagsReplace(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	p, err := s.Create(ctx, input("t", "c", "a", "b"))
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, p.ID, core.PromptUpdate{Tags: ptr([]string{})}))
	got, _ := s.Get(ctx, p.ID)
	assert.Empty(t, got.Tags)

	require.NoError(t, s.Update(ctx, p.ID, core.PromptUpdate{Content: ptr("new")}))
	got, _ = s.Get(ctx, p.ID)
	assert.Empty(t, got.Tags)
	assert.Equal(t, "new", got.Content)
}

func TestStore_Update_ClockStepsBack(t *testing.T) {
	t.Parallel()
	clock := newClock()
	s, err := OpenDir(context.Background(), t.TempDir(), WithClock(clock.Now))
	require.NoError(t, err)
	ctx := context.Background()

	p, err := s.Create(ctx, input("t", "c"))
	require.NoError(t, err)

	clock.step = -time.Hour
	require.NoError(t, s.Update(ctx, p.ID, core.PromptUpdate{Title: ptr("t2")}))

	got, _ := s.Get(ctx, p.ID)
	assert.False(t, got.UpdatedAt.Before(p.UpdatedAt))
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	err := s.Update(ctx, "missing", core.PromptUpdate{Title: ptr("x")})
	assert.True(t, errors.Is(err, core.ErrNotFound))

	err = s.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	s, dir := newTestStore(t)
	ctx := context.Background()

	keep, err := s.Create(ctx, input("Keep", "keep"))
	require.NoError(t, err)
	gone, err := s.Create(ctx, input("To Be Deleted", "This will be deleted", "delete"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, gone.ID))

	_, ok := s.Get(ctx, gone.ID)
	assert.False(t, ok)
	assert.True(t, errors.Is(s.Delete(ctx, gone.ID), core.ErrNotFound))

	reopened, err := OpenDir(ctx, dir)
	require.NoError(t, err)
	list := reopened.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestStore_List_OrderedByUpdatedAtDesc(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := s.Create(ctx, input("a", "a"))
	b, _ := s.Create(ctx, input("b", "b"))
	c, _ := s.Create(ctx, input("c", "c"))

	require.NoError(t, s.Update(ctx, a.ID, core.PromptUpdate{Content: ptr("a2")}))

	list := s.List(ctx)
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{a.ID, c.ID, b.ID}, ids)
}

func TestStore_Search(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	react, _ := s.Create(ctx, input("React Component", "Create a component with hooks", "javascript"))
	sql, _ := s.Create(ctx, input("Query", "SELECT * FROM users", "database"))
	tagged, _ := s.Create(ctx, input("Deploy", "ship it", "DevOps"))

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"title case-insensitive", "react", []string{react.ID}},
		{"content", "from USERS", []string{sql.ID}},
		{"tag substring", "ops", []string{tagged.ID}},
		{"tag case-insensitive", "JAVA", []string{react.ID}},
		{"several", "e", []string{react.ID, sql.ID, tagged.ID}},
		{"none", "kubernetes", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(ctx, tt.term)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestStore_ByTagAndAllTags(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, _ = s.Create(ctx, input("one", "1", "python"))
	_, _ = s.Create(ctx, input("two", "2", "python"))
	_, _ = s.Create(ctx, input("three", "3", "java"))

	assert.Len(t, s.ByTag(ctx, "python"), 2)
	assert.Len(t, s.ByTag(ctx, "java"), 1)
	assert.Empty(t, s.ByTag(ctx, "Python"))
	assert.Empty(t, s.ByTag(ctx, "pyth"))

	assert.Equal(t, []string{"java", "python"}, s.AllTags(ctx))
}

func TestStore_AllTags_Empty(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	tags := s.AllTags(context.Background())
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestStore_Info(t *testing.T) {
	t.Parallel()
	s, dir := newTestStore(t)
	ctx := context.Background()

	info := s.Info(ctx)
	assert.Equal(t, dir, info.Path)
	assert.Equal(t, 0, info.Count)
	assert.Equal(t, int64(0), info.Size)

	_, err := s.Create(ctx, input("t", "c"))
	require.NoError(t, err)

	info = s.Info(ctx)
	assert.Equal(t, 1, info.Count)
	assert.Greater(t, info.Size, int64(0))
}

func TestOpenDir_CreatesNestedDirectory(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	s, err := OpenDir(context.Background(), dir)
	require.NoError(t, err)
	assert.NoError(t, s.LoadError())

	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestOpenDir_CorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts.json"), []byte("{not json"), 0644))

	ctx := context.Background()
	s, err := OpenDir(ctx, dir)
	require.NoError(t, err)

	assert.True(t, errors.Is(s.LoadError(), core.ErrStorageIO))
	assert.Empty(t, s.List(ctx))

	_, err = s.Create(ctx, input("fresh", "start"))
	require.NoError(t, err)
	assert.Len(t, s.List(ctx), 1)
}

func TestOpenDir_DuplicateIDsCollapse(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := `[
  {"id": "1", "title": "first", "content": "a", "tags": ["x"]},
  {"id": "2", "title": "other", "content": "b", "tags": []},
  {"id": "1", "title": "second", "content": "c", "tags": null}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts.json"), []byte(data), 0644))

	ctx := context.Background()
	s, err := OpenDir(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, s.LoadError())

	assert.Equal(t, 2, s.Info(ctx).Count)
	got, ok := s.Get(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, "second", got.Title)
	assert.NotNil(t, got.Tags)
}

func TestOpenDir_LenientRecords(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := `[
  {"id": "a", "title": "keep me", "content": "x", "tags": ["t"], "createdAt": "2024-01-02", "updatedAt": "2024-01-03T10:00:00Z"},
  {"id": "b", "title": "odd fields", "content": "y", "tags": "t", "source": 42, "createdAt": 17, "updatedAt": "2023-12-31 08:00:00"},
  42,
  null
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts.json"), []byte(data), 0644))

	ctx := context.Background()
	s, err := OpenDir(ctx, dir, WithClock(newClock().Now))
	require.NoError(t, err)
	require.NoError(t, s.LoadError())
	require.Equal(t, 2, s.Info(ctx).Count)

	kept, ok := s.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), kept.CreatedAt)
	assert.Equal(t, time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), kept.UpdatedAt)
	assert.Equal(t, []string{"t"}, kept.Tags)

	odd, ok := s.Get(ctx, "b")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC), odd.CreatedAt)
	assert.Equal(t, odd.CreatedAt, odd.UpdatedAt)
	assert.Equal(t, []string{}, odd.Tags)
	assert.Empty(t, odd.Source)

	_, err = s.Create(ctx, input("fresh", "start"))
	require.NoError(t, err)

	written, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(written), "keep me")
	assert.Contains(t, string(written), "odd fields")
}

func TestOpenDir_UpdatedBeforeCreatedIsRaised(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := `[{"id": "a", "title": "t", "content": "c", "createdAt": "2024-05-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts.json"), []byte(data), 0644))

	ctx := context.Background()
	s, err := OpenDir(ctx, dir)
	require.NoError(t, err)

	got, ok := s.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestStore_WriteFailurePropagates(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	// a directory where the file should be makes every write fail
	require.NoError(t, os.Mkdir(s.Path(), 0755))

	_, err := s.Create(ctx, input("t", "c"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrStorageIO))

	// memory is not rolled back
	assert.Len(t, s.List(ctx), 1)
}

func TestOpen_UsesResolvedDirectory(t *testing.T) {
	t.Parallel()
	ws := t.TempDir()
	cfg := storageConfig{mode: core.StorageWorkspace, workspace: ws, global: t.TempDir()}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws, ".promptvault", "prompts.json"), s.Path())
}
