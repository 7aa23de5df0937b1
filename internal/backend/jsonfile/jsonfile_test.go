package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly/internal/backend/jsonfile"
	"taskly/internal/store"
)

func newStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return jsonfile.New(path, nil), path
}

func TestLoad_MissingFile(t *testing.T) {
	s, path := newStore(t)

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// A pure read of a fresh system leaves no artifacts behind
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_CorruptFile(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tasks file")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	tasks := []store.Task{
		{
			ID:       store.GenerateID(),
			Title:    "Buy milk",
			Priority: store.PriorityHigh,
			Created:  now,
		},
		{
			ID:          store.GenerateID(),
			Title:       "Buy eggs",
			Priority:    store.PriorityLow,
			Completed:   true,
			Created:     now,
			CompletedAt: &now,
		},
	}

	require.NoError(t, s.Save(ctx, tasks))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestSave_LazyFileCreation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	s := jsonfile.New(path, nil)

	require.NoError(t, s.Save(context.Background(), nil))

	_, err := os.Stat(path)
	assert.NoError(t, err, "file and parent dirs should be created on first save")
}

func TestSave_NilSliceBecomesEmptyArray(t *testing.T) {
	s, path := newStore(t)

	require.NoError(t, s.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSave_DiskFormat(t *testing.T) {
	s, path := newStore(t)

	created := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	task := store.Task{
		ID:       "abc-123",
		Title:    "Buy milk",
		Priority: store.PriorityMedium,
		Created:  created,
	}
	require.NoError(t, s.Save(context.Background(), []store.Task{task}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// Pretty-printed with 2-space indent, trailing newline, camelCase keys
	assert.True(t, strings.HasPrefix(content, "[\n  {\n"), "expected 2-space indent, got:\n%s", content)
	assert.True(t, strings.HasSuffix(content, "\n"), "expected trailing newline")
	for _, key := range []string{`"id"`, `"title"`, `"priority"`, `"completed"`, `"created"`} {
		assert.Contains(t, content, key)
	}
	// completedAt is absent for pending tasks
	assert.NotContains(t, content, `"completedAt"`)
	// Timestamps are RFC 3339
	assert.Contains(t, content, `"2026-08-27T10:30:00Z"`)
}

func TestLoad_ToleratesMissingCompletedAt(t *testing.T) {
	s, path := newStore(t)

	// A hand-written file with no completedAt and minimal fields
	raw := `[
  {
    "id": "t1",
    "title": "Old task",
    "priority": "high",
    "completed": false,
    "created": "2026-01-02T03:04:05Z"
  }
]
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].CompletedAt)
	assert.Equal(t, "Old task", tasks[0].Title)
	assert.Equal(t, store.PriorityHigh, tasks[0].Priority)
}

func TestSave_OverwritesWholeFile(t *testing.T) {
	s, path := newStore(t)
	ctx := context.Background()

	a := store.NewTask("A", store.PriorityLow)
	b := store.NewTask("B", store.PriorityLow)
	require.NoError(t, s.Save(ctx, []store.Task{a, b}))
	require.NoError(t, s.Save(ctx, []store.Task{b}))

	var got []store.Task
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Title)
}

func TestPath(t *testing.T) {
	s, path := newStore(t)
	assert.Equal(t, path, s.Path())
}
