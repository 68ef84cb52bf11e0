package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	_, ok := s.Get("sample")
	assert.False(t, ok)

	rec := Record{Anchor: layout.SavedState{AnchorPosition: 4, AnchorOffset: -2}}
	require.NoError(t, s.Put("sample", rec))
	got, ok := s.Get("sample")
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	saved := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec := Record{
		Anchor:  layout.SavedState{AnchorPosition: 12, AnchorOffset: -3},
		Filter:  "ap",
		SavedAt: saved,
	}
	require.NoError(t, s.Put("/data/a.yaml", rec))
	require.NoError(t, s.Put("/data/b.yaml", Record{Anchor: layout.SavedState{AnchorPosition: 1}}))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	got, ok := reopened.Get("/data/a.yaml")
	require.True(t, ok)
	assert.Equal(t, 12, got.Anchor.AnchorPosition)
	assert.Equal(t, -3, got.Anchor.AnchorOffset)
	assert.Equal(t, "ap", got.Filter)
	assert.True(t, saved.Equal(got.SavedAt))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "anchor_position: 12")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: [:"), 0o644))
	_, err := NewFileStore(path)
	require.Error(t, err)
}

func TestFileStoreEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", Record{}))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "sample", Key(""))
	assert.True(t, filepath.IsAbs(Key("data.yaml")))
}
