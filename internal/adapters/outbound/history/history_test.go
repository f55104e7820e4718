package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yvolo/yvolo/internal/adapters/outbound/history"
	"github.com/yvolo/yvolo/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New(dir)

	created := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)
	entry := domain.ScaffoldEntry{
		Name:      "demo",
		Dir:       "/p/demo",
		Type:      domain.ProjectTypePython,
		RepoURL:   "https://github.com/me/demo.git",
		Backup:    "Desktop/backups/backup_demo_20260225_100000.zip",
		Tasks:     []string{"a", "b"},
		CreatedAt: created,
	}

	require.NoError(t, h.Save(entry))

	entries, err := h.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "demo", entries[0].Name)
	assert.Equal(t, domain.ProjectTypePython, entries[0].Type)
	assert.Equal(t, []string{"a", "b"}, entries[0].Tasks)
	assert.True(t, created.Equal(entries[0].CreatedAt))
}

func TestHistory_AppendMultiple(t *testing.T) {
	h := history.New(t.TempDir())

	require.NoError(t, h.Save(domain.ScaffoldEntry{Name: "one"}))
	require.NoError(t, h.Save(domain.ScaffoldEntry{Name: "two"}))
	require.NoError(t, h.Save(domain.ScaffoldEntry{Name: "three"}))

	entries, err := h.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "one", entries[0].Name)
	assert.Equal(t, "three", entries[2].Name)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "deep", "nested")
	h := history.New(nested)

	require.NoError(t, h.Save(domain.ScaffoldEntry{Name: "demo"}))
	assert.FileExists(t, filepath.Join(nested, "history.json"))
	assert.Equal(t, filepath.Join(nested, "history.json"), h.Path())
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0644))

	h := history.New(dir)
	_, err := h.Load()
	assert.Error(t, err)
	assert.Error(t, h.Save(domain.ScaffoldEntry{Name: "demo"}), "save must not clobber an unreadable file")
}

func TestFileHistory_ImplementsPort(t *testing.T) {
	var _ domain.ScaffoldHistory = history.New(t.TempDir())
}
