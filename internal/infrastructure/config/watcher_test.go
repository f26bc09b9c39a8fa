package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "motion.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, filepath.Clean(path), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}
}

func TestWatcher_Drain(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4)}
	w.Events <- "a.json"
	w.Events <- "b.yaml"
	w.Events <- "a.json"

	assert.Equal(t, []string{"a.json", "b.yaml"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "motion.yaml")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("movement:\n  walkSpeed: 1\n"), 0o644))
	}

	select {
	case got := <-w.Events:
		assert.Equal(t, filepath.Clean(path), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: %s", got)
	case <-time.After(3 * debounce):
	}
}
