package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// copyConfigs writes the embedded configs into a temp directory
func copyConfigs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := fs.WalkDir(configFS, "configs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel("configs", path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := configFS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	require.NoError(t, err)
	return dir
}

func TestRun_ReturnsErrors(t *testing.T) {
	dir := copyConfigs(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad flag", []string{"-nope"}, "flag provided but not defined"},
		{"missing stage", []string{"-stage", "nowhere"}, "load config"},
		{"missing replay", []string{"-replay", filepath.Join(dir, "missing.json")}, ""},
		{"unknown backend", []string{"-backend", "box2d"}, "start session"},
		{"unknown backend while watching", []string{"-config", dir, "-watch", "-backend", "box2d"}, "start session"},
		{"watch missing dir", []string{"-config", filepath.Join(dir, "gone"), "-watch"}, "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestRun_WatcherClosedOnFailure(t *testing.T) {
	dir := copyConfigs(t)

	// more runs than the default inotify instance limit
	for i := 0; i < 200; i++ {
		err := run([]string{"-config", dir, "-watch", "-backend", "box2d"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "start session", "run %d", i)
	}

	w, err := config.NewWatcher(dir)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestRun_Replay(t *testing.T) {
	dir := copyConfigs(t)
	path := filepath.Join(t.TempDir(), "walk.json")
	require.NoError(t, replay.SaveReplay(path, *scriptedReplay(180, config.BackendTile, walkRightThenJump)))

	assert.NoError(t, run([]string{"-replay", path}))
	assert.NoError(t, run([]string{"-config", dir, "-replay", path, "-backend", config.BackendChipmunk}))
}
