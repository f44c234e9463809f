package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageName(t *testing.T) {
	tests := []struct {
		path string
		name string
		ok   bool
	}{
		{filepath.Join("configs", "stages", "demo.yaml"), "demo", true},
		{filepath.Join("configs", "stages", "forest.json"), "forest", true},
		{filepath.Join("configs", "stages", "notes.txt"), "", false},
		{filepath.Join("configs", "stages", "demo.yml"), "", false},
		{filepath.Join("configs", "physics.json"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, ok := StageName(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestWatcher_ReportsConfigChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(nil, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	stage := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(stage, []byte("id: demo\n"), 0o644))

	select {
	case file := <-w.Events:
		assert.Equal(t, stage, file)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(nil, t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(nil, filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}
