package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch <file>", watchCmd.Use)
}

func TestWatchCmd_SharesParseFlags(t *testing.T) {
	for _, name := range []string{"out", "meta", "db", "no-db", "workers", "scope"} {
		assert.NotNil(t, watchCmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestWatchFile_CallsOnChangeAfterWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headnotes.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 20*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}

func TestWatchFile_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headnotes.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	calls := 0
	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0644)
	}()

	err := watchFile(ctx, path, 20*time.Millisecond, func() { calls++ })

	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	err := watchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "file.md"), time.Millisecond, func() {})

	assert.Error(t, err)
}
