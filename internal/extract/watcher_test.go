package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test Plan for Watcher:
// - A write to the watched file fires the callback once the debounce elapses
// - Writes to other files in the same directory do not fire the callback
// - Stop is safe to call more than once

func TestWatcher_FiresOnWatchedFileWrite(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "pokedex.ts")
	require.NoError(t, os.WriteFile(inputPath, []byte("'1': [['', 'Bulbasaur']],"), 0644))

	fired := make(chan struct{}, 1)
	watcher, err := NewWatcher(inputPath, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	watcher.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(inputPath, []byte("'2': [['', 'Ivysaur']],"), 0644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after watched file changed")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "pokedex.ts")
	require.NoError(t, os.WriteFile(inputPath, []byte("'1': [['', 'Bulbasaur']],"), 0644))

	fired := make(chan struct{}, 1)
	watcher, err := NewWatcher(inputPath, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	watcher.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.ts"), []byte("noise"), 0644))

	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "pokedex.ts")
	require.NoError(t, os.WriteFile(inputPath, []byte(""), 0644))

	watcher, err := NewWatcher(inputPath, func() {})
	require.NoError(t, err)

	watcher.Start(context.Background())
	watcher.Stop()
	watcher.Stop()
}
