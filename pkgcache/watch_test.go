package pkgcache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_InvalidatesOnManifestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, `{"name": "my-app", "version": "1.0.0"}`)

	cache := NewCache(tmpDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cache.Watch(ctx) }()

	// Let the watcher register the app root before touching the manifest.
	time.Sleep(100 * time.Millisecond)

	pkg, ok := cache.OwnerOfFile(filepath.Join(tmpDir, "app", "main.js"))
	require.True(t, ok)
	require.Equal(t, "1.0.0", pkg.Manifest.Version)

	writeManifest(t, tmpDir, `{"name": "my-app", "version": "2.0.0"}`)

	require.Eventually(t, func() bool {
		pkg, ok := cache.OwnerOfFile(filepath.Join(tmpDir, "app", "main.js"))
		return ok && pkg.Manifest.Version == "2.0.0"
	}, 3*time.Second, 50*time.Millisecond, "cache should pick up the rewritten manifest")

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, `{"name": "my-app", "version": "1.0.0"}`)

	cache := NewCache(tmpDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cache.Watch(ctx) }()

	time.Sleep(100 * time.Millisecond)

	first, ok := cache.OwnerOfFile(filepath.Join(tmpDir, "app", "main.js"))
	require.True(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)

	second, ok := cache.OwnerOfFile(filepath.Join(tmpDir, "app", "main.js"))
	require.True(t, ok)
	assert.Same(t, first, second, "unrelated writes must not invalidate the package")

	cancel()
	assert.NoError(t, <-done)
}
