package codebase

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/swapcheck/swap"
)

func TestFileWatcherScan(t *testing.T) {
	c := newTestCodebase(t, map[string]string{
		"src/main/java/Good.java": goodSource,
	})
	ctx := context.Background()
	w := NewFileWatcher(c, nil)

	assert.True(t, w.scan(ctx), "initial scan sees every file")
	assert.True(t, c.Result().OK())
	assert.False(t, w.scan(ctx), "nothing changed")

	bad := filepath.Join(c.RootDir(), "src/main/java/Bad.java")
	writeFile(t, bad, badSource)
	assert.True(t, w.scan(ctx))
	assert.False(t, c.Result().OK())

	good := filepath.Join(c.RootDir(), "src/main/java/Good.java")
	writeFile(t, good, badSource)
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(good, future, future))
	assert.True(t, w.scan(ctx))
	assert.Len(t, c.Result().Violations(), 2)

	require.NoError(t, os.Remove(bad))
	require.NoError(t, os.Remove(good))
	assert.True(t, w.scan(ctx))
	assert.Empty(t, c.Result().Files)
}

func TestFileWatcherNotifies(t *testing.T) {
	c := newTestCodebase(t, map[string]string{
		"src/main/java/Bad.java": badSource,
	})

	var mu sync.Mutex
	var results []*swap.Result
	w := NewFileWatcher(c, func(r *swap.Result) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, r)
	})
	w.SetPollInterval(10 * time.Millisecond)
	w.Start(context.Background())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) > 0
	}, 2*time.Second, 10*time.Millisecond)
	w.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, results, 1, "unchanged files do not trigger further notifications")
	assert.Len(t, results[0].Violations(), 1)
}
