package codebase

import (
	"context"
	"os"
	"time"

	"github.com/dhamidi/swapcheck/swap"
)

// FileWatcher polls the project's source roots and re-checks files whose
// modification time changed.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(*swap.Result)
}

func NewFileWatcher(c *Codebase, onChange func(*swap.Result)) *FileWatcher {
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

// SetPollInterval must be called before Start.
func (w *FileWatcher) SetPollInterval(d time.Duration) {
	w.pollInterval = d
}

func (w *FileWatcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop ends polling and waits for an in-flight scan to finish.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *FileWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.poll(ctx)

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *FileWatcher) poll(ctx context.Context) {
	if w.scan(ctx) && w.onChange != nil {
		w.onChange(w.codebase.Result())
	}
}

// scan reports whether any file was added, modified or removed.
func (w *FileWatcher) scan(ctx context.Context) bool {
	paths, err := w.codebase.Project().JavaFiles()
	if err != nil {
		log.Warningf("scan %s: %s", w.codebase.RootDir(), err)
		return false
	}

	changed := false
	current := make(map[string]bool, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		current[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			w.codebase.ScanFile(ctx, path)
			changed = true
		}
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			changed = true
		}
	}
	return changed
}
