package codebase

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/swapcheck/project"
	"github.com/dhamidi/swapcheck/swap"
)

var log = commonlog.GetLogger("swapcheck.codebase")

// Codebase holds the latest check result of every known file. It is shared
// by the LSP handlers and the file watcher.
type Codebase struct {
	mu        sync.RWMutex
	project   *project.Project
	validator *swap.Validator
	files     map[string]*FileInfo
}

type FileInfo struct {
	Path   string
	Result swap.FileResult
}

func New(p *project.Project, v *swap.Validator) *Codebase {
	if v == nil {
		v = swap.New()
	}
	return &Codebase{
		project:   p,
		validator: v,
		files:     make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.project.RootDir
}

func (c *Codebase) Project() *project.Project {
	return c.project
}

// ScanAll checks every source file of the project and replaces the stored
// results.
func (c *Codebase) ScanAll(ctx context.Context) (*swap.Result, error) {
	paths, err := c.project.JavaFiles()
	if err != nil {
		return nil, err
	}
	r := c.validator.Validate(ctx, paths)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = make(map[string]*FileInfo, len(r.Files))
	for _, fr := range r.Files {
		c.files[fr.File] = &FileInfo{Path: fr.File, Result: fr}
	}
	return r, nil
}

// ScanFile re-checks a file from disk.
func (c *Codebase) ScanFile(ctx context.Context, path string) swap.FileResult {
	fr := c.validator.ValidateFile(ctx, path)
	c.store(path, fr)
	return fr
}

// UpdateFile checks content in place of what is on disk, e.g. an editor
// buffer.
func (c *Codebase) UpdateFile(ctx context.Context, path string, content []byte) swap.FileResult {
	fr := c.validator.ValidateSource(ctx, path, content)
	c.store(path, fr)
	return fr
}

func (c *Codebase) store(path string, fr swap.FileResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = &FileInfo{Path: path, Result: fr}
	log.Debugf("updated %s: %d violations", path, len(fr.Violations))
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Result returns the stored results ordered by path.
func (c *Codebase) Result() *swap.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	r := &swap.Result{Files: make([]swap.FileResult, 0, len(paths))}
	for _, path := range paths {
		r.Files = append(r.Files, c.files[path].Result)
	}
	return r
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
