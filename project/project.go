package project

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tliron/commonlog"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/swapcheck/config"
)

var log = commonlog.GetLogger("swapcheck.project")

// Project is a directory tree holding Java sources.
type Project struct {
	RootDir string
	Sources []string // source roots, relative to RootDir
	Ignore  []string // glob patterns, relative to RootDir
}

// Load builds a Project rooted at rootDir using the given configuration.
func Load(rootDir string, cfg *config.Config) (*Project, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, errors.Errorf("resolve %s: %w", rootDir, err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Project{
		RootDir: abs,
		Sources: cfg.Sources,
		Ignore:  cfg.Ignore,
	}, nil
}

// SourceDirs returns the absolute paths of the source roots that exist.
func (p *Project) SourceDirs() []string {
	var dirs []string
	for _, src := range p.Sources {
		dir := src
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(p.RootDir, src)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Debugf("skipping source root %s", dir)
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// JavaFiles returns every .java file below the source roots, sorted.
func (p *Project) JavaFiles() ([]string, error) {
	return p.Collect(p.SourceDirs())
}

// Collect expands paths into a sorted, de-duplicated list of .java files.
// Directories are walked recursively; files are taken as given, even when
// they match an ignore pattern.
func (p *Project) Collect(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(file string) {
		if !seen[file] {
			seen[file] = true
			files = append(files, file)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			// Missing files still flow through the check and are reported
			// there as unreadable.
			if errors.Is(err, fs.ErrNotExist) && strings.HasSuffix(root, ".java") {
				add(filepath.Clean(root))
				continue
			}
			return nil, errors.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(file string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p.isIgnored(file) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(file, ".java") {
				add(file)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("scan java files in %s: %w", root, err)
		}
	}

	sort.Strings(files)
	log.Debugf("collected %d java files", len(files))
	return files, nil
}

func (p *Project) isIgnored(file string) bool {
	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	rel, err := filepath.Rel(p.RootDir, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = file
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range p.Ignore {
		if MatchGlob(pattern, rel) {
			return true
		}
	}
	return false
}

// MatchGlob reports whether a slash-separated path matches pattern. Besides
// the path.Match syntax, a "**" segment matches zero or more segments, so
// "dir/**" also matches dir itself.
func MatchGlob(pattern, name string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

func matchSegments(pattern, name []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(name); i++ {
				if matchSegments(rest, name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		ok, err := path.Match(pattern[0], name[0])
		if err != nil || !ok {
			return false
		}
		pattern, name = pattern[1:], name[1:]
	}
	return len(name) == 0
}
