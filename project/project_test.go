package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/swapcheck/config"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"**/build/**", "build/Gen.java", true},
		{"**/build/**", "app/build/classes/Gen.java", true},
		{"**/build/**", "app/builder/Gen.java", false},
		{"**/build/**", "build", true},
		{"**/*.java", "Main.java", true},
		{"**/*.java", "a/b/Main.java", true},
		{"src/*/Main.java", "src/x/Main.java", true},
		{"src/*/Main.java", "src/x/y/Main.java", false},
		{"generated/**", "generated/A.java", true},
		{"[", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.name))
		})
	}
}

func setupTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class X {}"), 0o644))
	}
	return root
}

func TestJavaFiles(t *testing.T) {
	root := setupTree(t,
		"src/main/java/com/acme/B.java",
		"src/main/java/com/acme/A.java",
		"src/main/java/com/acme/notes.txt",
		"src/main/java/build/Skipped.java",
		"src/main/java/com/acme/generated/Gen.java",
		"src/test/java/com/acme/ATest.java",
	)

	p, err := Load(root, config.Default())
	require.NoError(t, err)

	files, err := p.JavaFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(p.RootDir, "src/main/java/com/acme/A.java"),
		filepath.Join(p.RootDir, "src/main/java/com/acme/B.java"),
	}, files)
}

func TestSourceDirs(t *testing.T) {
	root := setupTree(t, "app/src/A.java")

	cfg := config.Default()
	cfg.Sources = []string{"app/src", "lib/src"}
	p, err := Load(root, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(p.RootDir, "app/src")}, p.SourceDirs())
}

func TestCollect(t *testing.T) {
	root := setupTree(t,
		"a/One.java",
		"a/build/Two.java",
		"b/Three.java",
	)
	p, err := Load(root, nil)
	require.NoError(t, err)

	explicit := filepath.Join(p.RootDir, "a/build/Two.java")
	missing := filepath.Join(p.RootDir, "Missing.java")
	files, err := p.Collect([]string{
		filepath.Join(p.RootDir, "b"),
		filepath.Join(p.RootDir, "a"),
		explicit,
		filepath.Join(p.RootDir, "b/Three.java"),
		missing,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		missing,
		filepath.Join(p.RootDir, "a/One.java"),
		explicit,
		filepath.Join(p.RootDir, "b/Three.java"),
	}, files)

	_, err = p.Collect([]string{filepath.Join(p.RootDir, "nope")})
	assert.Error(t, err)
}
