package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, rel, content string) (base, abs string) {
	t.Helper()
	base = t.TempDir()
	abs = filepath.Join(base, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o600))
	return base, abs
}

func TestDocument(t *testing.T) {
	base, py := writeFixture(t, "src/main.py", "print('hi')")
	js := filepath.Join(base, "app.js")
	require.NoError(t, os.WriteFile(js, []byte("console.log(1)"), 0o600))

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	doc := Document([]string{py, js}, base, DocumentOptions{HeadSHA: "deadbeef", Now: now})

	assert.True(t, strings.HasPrefix(doc, "# Project Code Collection\n\n"))
	assert.Contains(t, doc, "Generated on: 2026-08-26 12:00:00\n")
	assert.Contains(t, doc, "Commit: deadbeef\n")
	assert.Contains(t, doc, "## src/main.py\n\n```python\nprint('hi')\n```\n")
	assert.Contains(t, doc, "## app.js\n\n```javascript\nconsole.log(1)\n```\n")

	// Files appear sorted by relative path: app.js before src/main.py.
	assert.Less(t, strings.Index(doc, "## app.js"), strings.Index(doc, "## src/main.py"))
}

func TestDocumentUnreadableFile(t *testing.T) {
	base, py := writeFixture(t, "src/ok.py", "x = 1")
	// A directory posing as a selected file forces a read error without
	// aborting the document.
	bad := filepath.Join(base, "src", "dir.py")
	require.NoError(t, os.Mkdir(bad, 0o755))

	doc := Document([]string{py, bad}, base, DocumentOptions{})

	assert.Contains(t, doc, "Error reading "+bad)
	assert.Contains(t, doc, "```python\nx = 1\n```")
}

func TestManifestMatchesDocumentOrder(t *testing.T) {
	base := t.TempDir()
	var files []string
	for _, rel := range []string{"b/two.go", "a/one.go", "zero.go"} {
		abs := filepath.Join(base, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte("package x"), 0o600))
		files = append(files, abs)
	}

	assert.Equal(t, "a/one.go\nb/two.go\nzero.go\n", Manifest(files, base))
}

func TestLanguageForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".py", "python"},
		{".yml", "yaml"},
		{".config", "ini"},
		{"go", "go"},
		{".TS", "typescript"},
		{".weird", "text"},
		{"", "text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LanguageForExtension(tt.ext), tt.ext)
	}
}

func TestStructure(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "src", "pkg"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "src", "pkg", "a.go"), []byte("package pkg"), 0o600))

	tree, err := Structure(base)
	require.NoError(t, err)

	assert.Contains(t, tree, "# Project Structure")
	assert.Contains(t, tree, "- **src/**")
	assert.Contains(t, tree, "  - **pkg/**")
	assert.Contains(t, tree, "    - a.go")
	assert.NotContains(t, tree, ".git")
}
