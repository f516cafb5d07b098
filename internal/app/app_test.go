package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martens/codepack/internal/config"
	"github.com/martens/codepack/internal/selector"
)

// fixture lays out a small project plus a rules config and returns the
// project dir and an App writing into the same temp tree.
func fixture(t *testing.T) (*App, string, Options) {
	t.Helper()
	root := t.TempDir()
	project := filepath.Join(root, "project")

	write := func(rel, content string) {
		path := filepath.Join(project, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	write("src/main.py", "print('hi')")
	write("src/util.pyc", "binary junk")
	write("README.md", "# readme")

	configDir := filepath.Join(root, "configs")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	rulesConfig := `
[global]
excluded_files = *.pyc

[src]
extensions = py

[specific_files]
files = README.md
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "demo_extract.config"), []byte(rulesConfig), 0o600))

	cfg := &config.Config{
		ConfigDir: configDir,
		OutputDir: filepath.Join(root, "Extracts"),
	}
	return New(cfg, nil), project, Options{BaseDir: project, ConfigName: "demo"}
}

func TestRun(t *testing.T) {
	a, project, opts := fixture(t)

	summary, err := a.Run(opts)
	require.NoError(t, err)

	assert.Len(t, summary.Files, 2)
	assert.Empty(t, summary.Warnings)
	assert.Equal(t, filepath.Join(filepath.Dir(summary.OutputPath), "files.txt"), summary.ManifestPath)
	assert.True(t, strings.HasSuffix(summary.OutputPath, "demo_collection.md"))

	doc, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "## src/main.py")
	assert.Contains(t, string(doc), "## README.md")
	assert.NotContains(t, string(doc), "util.pyc")
	assert.Equal(t, len(doc), summary.Bytes)

	manifest, err := os.ReadFile(summary.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, "README.md\nsrc/main.py\n", string(manifest))

	// Manifest paths are relative to the scanned project.
	assert.NotContains(t, string(manifest), project)
}

func TestRunEmptySelection(t *testing.T) {
	a, _, opts := fixture(t)
	opts.ConfigName = "demo"

	// Point the run at a base dir where no section resolves.
	empty := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(empty, "nothing"), 0o755))
	opts.BaseDir = empty

	_, err := a.Run(opts)
	assert.ErrorIs(t, err, selector.ErrEmptySelection)
}

func TestRunHonorsProjectConfig(t *testing.T) {
	a, project, opts := fixture(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(project, ".codepack.yml"),
		[]byte("config: demo\nstructure: true\n"),
		0o600,
	))
	opts.ConfigName = ""

	summary, err := a.Run(opts)
	require.NoError(t, err)

	doc, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "# Project Structure")
}

func TestResolveOutputPath(t *testing.T) {
	a := New(&config.Config{OutputDir: "Extracts"}, nil)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "Explicit path with directory",
			opts: Options{Output: filepath.Join("out", "doc.md")},
			want: filepath.Join("out", "doc.md"),
		},
		{
			name: "Bare filename goes to output dir",
			opts: Options{Output: "doc.md"},
			want: filepath.Join("Extracts", "doc.md"),
		},
		{
			name: "Default from config name",
			opts: Options{ConfigName: "web"},
			want: filepath.Join("Extracts", "web_collection.md"),
		},
		{
			name: "Default without config name",
			opts: Options{},
			want: filepath.Join("Extracts", "extract_collection.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.resolveOutputPath(tt.opts))
		})
	}
}

func TestRunMissingRulesConfig(t *testing.T) {
	a, _, opts := fixture(t)
	opts.ConfigName = "android"

	_, err := a.Run(opts)
	assert.ErrorIs(t, err, config.ErrRulesConfigNotFound)
}
