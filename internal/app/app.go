// Package app wires the rule model, selection engine, and renderer into one
// run. Both the headless CLI and the interactive UI drive a run through this
// package.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/martens/codepack/internal/config"
	"github.com/martens/codepack/internal/gitutil"
	"github.com/martens/codepack/internal/render"
	"github.com/martens/codepack/internal/rules"
	"github.com/martens/codepack/internal/selector"
)

// Options describes one pack run.
type Options struct {
	// BaseDir is the project root to scan.
	BaseDir string
	// ConfigName is the rules config name or path; empty means "extract".
	ConfigName string
	// Output is the document destination; empty means
	// "<config>_collection.md" under the configured output directory.
	Output string
	// Manifest is the manifest destination; empty means "files.txt" next to
	// the document.
	Manifest string
	// Structure embeds the project tree into the document.
	Structure bool
}

// Summary reports what a completed run produced.
type Summary struct {
	OutputPath   string
	ManifestPath string
	Files        []string
	Warnings     []selector.Warning
	HeadSHA      string
	Bytes        int
}

// App executes pack runs.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// Prepare resolves options against the project config and loads the rule
// model. Split from Write so the interactive UI can show the selection before
// anything is written.
func (a *App) Prepare(opts Options) (Options, *selector.Result, error) {
	// The selection engine yields absolute paths; an absolute base keeps
	// every later Rel computation well-defined.
	if abs, err := filepath.Abs(opts.BaseDir); err == nil {
		opts.BaseDir = abs
	}
	opts = a.applyProjectDefaults(opts)

	configPath, err := config.FindRulesConfig(configNameOrDefault(opts.ConfigName), a.cfg.ConfigDir)
	if err != nil {
		return opts, nil, err
	}
	a.logger.Info("using rules config", "path", configPath)

	model, err := rules.Load(configPath)
	if err != nil {
		return opts, nil, err
	}

	res, err := selector.Select(opts.BaseDir, model)
	if err != nil && !errors.Is(err, selector.ErrEmptySelection) {
		return opts, nil, err
	}
	for _, w := range res.Warnings {
		a.logger.Warn("skipped entry", "reason", w.Reason, "path", w.Path)
	}
	return opts, res, err
}

// Write renders the document and manifest for the given files and writes
// both to disk.
func (a *App) Write(opts Options, files []string, warnings []selector.Warning) (*Summary, error) {
	outputPath := a.resolveOutputPath(opts)
	manifestPath := opts.Manifest
	if manifestPath == "" {
		manifestPath = filepath.Join(filepath.Dir(outputPath), "files.txt")
	}

	docOpts := render.DocumentOptions{}
	if sha, err := gitutil.HeadSHA(opts.BaseDir); err == nil {
		docOpts.HeadSHA = sha
	} else if !errors.Is(err, gitutil.ErrNotRepository) {
		a.logger.Debug("could not read git metadata", "error", err)
	}
	if opts.Structure {
		tree, err := render.Structure(opts.BaseDir)
		if err != nil {
			a.logger.Warn("could not build project structure", "error", err)
		} else {
			docOpts.Structure = tree
		}
	}

	doc := render.Document(files, opts.BaseDir, docOpts)

	if err := ensureParentDir(outputPath); err != nil {
		return nil, err
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	if err := ensureParentDir(manifestPath); err != nil {
		return nil, err
	}
	if err := os.WriteFile(manifestPath, []byte(render.Manifest(files, opts.BaseDir)), 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	a.logger.Info("wrote document", "path", outputPath, "files", len(files), "bytes", len(doc))
	return &Summary{
		OutputPath:   outputPath,
		ManifestPath: manifestPath,
		Files:        files,
		Warnings:     warnings,
		HeadSHA:      docOpts.HeadSHA,
		Bytes:        len(doc),
	}, nil
}

// Run performs a complete headless pack: prepare, then write everything the
// selection produced.
func (a *App) Run(opts Options) (*Summary, error) {
	opts, res, err := a.Prepare(opts)
	if err != nil {
		return nil, err
	}
	return a.Write(opts, res.Files, res.Warnings)
}

// applyProjectDefaults fills unset options from .codepack.yml in the base
// directory. Explicit values always win.
func (a *App) applyProjectDefaults(opts Options) Options {
	pc, err := config.LoadProjectConfig(opts.BaseDir)
	if err != nil {
		if !errors.Is(err, config.ErrProjectConfigNotFound) {
			a.logger.Warn("ignoring project config", "error", err)
		}
		return opts
	}
	if opts.ConfigName == "" {
		opts.ConfigName = pc.Config
	}
	if opts.Output == "" {
		opts.Output = pc.Output
	}
	if opts.Manifest == "" {
		opts.Manifest = pc.Manifest
	}
	if pc.Structure {
		opts.Structure = true
	}
	return opts
}

// resolveOutputPath mirrors the historical behavior: an explicit path with a
// directory part is used as-is, a bare filename lands in the output
// directory, and no value at all defaults to "<config>_collection.md" there.
func (a *App) resolveOutputPath(opts Options) string {
	if opts.Output != "" {
		if filepath.Dir(opts.Output) != "." {
			return opts.Output
		}
		return filepath.Join(a.cfg.OutputDir, opts.Output)
	}
	name := configNameOrDefault(opts.ConfigName)
	name = strings.TrimSuffix(filepath.Base(name), ".config")
	name = strings.TrimSuffix(name, "_extract")
	return filepath.Join(a.cfg.OutputDir, name+"_collection.md")
}

func configNameOrDefault(name string) string {
	if name == "" {
		return "extract"
	}
	return name
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}
