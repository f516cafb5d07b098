package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/martens/codepack/internal/app"
	"github.com/martens/codepack/internal/config"
	"github.com/martens/codepack/internal/logger"
	"github.com/martens/codepack/internal/tui"
)

var (
	configName   string
	outputPath   string
	manifestPath string
	interactive  bool
	structure    bool
	verbose      bool
	theme        string
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var rootCmd = &cobra.Command{
	Use:   "codepack [directory]",
	Short: "Collect a project's source files into a single Markdown document.",
	Long: `codepack walks a project directory, selects files according to a rules
config (sections with extensions, exclusions, and recursion flags), and
concatenates them into one Markdown document plus a manifest.

Examples:
  codepack . -c web -o web_snapshot.md
  codepack ~/src/app --structure --verbose
  codepack . --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.Flags().StringVarP(&configName, "config", "c", "", "rules config name or path (default \"extract\")")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "document destination path")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "", "manifest destination path (default files.txt next to the document)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick files interactively before writing")
	rootCmd.Flags().BoolVar(&structure, "structure", false, "embed a project structure tree in the document")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output with timing information")
	rootCmd.Flags().StringVar(&theme, "theme", "", "interactive UI theme (plain, cyan, matrix)")
}

// stepTimer tracks timing for verbose output.
type stepTimer struct {
	start   time.Time
	verbose bool
}

func (t *stepTimer) step(name string) {
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if !t.verbose {
		return
	}
	successColor.Printf("  ✓ done (%s)\n", time.Since(t.start).Round(time.Millisecond))
	for _, d := range details {
		dimColor.Printf("    %s\n", d)
	}
}

func runPack(_ *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(cfg.Log, nil)

	a := app.New(cfg, log)
	opts := app.Options{
		BaseDir:    args[0],
		ConfigName: configName,
		Output:     outputPath,
		Manifest:   manifestPath,
		Structure:  structure,
	}

	if interactive {
		selected := theme
		if selected == "" {
			selected = cfg.Theme
		}
		return tui.Run(a, opts, selected)
	}

	timer := &stepTimer{verbose: verbose}
	timer.step("Packing " + opts.BaseDir)

	summary, err := a.Run(opts)
	if err != nil {
		return err
	}

	for _, w := range summary.Warnings {
		warnColor.Printf("warning: %s\n", w)
	}
	timer.done(
		fmt.Sprintf("document: %s", summary.OutputPath),
		fmt.Sprintf("manifest: %s", summary.ManifestPath),
	)
	fmt.Printf("Wrote %d files (%d bytes) to %s\n", len(summary.Files), summary.Bytes, summary.OutputPath)
	return nil
}
