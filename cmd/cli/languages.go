package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martens/codepack/internal/render"
	"github.com/martens/codepack/internal/tui"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the extension to code-fence language mapping.",
	Run: func(_ *cobra.Command, _ []string) {
		titleColor.Println("Known extensions:")
		for _, pair := range render.Languages() {
			fmt.Printf("  %-8s %s\n", pair[0], pair[1])
		}
		dimColor.Println("\nAnything else is rendered as a plain text block.")
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the interactive UI themes.",
	Run: func(_ *cobra.Command, _ []string) {
		titleColor.Println("Available themes:")
		for _, t := range tui.Themes() {
			fmt.Printf("  - %s\n", t)
		}
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(themesCmd)
}
