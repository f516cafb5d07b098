package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/martens/codepack/internal/app"
	"github.com/martens/codepack/internal/selector"
)

// previewLimit caps how much of the generated document the preview renders;
// collections can easily run to megabytes.
const previewLimit = 16 * 1024

// selectCmd runs rule loading and selection off the UI loop so the interface
// stays responsive while large trees are walked.
func selectCmd(a *app.App, opts app.Options) tea.Cmd {
	return func() tea.Msg {
		resolved, res, err := a.Prepare(opts)
		if res == nil {
			return selectionDoneMsg{opts: resolved, err: err}
		}
		return selectionDoneMsg{
			opts:     resolved,
			files:    res.Files,
			warnings: res.Warnings,
			err:      err,
		}
	}
}

// writeCmd writes the document and manifest from the checked subset.
func writeCmd(a *app.App, opts app.Options, files []string, warnings []selector.Warning) tea.Cmd {
	return func() tea.Msg {
		summary, err := a.Write(opts, files, warnings)
		return writeDoneMsg{summary: summary, err: err}
	}
}

// previewCmd renders the head of the written document with glamour.
func previewCmd(path string, width int) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return previewReadyMsg{content: "preview unavailable: " + err.Error()}
		}
		if len(data) > previewLimit {
			data = append(data[:previewLimit], []byte("\n\n*preview truncated*\n")...)
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return previewReadyMsg{content: string(data)}
		}
		out, err := r.Render(string(data))
		if err != nil {
			return previewReadyMsg{content: string(data)}
		}
		return previewReadyMsg{content: out}
	}
}
