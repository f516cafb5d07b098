package tui

import (
	"github.com/martens/codepack/internal/app"
	"github.com/martens/codepack/internal/selector"
)

// Indicates that rule loading and selection have finished.
type selectionDoneMsg struct {
	opts     app.Options
	files    []string
	warnings []selector.Warning
	err      error
}

// Indicates that the document and manifest have been written.
type writeDoneMsg struct {
	summary *app.Summary
	err     error
}

// Indicates that the glamour preview has been rendered.
type previewReadyMsg struct {
	content string
}
