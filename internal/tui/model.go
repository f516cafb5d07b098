// Package tui implements the interactive file-checklist front end. The scan
// and the final write both run as tea commands so the UI loop never blocks;
// the selection engine itself stays synchronous.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/martens/codepack/internal/app"
	"github.com/martens/codepack/internal/selector"
)

type phase int

const (
	phaseScanning phase = iota
	phaseChecklist
	phaseWriting
	phasePreview
	phaseFailed
)

// item is one selectable file in the checklist.
type item struct {
	path    string // absolute, as produced by the selection engine
	display string // relative to the base directory, slash-normalized
	checked bool
}

type model struct {
	styles styles
	app    *app.App
	opts   app.Options

	phase    phase
	items    []item
	cursor   int
	offset   int
	height   int
	width    int
	warnings []selector.Warning
	err      error

	spinner  spinner.Model
	viewport viewport.Model
	summary  *app.Summary
}

func newModel(a *app.App, opts app.Options, theme string) *model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:  themeStyles(theme),
		app:     a,
		opts:    opts,
		phase:   phaseScanning,
		spinner: sp,
		height:  24,
		width:   80,
	}
}

// Run starts the interactive checklist over the given options and blocks
// until the user quits or the document has been written and dismissed.
func Run(a *app.App, opts app.Options, theme string) error {
	p := tea.NewProgram(newModel(a, opts, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(selectCmd(m.app, m.opts), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = msg.Height - 4
		return m, nil

	case selectionDoneMsg:
		m.opts = msg.opts
		m.warnings = msg.warnings
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseFailed
			return m, nil
		}
		m.items = make([]item, len(msg.files))
		for i, f := range msg.files {
			rel, err := filepath.Rel(m.opts.BaseDir, f)
			if err != nil {
				rel = f
			}
			m.items[i] = item{path: f, display: filepath.ToSlash(rel), checked: true}
		}
		m.phase = phaseChecklist
		return m, nil

	case writeDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseFailed
			return m, nil
		}
		m.summary = msg.summary
		m.phase = phasePreview
		return m, previewCmd(msg.summary.OutputPath, m.width-4)

	case previewReadyMsg:
		m.viewport = viewport.New(m.width-2, m.height-4)
		m.viewport.SetContent(msg.content)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.phase {
	case phaseScanning, phaseWriting:
		m.spinner, cmd = m.spinner.Update(msg)
	case phasePreview:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}
	key := msg.String()
	if key == "q" {
		return m, tea.Quit
	}
	if m.phase != phaseChecklist {
		if m.phase == phasePreview {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		if len(m.items) > 0 {
			m.items[m.cursor].checked = !m.items[m.cursor].checked
		}
	case "a":
		m.setAll(true)
	case "n":
		m.setAll(false)
	case "enter":
		files := m.checkedFiles()
		if len(files) == 0 {
			return m, nil
		}
		m.phase = phaseWriting
		return m, tea.Batch(m.spinner.Tick, writeCmd(m.app, m.opts, files, m.warnings))
	}
	m.scrollToCursor()
	return m, nil
}

func (m *model) setAll(checked bool) {
	for i := range m.items {
		m.items[i].checked = checked
	}
}

func (m *model) checkedFiles() []string {
	var files []string
	for _, it := range m.items {
		if it.checked {
			files = append(files, it.path)
		}
	}
	return files
}

// visibleRows is how many checklist lines fit between header and footer.
func (m *model) visibleRows() int {
	rows := m.height - 6 - len(m.warnings)
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *model) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *model) View() string {
	switch m.phase {
	case phaseScanning:
		return fmt.Sprintf("\n %s scanning %s...\n", m.spinner.View(), m.opts.BaseDir)
	case phaseWriting:
		return fmt.Sprintf("\n %s writing document...\n", m.spinner.View())
	case phaseFailed:
		return fmt.Sprintf("\n%s\n\n%s\n",
			m.styles.errText.Render("✗ "+m.err.Error()),
			m.styles.help.Render("press q to quit"))
	case phasePreview:
		return m.previewView()
	}
	return m.checklistView()
}

func (m *model) checklistView() string {
	var b strings.Builder
	checked := len(m.checkedFiles())
	b.WriteString(m.styles.title.Render(fmt.Sprintf("codepack — %d of %d files selected", checked, len(m.items))))
	b.WriteString("\n")
	for _, w := range m.warnings {
		b.WriteString(m.styles.warning.Render("⚠ " + w.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := m.visibleRows()
	end := m.offset + rows
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		it := m.items[i]
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.cursor.Render("► ")
		}
		box := m.styles.inactive.Render("[ ]")
		name := m.styles.inactive.Render(it.display)
		if it.checked {
			box = m.styles.checked.Render("[x]")
			name = it.display
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, name)
	}
	if end < len(m.items) {
		b.WriteString(m.styles.inactive.Render(fmt.Sprintf("  … %d more", len(m.items)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("space toggle · a all · n none · enter write · q quit"))
	return b.String()
}

func (m *model) previewView() string {
	header := m.styles.success.Render(fmt.Sprintf("✓ wrote %s (%d files, %d bytes)",
		m.summary.OutputPath, len(m.summary.Files), m.summary.Bytes))
	footer := m.styles.help.Render("manifest: " + m.summary.ManifestPath + " · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}
