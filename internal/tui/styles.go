package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	checked  lipgloss.Style
	inactive lipgloss.Style
	warning  lipgloss.Style
	errText  lipgloss.Style
	success  lipgloss.Style
	help     lipgloss.Style
}

type palette struct {
	Primary  lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Inactive lipgloss.Color
}

var palettes = map[string]palette{
	"plain": {
		Primary:  lipgloss.Color("252"),
		Success:  lipgloss.Color("42"),
		Warning:  lipgloss.Color("214"),
		Error:    lipgloss.Color("196"),
		Inactive: lipgloss.Color("240"),
	},
	"cyan": {
		Primary:  lipgloss.Color("51"),
		Success:  lipgloss.Color("46"),
		Warning:  lipgloss.Color("226"),
		Error:    lipgloss.Color("196"),
		Inactive: lipgloss.Color("240"),
	},
	"matrix": {
		Primary:  lipgloss.Color("82"),
		Success:  lipgloss.Color("46"),
		Warning:  lipgloss.Color("190"),
		Error:    lipgloss.Color("196"),
		Inactive: lipgloss.Color("240"),
	},
}

// Themes lists the selectable UI themes.
func Themes() []string {
	return []string{"plain", "cyan", "matrix"}
}

func themeStyles(name string) styles {
	p, ok := palettes[name]
	if !ok {
		p = palettes["plain"]
	}
	return styles{
		title:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		cursor:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		checked:  lipgloss.NewStyle().Foreground(p.Success),
		inactive: lipgloss.NewStyle().Foreground(p.Inactive),
		warning:  lipgloss.NewStyle().Foreground(p.Warning),
		errText:  lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		success:  lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		help:     lipgloss.NewStyle().Foreground(p.Inactive).Italic(true),
	}
}
