package viz

import "github.com/charmbracelet/lipgloss"

// Chrome styles derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	KeyHint lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Group   lipgloss.Style
	Panel   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Status:  lipgloss.NewStyle().Foreground(t.Text),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Accent:  lipgloss.NewStyle().Foreground(t.Accent),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Group: lipgloss.NewStyle().Bold(true).Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}
