package viz

import "github.com/charmbracelet/lipgloss"

// Theme is one color scheme for the visualization and its chrome.
type Theme struct {
	Name   string
	Bright lipgloss.Color
	Mid    lipgloss.Color
	Dim    lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:   "dark",
		Bright: lipgloss.Color("#e8e8ff"),
		Mid:    lipgloss.Color("#9a9ac8"),
		Dim:    lipgloss.Color("#55557a"),
		Accent: lipgloss.Color("#00ccff"),
		Text:   lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeLight = Theme{
		Name:   "light",
		Bright: lipgloss.Color("#1a1a2e"),
		Mid:    lipgloss.Color("#4a4a7a"),
		Dim:    lipgloss.Color("#9a9ab8"),
		Accent: lipgloss.Color("#0066cc"),
		Text:   lipgloss.Color("#222222"),
		Muted:  lipgloss.Color("#888899"),
	}
)

// Themes in toggle order.
var Themes = []Theme{ThemeDark, ThemeLight}

// DotStyle returns the style for a dot intensity level (0 = unlit).
func (t Theme) DotStyle(level uint8) lipgloss.Style {
	switch level {
	case 3:
		return lipgloss.NewStyle().Foreground(t.Bright)
	case 2:
		return lipgloss.NewStyle().Foreground(t.Mid)
	case 1:
		return lipgloss.NewStyle().Foreground(t.Dim)
	}
	return lipgloss.NewStyle()
}
