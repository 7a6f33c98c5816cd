package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabnado/internal/tabs"
)

type tabItem struct {
	tab tabs.Item
}

func (i tabItem) Title() string       { return i.tab.Title }
func (i tabItem) Description() string { return i.tab.Domain }
func (i tabItem) FilterValue() string { return i.tab.Title + " " + i.tab.Domain }

// compactDelegate renders one tab per line: title, then the domain dimmed.
type compactDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	domain   lipgloss.Style
}

func newCompactDelegate(accent, muted lipgloss.Color) compactDelegate {
	return compactDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		domain:   lipgloss.NewStyle().Foreground(muted),
	}
}

func (d compactDelegate) Height() int                             { return 1 }
func (d compactDelegate) Spacing() int                            { return 0 }
func (d compactDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(tabItem)
	if !ok {
		return
	}
	style := d.normal
	prefix := "  "
	if index == m.Index() {
		style = d.selected
		prefix = "> "
	}
	line := prefix + truncate(ti.tab.Title, 48)
	fmt.Fprint(w, style.Render(line)+" "+d.domain.Render(ti.tab.Domain))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
