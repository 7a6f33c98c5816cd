package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabnado/internal/cluster"
	"tabnado/internal/tabs"
)

func (m model) View() string {
	switch m.state {
	case stateStorm:
		return m.stormView()
	case stateGrid:
		return m.gridView()
	}
	return m.listView()
}

func (m model) listView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("tabnado"))
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d tabs", len(m.opts.Items))))
	sb.WriteString("\n")
	sb.WriteString(m.list.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.KeyHint.Render("enter launch · t theme · q quit"))
	return sb.String()
}

func (m model) stormView() string {
	m.canvas.Clear()
	m.comp.Draw(m.canvas, m.engine.Pool(), m.engine.SpeedMod())

	live := m.engine.Store().Live()
	status := fmt.Sprintf(" %s · %d tabs · spin %+.1f · speed %.3f · radius %.1f · wobble %.0f · %3.0f fps",
		m.engine.Phase(), len(m.engine.Pool().Particles), m.engine.Momentum(),
		live.BaseSpeed, live.RadiusScale, live.Wobble, m.fps)
	if m.clusterErr != nil {
		status += m.styles.Muted.Render(" · clustering failed, swirling on")
	}

	var sb strings.Builder
	sb.WriteString(m.canvas.Render(m.theme()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(status))
	sb.WriteString("\n")
	sb.WriteString(m.styles.KeyHint.Render(" ↑/↓ spin · 1-6 tune · t theme · q quit"))
	return sb.String()
}

// gridView lays the grouped tabs out in columns, one per top-level group
// plus a trailing unsorted column, mirroring the particle landing grid.
func (m model) gridView() string {
	byID := make(map[string]tabs.Item, len(m.opts.Items))
	for _, it := range m.opts.Items {
		byID[it.ID] = it
	}
	used := make(map[string]bool)

	var cols []string
	if m.clusters != nil {
		for i := range m.clusters.Groups {
			g := &m.clusters.Groups[i]
			cols = append(cols, m.renderColumn(groupTitle(g), collectTitles(g, byID, used)))
		}
	}
	var unsorted []string
	for _, it := range m.opts.Items {
		if !used[it.ID] {
			unsorted = append(unsorted, truncate(it.Title, 22))
		}
	}
	if len(unsorted) > 0 {
		cols = append(cols, m.renderColumn("unsorted", unsorted))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	hint := "e export bookmarks · t theme · q quit"
	if m.exported != "" {
		hint = "exported to " + m.exported + " · q quit"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("assembled"))
	sb.WriteString("\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(m.styles.KeyHint.Render(hint))
	return sb.String()
}

func (m model) renderColumn(title string, lines []string) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Group.Render(title))
	sb.WriteString("\n")
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	return m.styles.Panel.Render(strings.TrimRight(sb.String(), "\n"))
}

func groupTitle(g *cluster.Group) string {
	if g.Emoji != "" {
		return g.Emoji + " " + g.Name
	}
	return g.Name
}

// collectTitles flattens a group subtree into display lines, indenting
// nested groups.
func collectTitles(g *cluster.Group, byID map[string]tabs.Item, used map[string]bool) []string {
	var out []string
	for _, id := range g.TabIDs {
		it, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		out = append(out, truncate(it.Title, 22))
	}
	for i := range g.Children {
		child := &g.Children[i]
		sub := collectTitles(child, byID, used)
		if len(sub) == 0 {
			continue
		}
		out = append(out, "· "+truncate(child.Name, 20))
		for _, s := range sub {
			out = append(out, "  "+s)
		}
	}
	return out
}
