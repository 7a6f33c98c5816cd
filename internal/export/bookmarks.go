// Package export renders a clustering result as a Netscape bookmark file,
// the interchange format every browser's import dialog accepts.
package export

import (
	"fmt"
	"html"
	"strings"

	"tabnado/internal/cluster"
	"tabnado/internal/tabs"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file. -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
`

// Bookmarks formats the grouped tabs as a bookmark file. Groups become
// folders, child groups nested folders; tabs missing from every group land
// in a trailing "Unsorted" folder.
func Bookmarks(res *cluster.Result, items []tabs.Item) string {
	byID := make(map[string]tabs.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	used := make(map[string]bool, len(items))

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("<DL><p>\n")
	if res != nil {
		for i := range res.Groups {
			writeGroup(&sb, &res.Groups[i], byID, used, 1)
		}
	}

	var unsorted []tabs.Item
	for _, it := range items {
		if !used[it.ID] {
			unsorted = append(unsorted, it)
		}
	}
	if len(unsorted) > 0 {
		writeFolderOpen(&sb, "Unsorted", "", 1)
		for _, it := range unsorted {
			writeLink(&sb, it, 2)
		}
		writeFolderClose(&sb, 1)
	}

	sb.WriteString("</DL><p>\n")
	return sb.String()
}

func writeGroup(sb *strings.Builder, g *cluster.Group, byID map[string]tabs.Item, used map[string]bool, depth int) {
	writeFolderOpen(sb, g.Name, g.Emoji, depth)
	for _, id := range g.TabIDs {
		it, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		writeLink(sb, it, depth+1)
	}
	for i := range g.Children {
		writeGroup(sb, &g.Children[i], byID, used, depth+1)
	}
	writeFolderClose(sb, depth)
}

func writeFolderOpen(sb *strings.Builder, name, emoji string, depth int) {
	title := name
	if emoji != "" {
		title = emoji + " " + name
	}
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(sb, "%s<DT><H3>%s</H3>\n%s<DL><p>\n", indent, html.EscapeString(title), indent)
}

func writeFolderClose(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s</DL><p>\n", strings.Repeat("    ", depth))
}

func writeLink(sb *strings.Builder, it tabs.Item, depth int) {
	fmt.Fprintf(sb, "%s<DT><A HREF=\"%s\">%s</A>\n",
		strings.Repeat("    ", depth),
		html.EscapeString(it.URL),
		html.EscapeString(it.Title))
}
