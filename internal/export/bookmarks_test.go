package export

import (
	"strings"
	"testing"

	"tabnado/internal/cluster"
	"tabnado/internal/tabs"
)

func TestBookmarks(t *testing.T) {
	items := []tabs.Item{
		{ID: "1", Title: "Go Blog", URL: "https://go.dev/blog"},
		{ID: "2", Title: "Notes <draft>", URL: "https://go.dev/doc/effective_go?a=1&b=2"},
		{ID: "3", Title: "Stray", URL: "https://example.com"},
	}
	res := &cluster.Result{Groups: []cluster.Group{
		{Name: "Go", Emoji: "🐹", TabIDs: []string{"1"}, Children: []cluster.Group{
			{Name: "Reference", TabIDs: []string{"2"}},
		}},
	}}

	out := Bookmarks(res, items)

	if !strings.HasPrefix(out, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("missing Netscape doctype")
	}
	if !strings.Contains(out, "<DT><H3>🐹 Go</H3>") {
		t.Error("top-level folder missing")
	}
	if !strings.Contains(out, "<DT><H3>Reference</H3>") {
		t.Error("nested folder missing")
	}
	if !strings.Contains(out, `<A HREF="https://go.dev/blog">Go Blog</A>`) {
		t.Error("link missing")
	}
	if !strings.Contains(out, "Notes &lt;draft&gt;") {
		t.Error("title not escaped")
	}
	if !strings.Contains(out, "<DT><H3>Unsorted</H3>") {
		t.Error("ungrouped tab should land in the Unsorted folder")
	}
	if !strings.Contains(out, `<A HREF="https://example.com">Stray</A>`) {
		t.Error("unsorted link missing")
	}
}

func TestBookmarksNilResult(t *testing.T) {
	items := []tabs.Item{{ID: "1", Title: "Only", URL: "https://example.com"}}
	out := Bookmarks(nil, items)
	if !strings.Contains(out, "Unsorted") || !strings.Contains(out, "Only") {
		t.Error("nil result should still export everything as Unsorted")
	}
}
