package tabs

import (
	"strings"
	"testing"
)

func TestDomain(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.example.com/page", "example.com"},
		{"https://pkg.go.dev/net/url", "pkg.go.dev"},
		{"http://localhost:8080/x", "localhost"},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Domain(tt.raw); got != tt.want {
			t.Errorf("Domain(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseText(t *testing.T) {
	dump := strings.Join([]string{
		"https://go.dev/blog\tThe Go Blog",
		"",
		"# a comment",
		"https://news.ycombinator.com",
		"garbage line",
	}, "\n")

	items, err := ParseText(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "The Go Blog" {
		t.Errorf("expected title from tab-separated field, got %q", items[0].Title)
	}
	if items[1].Title != "news.ycombinator.com" {
		t.Errorf("expected domain fallback title, got %q", items[1].Title)
	}
	for _, it := range items {
		if it.ID == "" {
			t.Errorf("item %q has no id", it.URL)
		}
	}
}

func TestParseJSON(t *testing.T) {
	src := `[
		{"id":"a1","title":"Go","url":"https://go.dev"},
		{"title":"","url":"https://www.example.com/x"},
		{"title":"no url","url":""}
	]`
	items, err := ParseJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "a1" {
		t.Errorf("explicit id not preserved: %q", items[0].ID)
	}
	if items[1].Domain != "example.com" {
		t.Errorf("domain not derived: %q", items[1].Domain)
	}
}
