package tabs

import (
	"bufio"
	"encoding/json"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Item is one browser tab as supplied by the host.
type Item struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Domain string `json:"domain,omitempty"`
}

// Domain extracts the host portion of a URL, without a www. prefix.
// Returns "" for anything that does not parse as a URL with a host.
func Domain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// ParseFile reads a tab dump from path. A dump starting with '[' is decoded
// as a JSON array of items; anything else is treated as plain text, one tab
// per line.
func ParseFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "[") {
		return ParseJSON(strings.NewReader(trimmed))
	}
	return ParseText(strings.NewReader(string(data)))
}

// ParseJSON decodes a JSON array of items, filling in missing ids and
// domains.
func ParseJSON(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, err
	}
	out := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.URL) == "" {
			continue
		}
		out = append(out, normalize(it))
	}
	return out, nil
}

// ParseText reads one tab per line, either "url<TAB>title" or a bare URL.
// Blank lines, comments (#) and lines that are not URLs are skipped.
func ParseText(r io.Reader) ([]Item, error) {
	var items []Item
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		it := Item{URL: line}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			it.URL = strings.TrimSpace(line[:i])
			it.Title = strings.TrimSpace(line[i+1:])
		}
		if Domain(it.URL) == "" {
			continue
		}
		items = append(items, normalize(it))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func normalize(it Item) Item {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.Domain == "" {
		it.Domain = Domain(it.URL)
	}
	if it.Title == "" {
		it.Title = it.Domain
	}
	return it
}
