package cluster

import (
	"encoding/json"
	"os"
)

// Group is one node of the grouping forest returned by the classification
// service. Members are tab ids; children are nested subgroups.
type Group struct {
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji,omitempty"`
	TabIDs   []string `json:"tabIds"`
	Children []Group  `json:"children,omitempty"`
}

// Result is the full clustering result: an ordered forest of top-level
// groups.
type Result struct {
	Groups []Group `json:"groups"`
}

// LoadFile reads a pre-computed clustering result from a JSON file.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SaveFile writes a clustering result as indented JSON.
func SaveFile(path string, res *Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// members returns the group's ids plus those of all descendants, depth-first
// in declaration order.
func (g *Group) members() []string {
	ids := make([]string, 0, len(g.TabIDs))
	ids = append(ids, g.TabIDs...)
	for i := range g.Children {
		ids = append(ids, g.Children[i].members()...)
	}
	return ids
}
