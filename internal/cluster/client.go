package cluster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tabnado/internal/tabs"
)

// Client talks to the external classification service. The service receives
// the flat tab list and answers with a grouping forest; everything about how
// it decides the grouping is its own business.
type Client struct {
	endpoint string
	hc       *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 60 * time.Second},
	}
}

type classifyRequest struct {
	Tabs []tabs.Item `json:"tabs"`
}

// Classify posts the items and decodes the resulting forest.
func (c *Client) Classify(ctx context.Context, items []tabs.Item) (*Result, error) {
	body, err := json.Marshal(classifyRequest{Tabs: items})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classification service: unexpected status %s", resp.Status)
	}
	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("classification service: decode response: %w", err)
	}
	return &res, nil
}

// ByDomain is the offline fallback classifier: one group per domain, in
// first-seen order. It produces the same forest shape as the service so the
// rest of the pipeline cannot tell the difference.
func ByDomain(items []tabs.Item) *Result {
	order := make([]string, 0)
	byDomain := make(map[string][]string)
	for _, it := range items {
		d := it.Domain
		if d == "" {
			d = "other"
		}
		if _, seen := byDomain[d]; !seen {
			order = append(order, d)
		}
		byDomain[d] = append(byDomain[d], it.ID)
	}
	res := &Result{Groups: make([]Group, 0, len(order))}
	for _, d := range order {
		res.Groups = append(res.Groups, Group{Name: d, TabIDs: byDomain[d]})
	}
	return res
}
