package t212

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FetchPies lists all pies with their balances and performance.
func (c *Client) FetchPies(ctx context.Context) ([]PieSummary, error) {
	var pies []PieSummary
	if err := c.request(ctx, http.MethodGet, "/equity/pies", nil, nil, &pies); err != nil {
		return nil, err
	}
	return pies, nil
}

// FetchPie retrieves the full details of one pie.
func (c *Client) FetchPie(ctx context.Context, pieID int64) (*PieDetails, error) {
	var pie PieDetails
	path := fmt.Sprintf("/equity/pies/%d", pieID)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &pie); err != nil {
		return nil, err
	}
	return &pie, nil
}

// CreatePie builds a new pie. The request object is sent as-is, including
// explicit nulls for unset fields.
func (c *Client) CreatePie(ctx context.Context, req PieRequest) (*PieDetails, error) {
	var pie PieDetails
	if err := c.request(ctx, http.MethodPost, "/equity/pies", nil, req, &pie); err != nil {
		return nil, err
	}
	return &pie, nil
}

// UpdatePie applies a partial update: null fields are dropped from the
// payload so only the provided settings change.
func (c *Client) UpdatePie(ctx context.Context, pieID int64, req PieRequest) (*PieDetails, error) {
	payload, err := partialPayload(req)
	if err != nil {
		return nil, err
	}
	var pie PieDetails
	path := fmt.Sprintf("/equity/pies/%d", pieID)
	if err := c.request(ctx, http.MethodPost, path, nil, payload, &pie); err != nil {
		return nil, err
	}
	return &pie, nil
}

// DuplicatePie clones a pie with identical allocations.
func (c *Client) DuplicatePie(ctx context.Context, pieID int64, req DuplicatePieRequest) (*PieDetails, error) {
	var pie PieDetails
	path := fmt.Sprintf("/equity/pies/%d/duplicate", pieID)
	if err := c.request(ctx, http.MethodPost, path, nil, req, &pie); err != nil {
		return nil, err
	}
	return &pie, nil
}

// DeletePie removes a pie; its instruments become standalone positions.
func (c *Client) DeletePie(ctx context.Context, pieID int64) error {
	path := fmt.Sprintf("/equity/pies/%d", pieID)
	return c.request(ctx, http.MethodDelete, path, nil, nil, nil)
}

// partialPayload marshals a request and strips all null fields from the
// resulting object.
func partialPayload(req any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for key, value := range fields {
		if string(value) == "null" {
			delete(fields, key)
		}
	}
	return fields, nil
}
