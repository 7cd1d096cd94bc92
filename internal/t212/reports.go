package t212

import (
	"context"
	"net/http"
)

// exportRequest is the payload for queueing a CSV export. The time window is
// optional and omitted when empty.
type exportRequest struct {
	DataIncluded ReportDataIncluded `json:"dataIncluded"`
	TimeFrom     string             `json:"timeFrom,omitempty"`
	TimeTo       string             `json:"timeTo,omitempty"`
}

// FetchReports lists previously requested CSV exports with their status and
// download links.
func (c *Client) FetchReports(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := c.request(ctx, http.MethodGet, "/history/exports", nil, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// RequestExport queues a CSV export of account history. timeFrom and timeTo
// are ISO 8601 timestamps bounding the reporting window; empty means
// unbounded.
func (c *Client) RequestExport(ctx context.Context, included ReportDataIncluded, timeFrom, timeTo string) (*EnqueuedReport, error) {
	payload := exportRequest{
		DataIncluded: included,
		TimeFrom:     timeFrom,
		TimeTo:       timeTo,
	}
	var enqueued EnqueuedReport
	if err := c.request(ctx, http.MethodPost, "/history/exports", nil, payload, &enqueued); err != nil {
		return nil, err
	}
	return &enqueued, nil
}
