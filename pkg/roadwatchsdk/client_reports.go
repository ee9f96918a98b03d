package roadwatchsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListReports(ctx context.Context) ([]ReportInfo, error) {
	var out []ReportInfo
	err := c.get(ctx, "/api/signalements", &out)
	return out, err
}

func (c *Client) GetReport(ctx context.Context, id string) (ReportInfo, error) {
	var out ReportInfo
	err := c.get(ctx, "/api/signalements/"+url.PathEscape(id), &out)
	return out, err
}

func (c *Client) ReportsByStatus(ctx context.Context, status string) ([]ReportInfo, error) {
	var out []ReportInfo
	err := c.get(ctx, "/api/signalements/statut/"+url.PathEscape(status), &out)
	return out, err
}

// SearchReports matches q inside report descriptions.
func (c *Client) SearchReports(ctx context.Context, q string) ([]ReportInfo, error) {
	var out []ReportInfo
	err := c.get(ctx, "/api/signalements/search?q="+url.QueryEscape(q), &out)
	return out, err
}

// ReportStats returns report counts keyed by status plus "total".
func (c *Client) ReportStats(ctx context.Context) (map[string]int64, error) {
	var out map[string]int64
	err := c.get(ctx, "/api/signalements/stats", &out)
	return out, err
}

func (c *Client) CreateReport(ctx context.Context, req ReportRequest) (ReportInfo, error) {
	var out ReportInfo
	err := c.do(ctx, http.MethodPost, "/api/signalements", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) UpdateReport(ctx context.Context, id string, req ReportRequest) (ReportInfo, error) {
	var out ReportInfo
	err := c.do(ctx, http.MethodPut, "/api/signalements/"+url.PathEscape(id), req, &out, http.StatusOK)
	return out, err
}

// UpdateReportStatus changes a report status. A linked work's progress
// follows the status.
func (c *Client) UpdateReportStatus(ctx context.Context, id, status string) (StatusUpdateResponse, error) {
	var out StatusUpdateResponse
	err := c.do(ctx, http.MethodPut, "/api/signalements/"+url.PathEscape(id)+"/statut",
		StatusRequest{Status: status}, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/signalements/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// Sync triggers a pull from the document store.
func (c *Client) Sync(ctx context.Context) (SyncResponse, error) {
	var out SyncResponse
	err := c.get(ctx, "/api/signalements/sync", &out)
	return out, err
}
