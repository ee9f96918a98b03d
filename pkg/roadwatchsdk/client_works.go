package roadwatchsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListWorks(ctx context.Context) ([]WorkInfo, error) {
	var out []WorkInfo
	err := c.get(ctx, "/api/travaux", &out)
	return out, err
}

func (c *Client) GetWork(ctx context.Context, id string) (WorkInfo, error) {
	var out WorkInfo
	err := c.get(ctx, "/api/travaux/"+url.PathEscape(id), &out)
	return out, err
}

func (c *Client) CreateWork(ctx context.Context, req WorkRequest) (WorkInfo, error) {
	var out WorkInfo
	err := c.do(ctx, http.MethodPost, "/api/travaux", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) UpdateWork(ctx context.Context, id string, req WorkRequest) (WorkInfo, error) {
	var out WorkInfo
	err := c.do(ctx, http.MethodPut, "/api/travaux/"+url.PathEscape(id), req, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteWork(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/travaux/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// WorkHistory lists the history entries of one work.
func (c *Client) WorkHistory(ctx context.Context, workID string) ([]WorkHistoryInfo, error) {
	var out []WorkHistoryInfo
	err := c.get(ctx, "/api/travaux/"+url.PathEscape(workID)+"/historique", &out)
	return out, err
}

// AppendWorkHistory records a history entry for workID.
func (c *Client) AppendWorkHistory(ctx context.Context, workID string, req WorkHistoryRequest) (WorkHistoryInfo, error) {
	var out WorkHistoryInfo
	err := c.do(ctx, http.MethodPost, "/api/travaux/"+url.PathEscape(workID)+"/historique", req, &out, http.StatusCreated)
	return out, err
}
