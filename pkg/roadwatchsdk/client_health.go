package roadwatchsdk

import "context"

// Livez checks that the service is running.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.get(ctx, "/livez", &health)
	return health, err
}

// Readyz checks that the service and its database are ready.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.get(ctx, "/readyz", &health)
	return health, err
}
