package masedb

import (
	"context"
	"net/http"
)

// GetStats returns database-wide statistics: collection and document counts,
// data size, activity histogram, memory usage and operation counters.
func (c *Client) GetStats(ctx context.Context) (*DatabaseStats, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result DatabaseStats
	if err := c.api.Do(ctx, http.MethodGet, "/api/stats", nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetDetailedStats returns shard and cache level statistics. Requires an
// admin API key.
func (c *Client) GetDetailedStats(ctx context.Context) (*DetailedStats, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result DetailedStats
	if err := c.api.Do(ctx, http.MethodGet, "/api/stats/detailed", nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
