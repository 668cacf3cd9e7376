package masedb

import (
	"context"
	"fmt"
	"net/http"
)

// CreateIndex creates a composite index over the given fields, in order.
func (c *Client) CreateIndex(ctx context.Context, collection string, fields []string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	body := map[string][]string{"fields": fields}
	var result Result
	path := fmt.Sprintf("/api/collection/%s/index", collection)
	if err := c.api.Do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ListIndexes returns the indexes defined on a collection.
func (c *Client) ListIndexes(ctx context.Context, collection string) ([]Index, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result struct {
		Indexes []Index `json:"indexes"`
	}
	path := fmt.Sprintf("/api/collection/%s/index", collection)
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Indexes, nil
}
