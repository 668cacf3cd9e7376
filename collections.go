package masedb

import (
	"context"
	"fmt"
	"net/http"
)

// ListCollections returns all collections visible to the API key.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result []Collection
	if err := c.api.Do(ctx, http.MethodGet, "/api/collections", nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// CreateCollection creates a new collection. The description may be empty.
// The server's acknowledgement is returned as-is.
func (c *Client) CreateCollection(ctx context.Context, name, description string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	body := map[string]string{
		"name":        name,
		"description": description,
	}
	var result Result
	if err := c.api.Do(ctx, http.MethodPost, "/api/collections", body, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GetCollection returns collection details, including document count and
// size. The shape is server-defined and differs from the ListCollections
// entries, so the reply is returned as-is.
func (c *Client) GetCollection(ctx context.Context, name string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/collections/%s", name)
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// DeleteCollection deletes a collection and all its documents.
func (c *Client) DeleteCollection(ctx context.Context, name string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/collections/%s", name)
	if err := c.api.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
