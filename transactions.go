package masedb

import (
	"context"
	"fmt"
	"net/http"
)

// StartTransaction opens a new server-side transaction and returns its
// snapshot. The transaction lifecycle is entirely server-managed; the client
// never tracks transaction state locally.
func (c *Client) StartTransaction(ctx context.Context) (*Transaction, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Transaction
	if err := c.api.Do(ctx, http.MethodPost, "/api/transaction", map[string]any{}, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// CommitTransaction commits a transaction and returns the server's status
// reply.
func (c *Client) CommitTransaction(ctx context.Context, transactionID string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/transaction/%s", transactionID)
	if err := c.api.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// RollbackTransaction rolls back a transaction. This is a single RPC, not a
// client-side recovery mechanism.
func (c *Client) RollbackTransaction(ctx context.Context, transactionID string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/transaction/%s/rollback", transactionID)
	if err := c.api.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GetTransactionStatus returns the current snapshot of a transaction,
// including its status and change count.
func (c *Client) GetTransactionStatus(ctx context.Context, transactionID string) (*Transaction, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Transaction
	path := fmt.Sprintf("/api/transaction/%s", transactionID)
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
