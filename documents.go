package masedb

import (
	"context"
	"fmt"
	"net/http"
)

// ListDocuments returns the documents in a collection matching the query.
// The query uses the server's operator vocabulary and is passed through
// verbatim; a nil query matches every document.
//
// The filter travels in the body of the GET request, which is what the
// server expects.
func (c *Client) ListDocuments(ctx context.Context, collection string, query Query) ([]Document, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if query == nil {
		query = Query{}
	}
	var result []Document
	path := fmt.Sprintf("/api/%s", collection)
	if err := c.api.Do(ctx, http.MethodGet, path, query, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// FindOne returns the first document matching the query, or nil when
// nothing matches. It delegates to ListDocuments and filters client-side.
func (c *Client) FindOne(ctx context.Context, collection string, query Query) (Document, error) {
	docs, err := c.ListDocuments(ctx, collection, query)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// CreateDocument creates a new document in a collection. The server assigns
// the reserved fields and replies with the created document's ID.
func (c *Client) CreateDocument(ctx context.Context, collection string, doc Document) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/%s", collection)
	if err := c.api.Do(ctx, http.MethodPost, path, doc, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// InsertOne inserts a single document. It is an alias for CreateDocument and
// issues the identical request.
func (c *Client) InsertOne(ctx context.Context, collection string, doc Document) (Result, error) {
	return c.CreateDocument(ctx, collection, doc)
}

// GetDocument returns a document by ID. The optional query narrows the match
// with additional operator conditions; nil sends an empty filter.
func (c *Client) GetDocument(ctx context.Context, collection, documentID string, query Query) (Document, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if query == nil {
		query = Query{}
	}
	var result Document
	path := fmt.Sprintf("/api/%s/%s", collection, documentID)
	if err := c.api.Do(ctx, http.MethodGet, path, query, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// UpdateDocument applies update operators (or direct field updates) to a
// document. The update payload is passed through verbatim.
func (c *Client) UpdateDocument(ctx context.Context, collection, documentID string, update Update) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/%s/%s", collection, documentID)
	if err := c.api.Do(ctx, http.MethodPut, path, update, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// DeleteDocument deletes a document from a collection.
func (c *Client) DeleteDocument(ctx context.Context, collection, documentID string) (Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var result Result
	path := fmt.Sprintf("/api/%s/%s", collection, documentID)
	if err := c.api.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
