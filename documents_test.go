package masedb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
)

// capturedRequest records the parts of a request the document tests assert on.
type capturedRequest struct {
	Method string
	Path   string
	Body   string
}

// captureServer replies with the given JSON and records every request.
func captureServer(t *testing.T, reply string) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var captured []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		captured = append(captured, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   string(raw),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)

	return server, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), captured...)
	}
}

func TestListDocuments(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/users" {
			t.Errorf("path = %s, want /api/users", r.URL.Path)
		}
		// The filter rides in the GET body, without a Content-Type header.
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("Content-Type = %q, want empty for GET", ct)
		}
		raw, _ := io.ReadAll(r.Body)
		var query map[string]any
		json.Unmarshal(raw, &query)
		want := map[string]any{"age": map[string]any{"$gt": float64(25)}}
		if !reflect.DeepEqual(query, want) {
			t.Errorf("query = %v, want %v", query, want)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"doc1","name":"John","age":30},{"_id":"doc2","name":"Jane","age":27}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	docs, err := client.ListDocuments(context.Background(), "users", Query{"age": Query{"$gt": 25}})
	if err != nil {
		t.Fatalf("ListDocuments() error = %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	if docs[0].ID() != "doc1" {
		t.Errorf("docs[0].ID() = %s, want doc1", docs[0].ID())
	}
	if docs[0]["age"] != float64(30) {
		t.Errorf("age = %v, want 30", docs[0]["age"])
	}
}

func TestListDocuments_NilQuerySendsEmptyFilter(t *testing.T) {
	t.Parallel()
	server, requests := captureServer(t, `[]`)

	client := newTestClient(t, server)
	if _, err := client.ListDocuments(context.Background(), "users", nil); err != nil {
		t.Fatalf("ListDocuments() error = %v", err)
	}

	reqs := requests()
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if reqs[0].Body != "{}" {
		t.Errorf("body = %s, want {}", reqs[0].Body)
	}
}

func TestFindOne_ReturnsFirstMatch(t *testing.T) {
	t.Parallel()
	server, _ := captureServer(t, `[{"_id":"doc1","name":"John"},{"_id":"doc2","name":"Jane"}]`)

	client := newTestClient(t, server)
	doc, err := client.FindOne(context.Background(), "users", Query{"name": Query{"$exists": true}})
	if err != nil {
		t.Fatalf("FindOne() error = %v", err)
	}
	if doc.ID() != "doc1" {
		t.Errorf("doc.ID() = %s, want doc1", doc.ID())
	}
}

func TestFindOne_NoMatchReturnsNil(t *testing.T) {
	t.Parallel()
	server, _ := captureServer(t, `[]`)

	client := newTestClient(t, server)
	doc, err := client.FindOne(context.Background(), "users", Query{"name": "nobody"})
	if err != nil {
		t.Fatalf("FindOne() error = %v", err)
	}
	if doc != nil {
		t.Errorf("doc = %v, want nil", doc)
	}
}

func TestInsertOne_IssuesIdenticalRequestToCreateDocument(t *testing.T) {
	t.Parallel()
	server, requests := captureServer(t, `{"id":"doc123"}`)

	client := newTestClient(t, server)
	doc := Document{"name": "John", "age": 30}

	if _, err := client.CreateDocument(context.Background(), "users", doc); err != nil {
		t.Fatalf("CreateDocument() error = %v", err)
	}
	if _, err := client.InsertOne(context.Background(), "users", doc); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}

	reqs := requests()
	if len(reqs) != 2 {
		t.Fatalf("requests = %d, want 2", len(reqs))
	}
	if reqs[0] != reqs[1] {
		t.Errorf("InsertOne request %+v differs from CreateDocument request %+v", reqs[1], reqs[0])
	}
	if reqs[0].Method != "POST" || reqs[0].Path != "/api/users" {
		t.Errorf("request = %s %s, want POST /api/users", reqs[0].Method, reqs[0].Path)
	}
}

func TestGetDocument(t *testing.T) {
	t.Parallel()
	server, requests := captureServer(t, `{"_id":"123","name":"John","age":30}`)

	client := newTestClient(t, server)
	doc, err := client.GetDocument(context.Background(), "users", "123", Query{"status": "active"})
	if err != nil {
		t.Fatalf("GetDocument() error = %v", err)
	}
	if doc["name"] != "John" {
		t.Errorf("name = %v, want John", doc["name"])
	}

	reqs := requests()
	if reqs[0].Method != "GET" || reqs[0].Path != "/api/users/123" {
		t.Errorf("request = %s %s, want GET /api/users/123", reqs[0].Method, reqs[0].Path)
	}
	if reqs[0].Body != `{"status":"active"}` {
		t.Errorf("body = %s, want {\"status\":\"active\"}", reqs[0].Body)
	}
}

func TestGetDocument_NilQuerySendsEmptyFilter(t *testing.T) {
	t.Parallel()
	server, requests := captureServer(t, `{"_id":"123"}`)

	client := newTestClient(t, server)
	if _, err := client.GetDocument(context.Background(), "users", "123", nil); err != nil {
		t.Fatalf("GetDocument() error = %v", err)
	}
	if reqs := requests(); reqs[0].Body != "{}" {
		t.Errorf("body = %s, want {}", reqs[0].Body)
	}
}

func TestUpdateDocument(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/api/users/123" {
			t.Errorf("path = %s, want /api/users/123", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}
		raw, _ := io.ReadAll(r.Body)
		if string(raw) != `{"$inc":{"visits":1}}` {
			t.Errorf("body = %s, want {\"$inc\":{\"visits\":1}}", raw)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Document updated successfully"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	result, err := client.UpdateDocument(context.Background(), "users", "123", Update{"$inc": map[string]any{"visits": 1}})
	if err != nil {
		t.Fatalf("UpdateDocument() error = %v", err)
	}
	if result["message"] != "Document updated successfully" {
		t.Errorf("message = %v", result["message"])
	}
}

func TestDeleteDocument(t *testing.T) {
	t.Parallel()
	server, requests := captureServer(t, `{"message":"Document deleted successfully"}`)

	client := newTestClient(t, server)
	if _, err := client.DeleteDocument(context.Background(), "users", "123"); err != nil {
		t.Fatalf("DeleteDocument() error = %v", err)
	}

	reqs := requests()
	if reqs[0].Method != "DELETE" || reqs[0].Path != "/api/users/123" {
		t.Errorf("request = %s %s, want DELETE /api/users/123", reqs[0].Method, reqs[0].Path)
	}
	if reqs[0].Body != "" {
		t.Errorf("body = %q, want empty", reqs[0].Body)
	}
}
