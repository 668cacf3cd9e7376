// Package masedb provides a Go client for the MaseDB document database API.
//
// The client is a thin transport layer: each method maps to a single
// authenticated HTTP call, and query/update payloads use the server's
// MongoDB-style operator vocabulary, passed through verbatim without local
// validation or evaluation.
//
// Basic usage:
//
//	client, err := masedb.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a collection and insert a document
//	_, err = client.CreateCollection(ctx, "users", "User accounts")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = client.InsertOne(ctx, "users", masedb.Document{
//	    "name": "John",
//	    "age":  30,
//	})
//
//	// Query with operators
//	doc, err := client.FindOne(ctx, "users", masedb.Query{
//	    "age": masedb.Query{"$gt": 25},
//	})
//
// Two transport modes share identical method signatures and error semantics.
// The default pooled mode keeps a shared connection pool and retries server
// errors; session mode scopes connections to the client's lifetime and never
// retries:
//
//	client, err := masedb.New(apiKey, masedb.WithTransportMode(masedb.TransportSession))
//
// All failures surface as *[Error]; use errors.Is with the package sentinels
// to branch on the server's error taxonomy:
//
//	if errors.Is(err, masedb.ErrNotFound) {
//	    // collection or document does not exist
//	}
package masedb
