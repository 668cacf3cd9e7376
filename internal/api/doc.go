// Package api provides the HTTP core for communicating with the MaseDB API.
// It handles authentication, request/response serialization and error
// mapping; the actual round trip is delegated to a Transport.
//
// # Request Contract
//
// Every request carries the API key in the X-API-Key header and
// Accept: application/json. Content-Type: application/json is set only for
// POST and PUT requests; GET and DELETE requests never carry it, even when a
// JSON body is attached (the server reads query filters from the body of GET
// requests).
//
// Caller-supplied path segments (collection names, document IDs, transaction
// IDs) are interpolated into paths without URL-encoding. The server routes
// raw segments; escaping would change the request line.
//
// # Transports
//
// Two Transport implementations cover the two execution modes:
//
//   - [PooledTransport]: a shared connection pool reused across calls, with
//     automatic retry on 500, 502, 503 and 504 (three attempts, exponential
//     backoff from 500ms with jitter).
//   - [SessionTransport]: a session created lazily on first use and released
//     by Close. No retries.
//
// # Error Mapping
//
// Non-2xx responses become [APIError]. Structured error bodies
// ({"error": {"code", "message", "details"}}) populate the error's fields;
// anything else yields the generic message "HTTP <status>: <body>".
// Transport failures become [NetworkError]; 2xx responses with a non-JSON or
// unparseable body become [ProtocolError].
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously; the only shared resource is the
// transport's connection pool.
package api
