package masedb

import (
	"math"
	"time"
)

// Document is a schemaless record. The server reserves four fields on every
// document: _id, owner_id, _created_at and _updated_at; everything else is
// arbitrary user data. Documents are immutable server snapshots and are
// returned with all fields intact.
type Document map[string]any

// ID returns the reserved _id field, or "" if absent.
func (d Document) ID() string {
	s, _ := d["_id"].(string)
	return s
}

// OwnerID returns the reserved owner_id field, or "" if absent.
func (d Document) OwnerID() string {
	s, _ := d["owner_id"].(string)
	return s
}

// CreatedAt returns the reserved _created_at timestamp, or the zero time
// if absent.
func (d Document) CreatedAt() time.Time {
	return d.timeField("_created_at")
}

// UpdatedAt returns the reserved _updated_at timestamp, or the zero time
// if absent.
func (d Document) UpdatedAt() time.Time {
	return d.timeField("_updated_at")
}

func (d Document) timeField(key string) time.Time {
	f, ok := d[key].(float64)
	if !ok {
		return time.Time{}
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

// Query is a filter expressed in the server's MongoDB-style operator
// vocabulary ($eq, $gt, $in, $exists, $regex, $or, ...). The client passes
// queries through verbatim and performs no validation or evaluation.
type Query map[string]any

// Update is a set of update operations in the server's operator vocabulary
// ($set, $inc, $push, $unset, ...), passed through verbatim.
type Update map[string]any

// Result is a decoded server reply for operations without a fixed shape.
// The body is returned exactly as the server sent it.
type Result map[string]any

// Collection describes a collection as returned by ListCollections.
type Collection struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OwnerID     string  `json:"owner_id"`
	CreatedAt   float64 `json:"created_at"` // Unix timestamp
}

// Index describes a composite index over an ordered list of fields.
type Index struct {
	Fields    []string `json:"fields"`
	CreatedAt float64  `json:"created_at"` // Unix timestamp
}

// TransactionStatus is the server-managed lifecycle state of a transaction.
type TransactionStatus string

const (
	// TransactionActive means the transaction is open and accepting changes.
	TransactionActive TransactionStatus = "active"
	// TransactionCommitted means the transaction was committed.
	TransactionCommitted TransactionStatus = "committed"
	// TransactionRolledBack means the transaction was rolled back.
	TransactionRolledBack TransactionStatus = "rolled_back"
)

// Transaction is a snapshot of a server-side transaction. The lifecycle
// (active -> committed | rolled_back) is entirely server-owned; the client
// only observes it.
type Transaction struct {
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	StartTime     float64           `json:"start_time"` // Unix timestamp
	ChangesCount  int               `json:"changes_count"`
}

// DatabaseStats is a read-only snapshot of database-wide statistics.
// The nested activity, memory and operations shapes are server-defined and
// kept as maps.
type DatabaseStats struct {
	CollectionsCount int              `json:"collections_count"`
	DocumentsCount   int              `json:"documents_count"`
	DataSize         int64            `json:"data_size"`
	IndexesCount     int              `json:"indexes_count"`
	Collections      []map[string]any `json:"collections"`
	Activity         map[string]any   `json:"activity"`
	Memory           map[string]any   `json:"memory"`
	Operations       map[string]any   `json:"operations"`
}

// DetailedStats is a read-only snapshot of shard and cache level statistics.
type DetailedStats struct {
	DatabaseInfo map[string]any `json:"database_info"`
	ShardStats   map[string]any `json:"shard_stats"`
	CacheStats   map[string]any `json:"cache_stats"`
}
