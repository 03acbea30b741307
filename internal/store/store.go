package store

import (
	"context"
)

// Store is the durable mirror behind the journal: an opaque map from a
// collection key to the JSON-serialized collection. Implementations live under
// internal/store/<driver>/ (sqlite, postgres, memstore).
//
// Get returns model.ErrNotFound when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Close() error
}

// Schema is the single table every SQL driver keeps the mirror in.
const Schema = `CREATE TABLE IF NOT EXISTS journal_mirror (
	mirror_key   TEXT PRIMARY KEY,
	mirror_value TEXT NOT NULL,
	updated_at   TIMESTAMP NOT NULL
)`
