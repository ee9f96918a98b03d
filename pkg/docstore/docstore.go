// Package docstore is a minimal view of a schemaless document database:
// collections of flat documents addressed by id.
package docstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("docstore: document not found")

// Document is one stored document. Field values are loosely typed: numbers
// may be integers, floats or strings and timestamps are time.Time.
type Document struct {
	ID     string
	Fields map[string]any
}

type Store interface {
	// Get returns ErrNotFound when the document does not exist.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Set overwrites the whole document.
	Set(ctx context.Context, collection, id string, fields map[string]any) error

	List(ctx context.Context, collection string) ([]Document, error)
}
