// Package remote syncs the document to a single record in a remote
// key/value document store.
package remote

import (
	"context"
	"errors"
)

// DefaultID is the record the document is stored under.
const DefaultID = "default"

var ErrNotFound = errors.New("remote: record not found")

// Backend reads and upserts one record by id.
type Backend interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, state []byte) error
}
