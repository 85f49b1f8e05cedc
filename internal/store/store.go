package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get (and Tx.Get) when no document exists under
// the given id.
var ErrNotFound = errors.New("document not found")

type serverTimestamp struct{}

// ServerTimestamp is a sentinel field value replaced with the store's own
// current time when the write is applied, so creation order is consistent
// across clients with skewed clocks.
var ServerTimestamp = serverTimestamp{}

type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Tx is the isolated read/write handle passed to a transaction function.
// All writes issued through it commit together or not at all.
type Tx interface {
	Get(collection, id string) (map[string]interface{}, error)
	Update(collection, id string, fields map[string]interface{}) error
}

// Store is the document-database capability surface the services run on.
// Update merges only the supplied fields; Delete of a missing document is a
// no-op. RunTransaction retries fn on write conflict; any error returned by
// fn aborts the transaction with no writes applied.
type Store interface {
	Get(ctx context.Context, collection, id string) (map[string]interface{}, error)
	Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection, orderBy string, desc bool, limit int) ([]Document, error)
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error
}
