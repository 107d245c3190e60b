package domain

import "context"

// DocumentStore is a keyed store of JSON documents. It holds registrants,
// carts, orders, conversations and seller listings.
type DocumentStore interface {
	// Get decodes the document at key into dst. It reports false when the
	// key does not exist.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
