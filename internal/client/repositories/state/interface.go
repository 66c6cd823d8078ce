// Package state provides the key-value stores backing client-side
// persistence: a sqlite-backed durable store and an in-memory transient
// store with the same surface.
package state

import "context"

// Store is an opaque key-value store. Get returns (nil, nil) for a missing
// key so callers can distinguish absence from failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
