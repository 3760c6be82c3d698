package domain

import "context"

// Store is the port for key/value persistence. It is the durability
// boundary: callers treat failures as degraded service, falling back to
// defaults instead of crashing.
type Store interface {
	// Get returns the value for key. The second result is false when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
