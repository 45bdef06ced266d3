package metadata

import (
	"context"
)

// Repository is a small key/value store for client state that must survive
// restarts, such as the bearer token and the cached profile.
type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
