package cache

import (
	"context"

	"github.com/pkg/errors"
)

// ErrMiss reports an absent key.
var ErrMiss = errors.New("cache miss")

// Cache is the key-value contract over the remote cache store.
// Implementations return ErrMiss for absent keys and degrade gracefully on
// store failures so callers can fall back to the primary datastore.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Cache keys are derived here so they do not spread over the code.

func ListDataKey(resource string) string {
	return resource + ":data"
}

func ListExpiryKey(resource string) string {
	return resource + ":expiry"
}
