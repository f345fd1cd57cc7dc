// Package storage persists raw remote API responses across restarts. It is
// an optional write-through layer behind the in-memory memoization; callers
// must treat a miss as a normal outcome and fall back to the network.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found in storage")

// Storage stores response bodies keyed by a canonical request key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
	Close() error
}
