// Package store persists opaque session payloads, one blob per game
// variant, keyed by a fixed storage key.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no session exists under the key.
var ErrNotFound = errors.New("store: session not found")

// Store is the persistence boundary of the score engine. Implementations
// must make Save atomic: a concurrent Load never observes a partially
// written payload.
type Store interface {
	// Load returns the payload stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the payload stored under key.
	Save(ctx context.Context, key string, payload []byte) error

	Close() error
}
