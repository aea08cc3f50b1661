// Package storage keeps the raw journal text in a single-key value store.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/faizmokh/lifelog/internal/config"
	"github.com/faizmokh/lifelog/internal/files"
)

// ErrUnknownBackend is returned by Open for unsupported backend names.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is a minimal persistent key-value store.
type Backend interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open constructs the backend selected by name.
func Open(name string, manager *files.Manager) (Backend, error) {
	switch name {
	case config.BackendFile, "":
		return NewFileBackend(manager), nil
	case config.BackendSQLite:
		return OpenSQLite(manager)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
