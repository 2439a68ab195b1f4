// Package kvstore provides the string key-value stores that hold drafts and saved resumes.
package kvstore

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been set or was removed.
var ErrNotFound = errors.New("key not found")

// Store is an opaque string-keyed durable store. Implementations must be safe
// for use from multiple goroutines.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// BackendError wraps a failure reported by the underlying storage backend.
type BackendError struct {
	Backend string
	Op      string
	Key     string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s backend: %s %q: %v", e.Backend, e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s backend: %s: %v", e.Backend, e.Op, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

func wrap(backend, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Backend: backend, Op: op, Key: key, Cause: err}
}
