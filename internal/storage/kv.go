package storage

import "errors"

// ErrKeyNotFound is returned by KV.Get when the key does not exist.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV defines the durable key-value operations the document store needs.
// This allows us to swap storage implementations (e.g., BadgerDB, in-memory)
// without changing the code that persists resumes.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close gracefully shuts down the underlying store.
	Close() error
}
