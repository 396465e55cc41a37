// Package recordstore is the durable string-keyed store every repository
// persists through. A record is an opaque string value (JSON for composite
// values) addressed by a short key such as "cart" or "orders".
//
// Five drivers are available:
//   - "memory": process-local map, used by tests
//   - "local":  one file per key under a root directory (default)
//   - "redis":  Redis strings under a key prefix
//   - "s3":     S3-compatible objects under a key prefix
//   - "sql":    a single records table through GORM
//
// Quick start:
//
//	store, err := recordstore.Open()
//	if err != nil { ... }
//	defer store.Close()
//
//	_ = store.Put("current_user", "jane@example.com")
//	email, ok, err := store.Get("current_user")
package recordstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Store is the record store contract. Writes are atomic per key.
type Store interface {
	// Get returns the value stored under key. ok is false when no record
	// exists; that is not an error.
	Get(key string) (value string, ok bool, err error)

	// Put overwrites the record stored under key.
	Put(key, value string) error

	// Delete removes the record. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases driver resources.
	Close() error
}

// ErrUnknownDriver is returned by Open for an unsupported STORE_DRIVER.
var ErrUnknownDriver = errors.New("recordstore: unknown driver")

// ErrInvalidKey is returned when a key cannot be mapped to a record.
var ErrInvalidKey = errors.New("recordstore: invalid key")

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Base(key) || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
