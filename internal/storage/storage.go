// Package storage provides the durable key-value slot the task list is
// persisted in, with file, SQLite and in-memory backends.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by KV.Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// DBFileName is the SQLite database file created inside the data directory.
const DBFileName = "todo.db"

// KV is an opaque get/set store of byte values.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open opens the named backend rooted at dataDir.
func Open(backend, dataDir string) (KV, error) {
	switch backend {
	case BackendFile, "":
		return NewFileKV(dataDir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, DBFileName))
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// validateKey rejects keys that could escape a directory or collide with
// temp files.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." || strings.HasSuffix(key, ".tmp") {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
