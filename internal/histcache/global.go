package histcache

import (
	"sync"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/schema"
)

// Package-level store shared by the CLI commands. Commands run one at a
// time, so a single lazily-opened handle is enough.
var (
	globalStore contract.RevisionStore
	initOnce    sync.Once
	initErr     error
)

// InitStore opens the global cache store once. Later calls return the
// outcome of the first one.
func InitStore(backend schema.DatabaseBackend, connect string) error {
	initOnce.Do(func() {
		store, err := NewStore(backend, connect)
		if err != nil {
			initErr = err
			return
		}
		// Publish only on success: a nil *Store boxed into the interface
		// would defeat the nil checks in GetStore and CloseStore.
		globalStore = store
	})
	return initErr
}

// GetStore returns the global store. InitStore must have succeeded first;
// callers get an inert empty store otherwise.
func GetStore() contract.RevisionStore {
	if globalStore == nil {
		return &Store{backend: schema.NoneBackend}
	}
	return globalStore
}

// CloseStore releases the global store. Safe to call when InitStore never
// ran or failed.
func CloseStore() {
	if globalStore != nil {
		_ = globalStore.Close()
		globalStore = nil
	}
}
