// Package state adapts the history cache store into the read-only view
// consumed by the report pipeline.
package state

import (
	"fmt"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/schema"
)

// State exposes archiver histories out of a revision store.
type State struct {
	store contract.RevisionStore
}

// New wraps a revision store.
func New(store contract.RevisionStore) *State {
	return &State{store: store}
}

// Archivers lists the archivers present in the cache.
func (s *State) Archivers() ([]string, error) {
	archivers, err := s.store.Archivers()
	if err != nil {
		return nil, fmt.Errorf("listing archivers: %w", err)
	}
	return archivers, nil
}

// Revisions returns an archiver's history, newest first.
func (s *State) Revisions(archiver string) ([]schema.Revision, error) {
	revisions, err := s.store.Revisions(archiver)
	if err != nil {
		return nil, fmt.Errorf("loading %s revisions: %w", archiver, err)
	}
	return revisions, nil
}

// Lookup fetches one metric value. Store misses and store errors both come
// back as a not-found result so a single gap never aborts report assembly.
func (s *State) Lookup(archiver, revision, operator, path, key string) schema.LookupResult {
	value, err := s.store.Value(archiver, revision, operator, path, key)
	if err != nil {
		return schema.LookupResult{Detail: fmt.Sprintf("'%s.%s'", operator, key)}
	}
	return schema.LookupResult{Found: true, Value: value}
}
