package histcache

import (
	"fmt"
	"sort"

	"github.com/huangsam/wily/schema"
)

// MockStore is an in-memory RevisionStore for tests.
type MockStore struct {
	revisions map[string][]schema.Revision // archiver → revisions as inserted
	values    map[string]schema.ValueRecord
	closed    bool

	// Err, when set, is returned by every read so callers can exercise
	// failure paths.
	Err error
}

// NewMockStore returns an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		revisions: make(map[string][]schema.Revision),
		values:    make(map[string]schema.ValueRecord),
	}
}

func valueKey(archiver, revision, operator, path, key string) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", archiver, revision, operator, path, key)
}

// Archivers lists archivers sorted by name.
func (m *MockStore) Archivers() ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.revisions))
	for name := range m.revisions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Revisions returns an archiver's revisions, newest first.
func (m *MockStore) Revisions(archiver string) ([]schema.Revision, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	revisions := append([]schema.Revision(nil), m.revisions[archiver]...)
	sort.SliceStable(revisions, func(i, j int) bool {
		return revisions[i].Date.After(revisions[j].Date)
	})
	return revisions, nil
}

// Value fetches a stored value or ErrValueNotFound.
func (m *MockStore) Value(archiver, revision, operator, path, key string) (schema.MetricValue, error) {
	if m.Err != nil {
		return schema.MetricValue{}, m.Err
	}
	record, ok := m.values[valueKey(archiver, revision, operator, path, key)]
	if !ok {
		return schema.MetricValue{}, ErrValueNotFound
	}
	return schema.MetricValue{Number: record.Number, Text: record.Text}, nil
}

// PutRevision records a revision.
func (m *MockStore) PutRevision(archiver string, rev schema.Revision) error {
	m.revisions[archiver] = append(m.revisions[archiver], rev)
	return nil
}

// PutValue records a metric value.
func (m *MockStore) PutValue(archiver, revision, operator, path, key string, value schema.MetricValue) error {
	m.values[valueKey(archiver, revision, operator, path, key)] = schema.ValueRecord{
		Archiver: archiver,
		Revision: revision,
		Operator: operator,
		Path:     path,
		Key:      key,
		Number:   value.Number,
		Text:     value.Text,
	}
	return nil
}

// GetStatus summarizes the in-memory contents.
func (m *MockStore) GetStatus() (schema.CacheStatus, error) {
	status := schema.CacheStatus{
		Backend:   schema.NoneBackend,
		Archivers: len(m.revisions),
		Values:    int64(len(m.values)),
	}
	for _, revs := range m.revisions {
		status.Revisions += int64(len(revs))
		for _, rev := range revs {
			if rev.Date.After(status.Newest) {
				status.Newest = rev.Date
			}
		}
	}
	return status, nil
}

// GetAllRevisions dumps every revision grouped by archiver.
func (m *MockStore) GetAllRevisions() ([]schema.RevisionRecord, error) {
	archivers, _ := m.Archivers()
	var records []schema.RevisionRecord
	for _, archiver := range archivers {
		for _, rev := range m.revisions[archiver] {
			records = append(records, schema.RevisionRecord{
				Archiver: archiver, Key: rev.Key, Author: rev.Author, Message: rev.Message, Date: rev.Date,
			})
		}
	}
	return records, nil
}

// GetAllValues dumps every value in key order.
func (m *MockStore) GetAllValues() ([]schema.ValueRecord, error) {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]schema.ValueRecord, 0, len(keys))
	for _, k := range keys {
		records = append(records, m.values[k])
	}
	return records, nil
}

// Close marks the store closed.
func (m *MockStore) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockStore) Closed() bool {
	return m.closed
}
