// Package contract provides interfaces and shared configuration
// that decouple the CLI, the report pipeline and the history cache.
package contract

import (
	"io/fs"

	"github.com/huangsam/wily/schema"
)

// HistoryStore is what the report pipeline needs from the revision
// history cache.
type HistoryStore interface {
	// Archivers lists the archivers present in the cache.
	Archivers() ([]string, error)

	// Revisions returns an archiver's revisions, newest first.
	Revisions(archiver string) ([]schema.Revision, error)

	// Lookup fetches one metric value for a revision. Missing values are
	// reported through the result, not through an error.
	Lookup(archiver, revision, operator, path, key string) schema.LookupResult
}

// RevisionStore is the persistence contract implemented by the cache
// backends. The report only reads; the write path exists for the external
// producers that populate the cache, and for tests.
type RevisionStore interface {
	Archivers() ([]string, error)
	Revisions(archiver string) ([]schema.Revision, error)
	Value(archiver, revision, operator, path, key string) (schema.MetricValue, error)
	PutRevision(archiver string, rev schema.Revision) error
	PutValue(archiver, revision, operator, path, key string, value schema.MetricValue) error
	GetStatus() (schema.CacheStatus, error)
	GetAllRevisions() ([]schema.RevisionRecord, error)
	GetAllValues() ([]schema.ValueRecord, error)
	Close() error
}

// AssetProvider serves the report template and stylesheet bundle used by
// the HTML renderer.
type AssetProvider interface {
	// ReportTemplate returns the HTML page template text.
	ReportTemplate() (string, error)

	// CSS returns the stylesheet bundle copied next to the report.
	CSS() (fs.FS, error)
}

// Logger is the leveled logger injected into the report pipeline.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}
