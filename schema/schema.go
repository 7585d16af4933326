// Package schema has configs, models and global variables
// that are shared across all layers of the application.
package schema

import "time"

// Revision is a single point in an archiver's history.
type Revision struct {
	Key     string    // full revision identifier
	Author  string    // author display name
	Message string    // summary line of the revision
	Date    time.Time // commit timestamp
}

// MetricValue is one measurement pulled from the history cache.
// Numeric metrics carry Number; categorical metrics carry Text.
type MetricValue struct {
	Number float64
	Text   string
}

// LookupResult is the outcome of a metric value lookup. Gaps in the cache
// surface as Found=false with a human-readable Detail, never as errors, so
// one missing value cannot abort a whole report.
type LookupResult struct {
	Found  bool
	Value  MetricValue
	Detail string
}

// ReportTable is the assembled report handed to a renderer.
type ReportTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// CacheStatus summarizes the history cache contents.
type CacheStatus struct {
	Backend   DatabaseBackend
	Archivers int
	Revisions int64
	Values    int64
	Newest    time.Time
}
