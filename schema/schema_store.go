package schema

import "time"

// RevisionRecord is a flattened row of the wily_revisions table,
// used by the cache export path.
type RevisionRecord struct {
	Archiver string
	Key      string
	Author   string
	Message  string
	Date     time.Time
}

// ValueRecord is a flattened row of the wily_values table,
// used by the cache export path.
type ValueRecord struct {
	Archiver string
	Revision string
	Operator string
	Path     string
	Key      string
	Number   float64
	Text     string
}
