package schema

// Custom string types for type safety.
type (
	// ValueType is the kind of value a metric produces.
	ValueType string

	// Direction is a metric's improvement direction.
	Direction string

	// ReportFormat is the rendering backend for a report.
	ReportFormat string

	// DatabaseBackend is the database backend for the history cache.
	DatabaseBackend string
)

// All metric value types supported.
const (
	NumericValue     ValueType = "numeric"
	CategoricalValue ValueType = "categorical"
)

// All metric improvement directions supported.
const (
	AimHigh       Direction = "aim_high"
	AimLow        Direction = "aim_low"
	Informational Direction = "informational"
)

// All report formats supported.
const (
	ConsoleFormat ReportFormat = "console" // default
	HTMLFormat    ReportFormat = "html"
)

// All history cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Report defaults and bounds.
const (
	// DefaultRevisionCount is the number of most recent revisions shown per
	// archiver when --number is not given.
	DefaultRevisionCount = 10

	// MaxRevisionCount bounds --number to keep reports readable.
	MaxRevisionCount = 1000

	// MaxMessageWidth caps the optional Message column.
	MaxMessageWidth = 50

	// RevisionDisplayLength is the number of leading revision key characters
	// shown in report rows.
	RevisionDisplayLength = 7
)

// DefaultMetrics is the metric set reported when --metrics is not given.
var DefaultMetrics = []string{"raw.loc", "raw.sloc", "cyclomatic.complexity", "maintainability.mi"}

// ValidReportFormats lists all valid report formats.
var ValidReportFormats = map[ReportFormat]bool{
	ConsoleFormat: true,
	HTMLFormat:    true,
}

// ValidDatabaseBackends lists all valid history cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]bool{
	SQLiteBackend:     true,
	MySQLBackend:      true,
	PostgreSQLBackend: true,
	NoneBackend:       true,
}
