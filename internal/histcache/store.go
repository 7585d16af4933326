// Package histcache implements the revision history cache on top of
// pluggable SQL backends. The cache is populated by external collectors;
// wily reads it to assemble reports.
package histcache

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/wily/schema"

	// Database drivers for all supported backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// ErrValueNotFound marks a metric value absent from the cache.
var ErrValueNotFound = errors.New("metric value not found in cache")

// Store is a RevisionStore backed by sqlite, mysql or postgresql.
// The none backend yields an empty store that ignores writes.
type Store struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

// NewStore opens a cache store for the given backend and connection string.
// For sqlite the connection string is a file path; for mysql it must carry
// parseTime=true so timestamps scan into time.Time.
func NewStore(backend schema.DatabaseBackend, connect string) (*Store, error) {
	if backend == schema.NoneBackend {
		return &Store{backend: backend}, nil
	}

	driver := driverName(backend)
	if driver == "" {
		return nil, fmt.Errorf("unsupported cache backend %q", backend)
	}
	db, err := sql.Open(driver, connect)
	if err != nil {
		return nil, fmt.Errorf("opening %s cache: %w", backend, err)
	}

	s := &Store{db: db, backend: backend}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func driverName(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite"
	case schema.MySQLBackend:
		return "mysql"
	case schema.PostgreSQLBackend:
		return "pgx"
	default:
		return ""
	}
}

// ensureSchema creates the cache tables when they are missing. The managed
// migration path (cache migrate) does the same through golang-migrate; this
// inline bootstrap keeps ad-hoc sqlite files usable without it.
func (s *Store) ensureSchema() error {
	for _, stmt := range ddlStatements(s.backend) {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating cache schema: %w", err)
		}
	}
	return nil
}

func ddlStatements(backend schema.DatabaseBackend) []string {
	// mysql needs sized key columns for the composite primary keys.
	text := "TEXT"
	keyText := "TEXT"
	if backend == schema.MySQLBackend {
		keyText = "VARCHAR(255)"
	}
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS wily_revisions (
			archiver %[1]s NOT NULL,
			revision %[1]s NOT NULL,
			author %[2]s NOT NULL,
			message %[2]s NOT NULL,
			committed_at TIMESTAMP NOT NULL,
			PRIMARY KEY (archiver, revision)
		)`, keyText, text),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS wily_values (
			archiver %[1]s NOT NULL,
			revision %[1]s NOT NULL,
			operator_name %[1]s NOT NULL,
			path_name %[1]s NOT NULL,
			metric_key %[1]s NOT NULL,
			value_num DOUBLE PRECISION NOT NULL,
			value_text %[2]s NOT NULL,
			PRIMARY KEY (archiver, revision, operator_name, path_name, metric_key)
		)`, keyText, text),
	}
}

// rebind rewrites ? placeholders into the $N form postgresql expects.
func (s *Store) rebind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Archivers lists distinct archivers, sorted by name.
func (s *Store) Archivers() ([]string, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT DISTINCT archiver FROM wily_revisions ORDER BY archiver`)
	if err != nil {
		return nil, fmt.Errorf("querying archivers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var archivers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning archiver: %w", err)
		}
		archivers = append(archivers, name)
	}
	return archivers, rows.Err()
}

// Revisions returns an archiver's revisions, newest first. Ties on the
// timestamp fall back to the revision key so ordering stays stable.
func (s *Store) Revisions(archiver string) ([]schema.Revision, error) {
	if s.db == nil {
		return nil, nil
	}
	query := s.rebind(`SELECT revision, author, message, committed_at
		FROM wily_revisions WHERE archiver = ?
		ORDER BY committed_at DESC, revision DESC`)
	rows, err := s.db.Query(query, archiver)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var revisions []schema.Revision
	for rows.Next() {
		var rev schema.Revision
		if err := rows.Scan(&rev.Key, &rev.Author, &rev.Message, &rev.Date); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	return revisions, rows.Err()
}

// Value fetches one metric value, or ErrValueNotFound.
func (s *Store) Value(archiver, revision, operator, path, key string) (schema.MetricValue, error) {
	if s.db == nil {
		return schema.MetricValue{}, ErrValueNotFound
	}
	query := s.rebind(`SELECT value_num, value_text FROM wily_values
		WHERE archiver = ? AND revision = ? AND operator_name = ? AND path_name = ? AND metric_key = ?`)

	var value schema.MetricValue
	err := s.db.QueryRow(query, archiver, revision, operator, path, key).Scan(&value.Number, &value.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.MetricValue{}, ErrValueNotFound
	}
	if err != nil {
		return schema.MetricValue{}, fmt.Errorf("querying value: %w", err)
	}
	return value, nil
}

// PutRevision upserts one revision.
func (s *Store) PutRevision(archiver string, rev schema.Revision) error {
	if s.db == nil {
		return nil
	}
	var query string
	if s.backend == schema.MySQLBackend {
		query = `INSERT INTO wily_revisions (archiver, revision, author, message, committed_at)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE author = VALUES(author), message = VALUES(message), committed_at = VALUES(committed_at)`
	} else {
		query = s.rebind(`INSERT INTO wily_revisions (archiver, revision, author, message, committed_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (archiver, revision) DO UPDATE SET
				author = excluded.author, message = excluded.message, committed_at = excluded.committed_at`)
	}
	if _, err := s.db.Exec(query, archiver, rev.Key, rev.Author, rev.Message, rev.Date); err != nil {
		return fmt.Errorf("storing revision: %w", err)
	}
	return nil
}

// PutValue upserts one metric value.
func (s *Store) PutValue(archiver, revision, operator, path, key string, value schema.MetricValue) error {
	if s.db == nil {
		return nil
	}
	var query string
	if s.backend == schema.MySQLBackend {
		query = `INSERT INTO wily_values (archiver, revision, operator_name, path_name, metric_key, value_num, value_text)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE value_num = VALUES(value_num), value_text = VALUES(value_text)`
	} else {
		query = s.rebind(`INSERT INTO wily_values (archiver, revision, operator_name, path_name, metric_key, value_num, value_text)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (archiver, revision, operator_name, path_name, metric_key) DO UPDATE SET
				value_num = excluded.value_num, value_text = excluded.value_text`)
	}
	if _, err := s.db.Exec(query, archiver, revision, operator, path, key, value.Number, value.Text); err != nil {
		return fmt.Errorf("storing value: %w", err)
	}
	return nil
}

// GetStatus summarizes cache contents.
func (s *Store) GetStatus() (schema.CacheStatus, error) {
	status := schema.CacheStatus{Backend: s.backend}
	if s.db == nil {
		return status, nil
	}

	row := s.db.QueryRow(`SELECT COUNT(DISTINCT archiver), COUNT(*) FROM wily_revisions`)
	if err := row.Scan(&status.Archivers, &status.Revisions); err != nil {
		return status, fmt.Errorf("counting revisions: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM wily_values`).Scan(&status.Values); err != nil {
		return status, fmt.Errorf("counting values: %w", err)
	}

	// A plain column select keeps the declared type, so the timestamp scans
	// cleanly on every backend.
	var newest time.Time
	err := s.db.QueryRow(`SELECT committed_at FROM wily_revisions ORDER BY committed_at DESC LIMIT 1`).Scan(&newest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return status, fmt.Errorf("finding newest entry: %w", err)
	}
	if err == nil {
		status.Newest = newest
	}
	return status, nil
}

// GetAllRevisions dumps every revision row, for export.
func (s *Store) GetAllRevisions() ([]schema.RevisionRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT archiver, revision, author, message, committed_at
		FROM wily_revisions ORDER BY archiver, committed_at`)
	if err != nil {
		return nil, fmt.Errorf("querying all revisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RevisionRecord
	for rows.Next() {
		var r schema.RevisionRecord
		if err := rows.Scan(&r.Archiver, &r.Key, &r.Author, &r.Message, &r.Date); err != nil {
			return nil, fmt.Errorf("scanning revision record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAllValues dumps every metric value row, for export.
func (s *Store) GetAllValues() ([]schema.ValueRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT archiver, revision, operator_name, path_name, metric_key, value_num, value_text
		FROM wily_values ORDER BY archiver, revision, operator_name, path_name, metric_key`)
	if err != nil {
		return nil, fmt.Errorf("querying all values: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.ValueRecord
	for rows.Next() {
		var r schema.ValueRecord
		if err := rows.Scan(&r.Archiver, &r.Revision, &r.Operator, &r.Path, &r.Key, &r.Number, &r.Text); err != nil {
			return nil, fmt.Errorf("scanning value record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
