// Package parquet provides record types and writers for exporting the
// history cache to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/wily/schema"
	"github.com/parquet-go/parquet-go"
)

// Revision maps one row of the wily_revisions table.
type Revision struct {
	// Archiver is the history source the revision belongs to
	Archiver string `parquet:"archiver,snappy"`

	// Key is the full revision identifier
	Key string `parquet:"revision,snappy"`

	// Author is the author display name
	Author string `parquet:"author,snappy"`

	// Message is the revision summary line
	Message string `parquet:"message,snappy"`

	// Date is the commit timestamp (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"committed_at,snappy"`
}

// Value maps one row of the wily_values table.
type Value struct {
	// Archiver is the history source the value belongs to
	Archiver string `parquet:"archiver,snappy"`

	// Revision is the full revision identifier
	Revision string `parquet:"revision,snappy"`

	// Operator is the metric-producing operator name
	Operator string `parquet:"operator_name,snappy"`

	// Path is the file or module path measured
	Path string `parquet:"path_name,snappy"`

	// Key is the metric key within the operator
	Key string `parquet:"metric_key,snappy"`

	// Number carries numeric measurements
	Number float64 `parquet:"value_num,snappy"`

	// Text carries categorical measurements
	Text string `parquet:"value_text,snappy"`
}

// WriteRevisionsParquet writes revision records to a Parquet file.
func WriteRevisionsParquet(data []Revision, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the struct tags.
	writer := parquet.NewGenericWriter[Revision](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteValuesParquet writes metric value records to a Parquet file.
func WriteValuesParquet(data []Value, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[Value](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertRevisionRecords converts store records to their Parquet shape.
func ConvertRevisionRecords(records []schema.RevisionRecord) []Revision {
	result := make([]Revision, len(records))
	for i, record := range records {
		result[i] = Revision{
			Archiver: record.Archiver,
			Key:      record.Key,
			Author:   record.Author,
			Message:  record.Message,
			Date:     record.Date,
		}
	}
	return result
}

// ConvertValueRecords converts store records to their Parquet shape.
func ConvertValueRecords(records []schema.ValueRecord) []Value {
	result := make([]Value, len(records))
	for i, record := range records {
		result[i] = Value{
			Archiver: record.Archiver,
			Revision: record.Revision,
			Operator: record.Operator,
			Path:     record.Path,
			Key:      record.Key,
			Number:   record.Number,
			Text:     record.Text,
		}
	}
	return result
}
