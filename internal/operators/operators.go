// Package operators holds the catalog of metric-producing operators and
// resolves dotted metric identifiers into descriptors.
package operators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/huangsam/wily/schema"
)

// Metric describes one measurement an operator produces.
type Metric struct {
	Key       string
	Title     string
	ValueType schema.ValueType
	Direction schema.Direction
}

// Operator is a named family of metrics.
type Operator struct {
	Name    string
	Metrics []Metric
}

// Descriptor is a fully resolved metric identifier.
type Descriptor struct {
	Operator string
	Metric
}

// UnknownMetricError reports a metric identifier that does not resolve
// against the catalog.
type UnknownMetricError struct {
	MetricID string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q: run the metrics command for the catalog", e.MetricID)
}

var catalog = map[string]Operator{
	"raw": {
		Name: "raw",
		Metrics: []Metric{
			{Key: "loc", Title: "Lines of Code", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "lloc", Title: "L Lines of Code", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "sloc", Title: "S Lines of Code", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "comments", Title: "Multi-line comments", ValueType: schema.NumericValue, Direction: schema.Informational},
			{Key: "multi", Title: "Multi lines", ValueType: schema.NumericValue, Direction: schema.Informational},
			{Key: "blank", Title: "Blank lines", ValueType: schema.NumericValue, Direction: schema.Informational},
			{Key: "single_comments", Title: "Single comment lines", ValueType: schema.NumericValue, Direction: schema.Informational},
		},
	},
	"cyclomatic": {
		Name: "cyclomatic",
		Metrics: []Metric{
			{Key: "complexity", Title: "Cyclomatic Complexity", ValueType: schema.NumericValue, Direction: schema.AimLow},
		},
	},
	"maintainability": {
		Name: "maintainability",
		Metrics: []Metric{
			{Key: "mi", Title: "Maintainability Index", ValueType: schema.NumericValue, Direction: schema.AimHigh},
			{Key: "rank", Title: "Maintainability Ranking", ValueType: schema.CategoricalValue, Direction: schema.Informational},
		},
	},
	"halstead": {
		Name: "halstead",
		Metrics: []Metric{
			{Key: "vocabulary", Title: "Unique vocabulary", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "length", Title: "Length of application", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "volume", Title: "Code volume", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "difficulty", Title: "Difficulty", ValueType: schema.NumericValue, Direction: schema.AimLow},
			{Key: "effort", Title: "Effort", ValueType: schema.NumericValue, Direction: schema.AimLow},
		},
	},
}

// Resolve turns an "operator.key" identifier into a descriptor.
func Resolve(metricID string) (Descriptor, error) {
	opName, key, ok := strings.Cut(metricID, ".")
	if !ok {
		return Descriptor{}, &UnknownMetricError{MetricID: metricID}
	}
	op, ok := catalog[opName]
	if !ok {
		return Descriptor{}, &UnknownMetricError{MetricID: metricID}
	}
	for _, m := range op.Metrics {
		if m.Key == key {
			return Descriptor{Operator: op.Name, Metric: m}, nil
		}
	}
	return Descriptor{}, &UnknownMetricError{MetricID: metricID}
}

// All returns the catalog sorted by operator name, for listings.
func All() []Operator {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	ops := make([]Operator, 0, len(names))
	for _, name := range names {
		ops = append(ops, catalog[name])
	}
	return ops
}
