// Package report assembles the historical metric comparison table: one row
// per revision per archiver, one column per requested metric, with deltas
// against the previous revision.
package report

import (
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/operators"
	"github.com/huangsam/wily/schema"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// metricMeta is a resolved metric plus its delta color pair.
type metricMeta struct {
	operator  string
	key       string
	title     string
	valueType schema.ValueType
	good      *color.Color
	bad       *color.Color
}

// deltaColors picks the color pair for a metric direction. Decreases always
// take the good color, even for aim-high metrics; the mapping is kept
// byte-for-byte compatible with historical output.
func deltaColors(direction schema.Direction) (good, bad *color.Color) {
	switch direction {
	case schema.AimHigh:
		return green, red
	case schema.AimLow:
		return red, green
	default:
		return yellow, yellow
	}
}

// Generate builds the report table for the configured path and metrics.
// Metric identifiers resolve before any history is touched, so an unknown
// metric fails fast. The colorize switch controls ANSI decoration of deltas;
// HTML rendering passes false.
func Generate(cfg *contract.Config, store contract.HistoryStore, logger contract.Logger, colorize bool) (*schema.ReportTable, error) {
	logger.Debugf("generating report for %s", cfg.Path)
	logger.Infof("-----------History for %s------------", strings.Join(cfg.Metrics, ", "))

	metas := make([]metricMeta, 0, len(cfg.Metrics))
	for _, metricID := range cfg.Metrics {
		desc, err := operators.Resolve(metricID)
		if err != nil {
			return nil, err
		}
		good, bad := deltaColors(desc.Direction)
		metas = append(metas, metricMeta{
			operator:  desc.Operator,
			key:       desc.Key,
			title:     desc.Title,
			valueType: desc.ValueType,
			good:      good,
			bad:       bad,
		})
	}

	archivers, err := store.Archivers()
	if err != nil {
		return nil, err
	}

	msgWidth := messageWidth(cfg)
	var rows [][]string
	for _, archiver := range archivers {
		revisions, err := store.Revisions(archiver)
		if err != nil {
			return nil, err
		}
		if len(revisions) > cfg.Revisions {
			revisions = revisions[:cfg.Revisions]
		}

		// Baselines reset per archiver so histories never bleed into
		// each other.
		lastValue := make(map[string]float64)

		// Deltas need oldest-to-newest traversal; the store hands the
		// window out newest first.
		for i := len(revisions) - 1; i >= 0; i-- {
			rev := revisions[i]
			cells := make([]string, 0, len(metas))
			for _, meta := range metas {
				logger.Debugf("fetching %s.%s for revision %s", meta.operator, meta.key, rev.Key)
				result := store.Lookup(archiver, rev.Key, meta.operator, cfg.Path, meta.key)
				cells = append(cells, renderCell(meta, result, lastValue, colorize))
			}

			row := []string{schema.FormatRevision(rev.Key)}
			if cfg.IncludeMessage {
				row = append(row, schema.TruncateMessage(rev.Message, msgWidth))
			}
			row = append(row, rev.Author, schema.FormatDate(rev.Date))
			rows = append(rows, append(row, cells...))
		}
	}

	// Rows accumulated oldest first; readers expect the newest revision on
	// top, so the whole list flips once at the end.
	reverseRows(rows)

	headers := []string{"Revision"}
	if cfg.IncludeMessage {
		headers = append(headers, "Message")
	}
	headers = append(headers, "Author", "Date")
	for _, meta := range metas {
		headers = append(headers, meta.title)
	}

	return &schema.ReportTable{Headers: headers, Rows: rows}, nil
}

// renderCell formats one metric cell and maintains the delta baseline.
func renderCell(meta metricMeta, result schema.LookupResult, lastValue map[string]float64, colorize bool) string {
	if !result.Found {
		// A gap leaves the baseline untouched.
		return "Not found " + result.Detail
	}

	if meta.valueType != schema.NumericValue {
		// Categorical metrics carry no delta and no decoration.
		return result.Value.Text
	}

	value := result.Value.Number
	var delta float64
	// A stored baseline of exactly zero counts as "no baseline yet" and
	// yields a zero delta. Long-standing behavior; cached histories out in
	// the wild depend on it rendering this way.
	if prior, ok := lastValue[meta.key]; ok && prior != 0 {
		delta = value - prior
	}
	lastValue[meta.key] = value

	return schema.FormatNumber(value) + " (" + formatDelta(delta, meta, colorize) + ")"
}

// formatDelta renders a delta with sign and, when colorize is on, the
// direction-derived color.
func formatDelta(delta float64, meta metricMeta, colorize bool) string {
	switch {
	case delta == 0:
		return "0"
	case delta < 0:
		text := schema.FormatNumber(delta)
		if colorize {
			return meta.good.Sprint(text)
		}
		return text
	default:
		text := "+" + schema.FormatNumber(delta)
		if colorize {
			return meta.bad.Sprint(text)
		}
		return text
	}
}

func reverseRows(rows [][]string) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
