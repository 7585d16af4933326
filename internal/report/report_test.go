package report

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/histcache"
	"github.com/huangsam/wily/internal/operators"
	"github.com/huangsam/wily/internal/state"
	"github.com/huangsam/wily/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "src/app.py"

var baseDate = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// seededStore returns a mock-backed history with one git revision per loc
// value (rev1 oldest .. revN newest).
func seededStore(t *testing.T, locValues ...float64) *state.State {
	t.Helper()
	store := histcache.NewMockStore()
	for i, value := range locValues {
		rev := revKey(i + 1)
		require.NoError(t, store.PutRevision("git", schema.Revision{
			Key:     rev,
			Author:  "alice",
			Message: "commit number " + rev,
			Date:    baseDate.Add(time.Duration(i) * time.Hour),
		}))
		require.NoError(t, store.PutValue("git", rev, "raw", testPath, "loc", schema.MetricValue{Number: value}))
	}
	return state.New(store)
}

func revKey(i int) string {
	return string(rune('a'+i-1)) + "0000000000"
}

func baseConfig(metrics ...string) *contract.Config {
	return &contract.Config{
		Path:      testPath,
		Metrics:   metrics,
		Revisions: schema.DefaultRevisionCount,
		Width:     400,
	}
}

func locCell(t *testing.T, table *schema.ReportTable, row int) string {
	t.Helper()
	require.Greater(t, len(table.Rows), row)
	return table.Rows[row][len(table.Rows[row])-1]
}

func TestGenerateDeltasAndOrdering(t *testing.T) {
	st := seededStore(t, 100, 120, 110)
	table, err := Generate(baseConfig("raw.loc"), st, &contract.NopLogger{}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Revision", "Author", "Date", "Lines of Code"}, table.Headers)
	require.Len(t, table.Rows, 3)

	// Newest revision first in display order.
	assert.Equal(t, "c000000", table.Rows[0][0])
	assert.Equal(t, "b000000", table.Rows[1][0])
	assert.Equal(t, "a000000", table.Rows[2][0])

	// Deltas computed chronologically: 100 (no prior), 120 (+20), 110 (-10).
	assert.Equal(t, "110 (-10)", locCell(t, table, 0))
	assert.Equal(t, "120 (+20)", locCell(t, table, 1))
	assert.Equal(t, "100 (0)", locCell(t, table, 2))
}

func TestGenerateMissingValueLeavesBaseline(t *testing.T) {
	// Three revisions, but the middle one has no cached loc value.
	store := histcache.NewMockStore()
	for i := 1; i <= 3; i++ {
		require.NoError(t, store.PutRevision("git", schema.Revision{
			Key: revKey(i), Author: "alice", Date: baseDate.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, store.PutValue("git", revKey(1), "raw", testPath, "loc", schema.MetricValue{Number: 100}))
	require.NoError(t, store.PutValue("git", revKey(3), "raw", testPath, "loc", schema.MetricValue{Number: 130}))

	table, err := Generate(baseConfig("raw.loc"), state.New(store), &contract.NopLogger{}, false)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	// Newest first: rev3 compares against rev1 because rev2 had no value.
	assert.Equal(t, "130 (+30)", locCell(t, table, 0))
	assert.Equal(t, "Not found 'raw.loc'", locCell(t, table, 1))
	assert.Equal(t, "100 (0)", locCell(t, table, 2))
}

func TestGenerateZeroBaselineQuirk(t *testing.T) {
	st := seededStore(t, 5, 0, 7)
	table, err := Generate(baseConfig("raw.loc"), st, &contract.NopLogger{}, false)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	// A stored zero counts as no baseline: the next delta collapses to 0.
	assert.Equal(t, "7 (0)", locCell(t, table, 0))
	assert.Equal(t, "0 (-5)", locCell(t, table, 1))
	assert.Equal(t, "5 (0)", locCell(t, table, 2))
}

func TestGenerateCategoricalMetric(t *testing.T) {
	store := histcache.NewMockStore()
	for i, rank := range []string{"A", "B"} {
		rev := revKey(i + 1)
		require.NoError(t, store.PutRevision("git", schema.Revision{
			Key: rev, Author: "alice", Date: baseDate.Add(time.Duration(i) * time.Hour),
		}))
		require.NoError(t, store.PutValue("git", rev, "maintainability", testPath, "rank", schema.MetricValue{Text: rank}))
	}

	table, err := Generate(baseConfig("maintainability.rank"), state.New(store), &contract.NopLogger{}, true)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// Raw value, no delta suffix, no decoration even with colorize on.
	assert.Equal(t, "B", locCell(t, table, 0))
	assert.Equal(t, "A", locCell(t, table, 1))
}

func TestGenerateBaselineResetsPerArchiver(t *testing.T) {
	store := histcache.NewMockStore()
	for _, archiver := range []string{"git", "svn"} {
		for i, value := range []float64{100, 150} {
			rev := archiver + revKey(i+1)
			require.NoError(t, store.PutRevision(archiver, schema.Revision{
				Key: rev, Author: "alice", Date: baseDate.Add(time.Duration(i) * time.Hour),
			}))
			require.NoError(t, store.PutValue(archiver, rev, "raw", testPath, "loc", schema.MetricValue{Number: value}))
		}
	}

	table, err := Generate(baseConfig("raw.loc"), state.New(store), &contract.NopLogger{}, false)
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)

	// Concatenated chronologically per archiver, then flipped once:
	// svn-new, svn-old, git-new, git-old.
	assert.Equal(t, "150 (+50)", locCell(t, table, 0))
	assert.Equal(t, "100 (0)", locCell(t, table, 1)) // svn baseline did not see git's 150
	assert.Equal(t, "150 (+50)", locCell(t, table, 2))
	assert.Equal(t, "100 (0)", locCell(t, table, 3))
}

func TestGenerateBoundsRevisionWindow(t *testing.T) {
	st := seededStore(t, 10, 20, 30, 40, 50)
	cfg := baseConfig("raw.loc")
	cfg.Revisions = 2

	table, err := Generate(cfg, st, &contract.NopLogger{}, false)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// Only the two newest revisions survive; the older baseline is gone,
	// so the window's first delta is 0.
	assert.Equal(t, "50 (+10)", locCell(t, table, 0))
	assert.Equal(t, "40 (0)", locCell(t, table, 1))
}

func TestGenerateUnknownMetricFailsFast(t *testing.T) {
	store := histcache.NewMockStore()
	store.Err = assert.AnError // any store access would fail loudly

	_, err := Generate(baseConfig("raw.nope"), state.New(store), &contract.NopLogger{}, false)
	require.Error(t, err)

	var unknown *operators.UnknownMetricError
	assert.ErrorAs(t, err, &unknown)
}

func TestGenerateMessageColumn(t *testing.T) {
	st := seededStore(t, 100)
	cfg := baseConfig("raw.loc")
	cfg.IncludeMessage = true
	cfg.Width = 40 // forces a 10-rune message cap

	table, err := Generate(cfg, st, &contract.NopLogger{}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Revision", "Message", "Author", "Date", "Lines of Code"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "commit num", table.Rows[0][1])
	assert.Equal(t, "alice", table.Rows[0][2])
	assert.Equal(t, "2024-03-01", table.Rows[0][3])
}

func TestGenerateColorizedDeltas(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	store := histcache.NewMockStore()
	for i, mi := range []float64{80, 60} {
		rev := revKey(i + 1)
		require.NoError(t, store.PutRevision("git", schema.Revision{
			Key: rev, Author: "alice", Date: baseDate.Add(time.Duration(i) * time.Hour),
		}))
		require.NoError(t, store.PutValue("git", rev, "maintainability", testPath, "mi", schema.MetricValue{Number: mi}))
	}

	table, err := Generate(baseConfig("maintainability.mi"), state.New(store), &contract.NopLogger{}, true)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// Aim-high metric: the decrease still takes the "good" green color.
	want := "60 (" + color.New(color.FgGreen).Sprint("-20") + ")"
	assert.Equal(t, want, locCell(t, table, 0))
	assert.Equal(t, "80 (0)", locCell(t, table, 1))
}

func TestGenerateWithoutColorizeHasNoEscapes(t *testing.T) {
	st := seededStore(t, 100, 120)
	table, err := Generate(baseConfig("raw.loc"), st, &contract.NopLogger{}, false)
	require.NoError(t, err)

	for _, row := range table.Rows {
		for _, cell := range row {
			assert.NotContains(t, cell, "\x1b[")
		}
	}
}

func TestGenerateEmptyCache(t *testing.T) {
	table, err := Generate(baseConfig("raw.loc"), state.New(histcache.NewMockStore()), &contract.NopLogger{}, false)
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
	assert.Equal(t, []string{"Revision", "Author", "Date", "Lines of Code"}, table.Headers)
}
