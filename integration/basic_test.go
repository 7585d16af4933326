//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWilyBasicCommands exercises the CLI against a scratch sqlite cache.
func TestWilyBasicCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wily_cache.db")
	t.Setenv("WILY_CACHE_DB_CONNECT", dbPath)

	require.NoError(t, runWilyCommand(t, "version"))
	require.NoError(t, runWilyCommand(t, "metrics"))
	require.NoError(t, runWilyCommand(t, "cache", "migrate"))
	require.NoError(t, runWilyCommand(t, "cache", "status"))

	// Report over an empty cache renders headers only, with no failure.
	require.NoError(t, runWilyCommand(t, "report", "src/app.py"))
}

// TestWilyHTMLReport checks the html output path end to end.
func TestWilyHTMLReport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wily_cache.db")
	t.Setenv("WILY_CACHE_DB_CONNECT", dbPath)

	outDir := filepath.Join(t.TempDir(), "report_out")
	require.NoError(t, runWilyCommand(t, "report", "src/app.py", "--format", "html", "-o", outDir))

	_, err := os.Stat(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "css", "report.css"))
	require.NoError(t, err)
}
