package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/histcache"
	"github.com/huangsam/wily/internal/state"
	"github.com/huangsam/wily/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Path:      "src/app.py",
		Metrics:   []string{"raw.loc"},
		Revisions: schema.DefaultRevisionCount,
		Width:     200,
	}
}

func seededState(t *testing.T) *state.State {
	t.Helper()
	store := histcache.NewMockStore()
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	for i, value := range []float64{100, 120} {
		rev := []string{"aaaa1111", "bbbb2222"}[i]
		require.NoError(t, store.PutRevision("git", schema.Revision{
			Key: rev, Author: "alice", Message: "change", Date: base.Add(time.Duration(i) * time.Hour),
		}))
		require.NoError(t, store.PutValue("git", rev, "raw", "src/app.py", "loc", schema.MetricValue{Number: value}))
	}
	return state.New(store)
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestNewMCPServer(t *testing.T) {
	s := NewMCPServer(testConfig(), seededState(t))
	assert.NotNil(t, s)
}

func TestHandleGetReport(t *testing.T) {
	h := &toolHandler{baseCfg: testConfig(), store: seededState(t)}

	result, err := h.handleGetReport(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var table schema.ReportTable
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &table))
	assert.Equal(t, []string{"Revision", "Author", "Date", "Lines of Code"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "120 (+20)", table.Rows[0][len(table.Rows[0])-1])
}

func TestHandleGetReportUnknownMetric(t *testing.T) {
	h := &toolHandler{baseCfg: testConfig(), store: seededState(t)}

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]any{"metrics": "raw.nope"}

	result, err := h.handleGetReport(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleListMetrics(t *testing.T) {
	h := &toolHandler{baseCfg: testConfig(), store: seededState(t)}

	result, err := h.handleListMetrics(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var listings []metricListing
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &listings))
	assert.NotEmpty(t, listings)

	seen := make(map[string]bool)
	for _, l := range listings {
		seen[l.Metric] = true
	}
	for _, want := range schema.DefaultMetrics {
		assert.True(t, seen[want], want)
	}
}
