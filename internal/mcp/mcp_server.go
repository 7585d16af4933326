// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/wily/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the wily MCP server without
// starting it. Exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Wily Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Build a historical comparison of source-quality metrics across cached revisions."),
		mcp.WithString("path", mcp.Description("File or module path the metrics were collected for (defaults to the configured path).")),
		mcp.WithString("metrics", mcp.Description("Comma-separated metric identifiers in operator.key form, e.g. 'raw.loc, maintainability.mi'.")),
		mcp.WithNumber("number", mcp.Description("Number of most recent revisions to include per archiver.")),
		mcp.WithBoolean("include_message", mcp.Description("Include the revision message column.")),
	), h.handleGetReport)

	s.AddTool(mcp.NewTool("list_metrics",
		mcp.WithDescription("List every metric wily can report on, with value types and improvement directions."),
	), h.handleListMetrics)

	return s
}

// StartMCPServer starts the wily MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
