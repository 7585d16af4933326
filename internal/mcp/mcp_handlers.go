package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/operators"
	"github.com/huangsam/wily/internal/report"
	"github.com/huangsam/wily/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HistoryStore
}

func (h *toolHandler) handleGetReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.Path = p
	}
	if m := request.GetString("metrics", ""); m != "" {
		var metrics []string
		for _, part := range strings.Split(m, ",") {
			if part = strings.TrimSpace(part); part != "" {
				metrics = append(metrics, part)
			}
		}
		cfg.Metrics = metrics
	}
	if n := request.GetInt("number", 0); n > 0 && n <= schema.MaxRevisionCount {
		cfg.Revisions = n
	}
	cfg.IncludeMessage = request.GetBool("include_message", cfg.IncludeMessage)

	// Stdout carries the protocol, so the report runs silent and plain.
	table, err := report.Generate(cfg, h.store, &contract.NopLogger{}, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// metricListing is the JSON shape returned by list_metrics.
type metricListing struct {
	Metric    string `json:"metric"`
	Title     string `json:"title"`
	ValueType string `json:"value_type"`
	Direction string `json:"direction"`
}

func (h *toolHandler) handleListMetrics(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var listings []metricListing
	for _, op := range operators.All() {
		for _, m := range op.Metrics {
			listings = append(listings, metricListing{
				Metric:    op.Name + "." + m.Key,
				Title:     m.Title,
				ValueType: string(m.ValueType),
				Direction: string(m.Direction),
			})
		}
	}

	jsonData, _ := json.MarshalIndent(listings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
