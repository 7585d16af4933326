package cmd

import (
	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/histcache"
	"github.com/huangsam/wily/internal/mcp"
	"github.com/huangsam/wily/internal/state"
	"github.com/spf13/cobra"
)

// mcpCmd serves the report over the Model Context Protocol.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start an MCP server exposing wily reports over stdio.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := state.New(histcache.GetStore())
		if err := mcp.StartMCPServer(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot run MCP server", err)
		}
	},
}
