// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the git-wrapped MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.StatsSource, cal contract.CalendarSource, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Git Wrapped Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
		cal:     cal,
		mgr:     mgr,
	}

	// --- 1. Tool: get_stats_card ---
	s.AddTool(mcp.NewTool("get_stats_card",
		mcp.WithDescription("Build the aggregated contribution stats card for an account."),
		mcp.WithString("username", mcp.Required(), mcp.Description("Account login to aggregate.")),
		mcp.WithBoolean("no_cache", mcp.Description("Bypass the card cache and hit the live sources.")),
	), h.handleGetStatsCard)

	// --- 2. Tool: get_rate_budget ---
	s.AddTool(mcp.NewTool("get_rate_budget",
		mcp.WithDescription("Inspect the remaining primary API call budget."),
	), h.handleGetRateBudget)

	return s
}

// StartMCPServer starts the MCP server over stdio and blocks until the
// client disconnects.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.StatsSource, cal contract.CalendarSource, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, src, cal, mgr)
	return server.ServeStdio(s)
}
