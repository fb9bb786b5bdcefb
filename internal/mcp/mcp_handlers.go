package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/isfarbaset/git-wrapped/core"
	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.StatsSource
	cal     contract.CalendarSource
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGetStatsCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username := request.GetString("username", h.baseCfg.Username)
	if err := contract.ValidateUsername(username); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	opts := core.CardOptions{
		Username: username,
		NoCache:  request.GetBool("no_cache", h.baseCfg.NoCache),
	}

	result, err := core.BuildCard(ctx, h.src, h.cal, h.mgr, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("card build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRateBudget(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	budget := h.src.CheckRateLimit(ctx)
	if budget == nil {
		return mcp.NewToolResultError("rate budget probe failed"), nil
	}

	jsonData, _ := json.MarshalIndent(budget, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
