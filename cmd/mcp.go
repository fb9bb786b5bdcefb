package cmd

import (
	"github.com/isfarbaset/git-wrapped/internal/calendar"
	"github.com/isfarbaset/git-wrapped/internal/ghclient"
	"github.com/isfarbaset/git-wrapped/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Git Wrapped MCP server",
	Long:  `Launch an MCP server that allows AI agents to build stats cards via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		src := ghclient.New(cfg.Token)
		cal := calendar.New()
		return mcp.StartMCPServer(rootCtx, cfg, src, cal, cacheManager)
	},
}
