package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trident-labs/trident-cli/internal/adapters/driving/mcp"
	"github.com/trident-labs/trident-cli/internal/logger"
)

var flagMCPHTTP string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server exposing trident search to AI assistants",
	Long: `Starts a Model Context Protocol server over stdio (the default) or
HTTP, exposing the combined name, content and git-log search as a tool.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		server, err := mcp.NewServer(&mcp.Ports{Search: newSearchService()})
		if err != nil {
			return fmt.Errorf("starting mcp server: %w", err)
		}

		ctx := cmd.Context()
		if flagMCPHTTP != "" {
			logger.Info("MCP server listening on %s", flagMCPHTTP)
			return server.RunHTTP(ctx, flagMCPHTTP)
		}
		return server.Run(ctx)
	},
}

func init() {
	mcpCmd.Flags().StringVar(&flagMCPHTTP, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}
