package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/grepl/internal/adapters/driving/mcp"
)

var mcpServePort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for serving grepl over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so MCP clients can run
searches through grepl.

The server speaks JSON-RPC over stdio by default. Pass --port to serve
streamable HTTP instead, which the MCP Inspector web UI and remote
clients can reach.

Examples:
  # Stdio mode (default)
  grepl mcp serve

  # HTTP mode
  grepl mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpServePort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Search:   searchService,
		Settings: settingsService,
		Source:   documentSource,
		Docs:     documentStore,
	})
	if err != nil {
		return err
	}

	if mcpServePort > 0 {
		addr := fmt.Sprintf(":%d", mcpServePort)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
