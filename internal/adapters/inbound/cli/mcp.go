package cli

import (
	mcpadapter "github.com/tillbook/tillbook/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tillbook MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start tillbook MCP server (stdio)",
		Long:  "Start the tillbook MCP server using stdio transport. Tools expose read-only queries over the catalog, the bill ledger and reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewTillbookMCPServer(eng))
		},
	}
}
