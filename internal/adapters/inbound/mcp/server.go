package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/tillbook/tillbook/internal/application"
)

// NewTillbookMCPServer creates an MCP server exposing read-only queries over
// the engine's catalog, ledger and reports.
func NewTillbookMCPServer(eng *application.Engine) *server.MCPServer {
	s := server.NewMCPServer(
		"tillbook",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, eng)
	registerResources(s, eng)

	return s
}
