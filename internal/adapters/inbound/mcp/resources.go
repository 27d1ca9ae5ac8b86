package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tillbook/tillbook/internal/application"
)

// registerResources registers all tillbook MCP resources on the given server.
func registerResources(s *server.MCPServer, eng *application.Engine) {
	// 1. tillbook://reports/inventory - stock valued at selling price
	s.AddResource(
		mcplib.NewResource(
			"tillbook://reports/inventory",
			"Inventory Statistics",
			mcplib.WithResourceDescription("Every item valued at its selling price, with the total"),
			mcplib.WithMIMEType("application/json"),
		),
		handleInventoryResource(eng),
	)

	// 2. tillbook://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			"tillbook://config",
			"Configuration",
			mcplib.WithResourceDescription("Effective configuration after defaults are applied"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(eng),
	)

	// 3. tillbook://cashiers/{username}/today - one cashier's bills today
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"tillbook://cashiers/{username}/today",
			"Cashier Day",
			mcplib.WithTemplateDescription("Bills a cashier recorded today and their total"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleCashierDayResource(eng),
	)
}

func handleInventoryResource(eng *application.Engine) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, eng.Reports().InventoryStatistics())
	}
}

func handleConfigResource(eng *application.Engine) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, eng.Config())
	}
}

func handleCashierDayResource(eng *application.Engine) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// populated by template matching
		username := templateArg(request.Params.Arguments["username"])
		if username == "" {
			return nil, fmt.Errorf("username is required")
		}
		return jsonContents(request.Params.URI, eng.Reports().CashierDay(username))
	}
}

// templateArg accepts either a plain string or the []string form the template matcher produces.
func templateArg(v any) string {
	switch arg := v.(type) {
	case string:
		return arg
	case []string:
		if len(arg) > 0 {
			return arg[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
