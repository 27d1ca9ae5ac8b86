package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tillbook/tillbook/internal/application"
	"github.com/tillbook/tillbook/internal/domain"
)

// registerTools registers all tillbook MCP tools on the given server.
func registerTools(s *server.MCPServer, eng *application.Engine) {
	// 1. inventory_list
	s.AddTool(
		mcplib.NewTool("inventory_list",
			mcplib.WithDescription("Returns every catalog item with category, prices and stock level"),
		),
		handleInventoryList(eng),
	)

	// 2. inventory_find
	s.AddTool(
		mcplib.NewTool("inventory_find",
			mcplib.WithDescription("Looks up one item by name, ignoring case"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Item name"),
			),
		),
		handleInventoryFind(eng),
	)

	// 3. low_stock
	s.AddTool(
		mcplib.NewTool("low_stock",
			mcplib.WithDescription("Returns items whose stock is below a threshold"),
			mcplib.WithNumber("threshold", mcplib.Description("Stock threshold (default from configuration)")),
		),
		handleLowStock(eng),
	)

	// 4. bills_today
	s.AddTool(
		mcplib.NewTool("bills_today",
			mcplib.WithDescription("Returns the bills recorded today"),
		),
		handleBillsToday(eng),
	)

	// 5. bills_range
	s.AddTool(
		mcplib.NewTool("bills_range",
			mcplib.WithDescription("Returns the bills created between two dates, both inclusive"),
			mcplib.WithString("from", mcplib.Required(), mcplib.Description("Start date, YYYY-MM-DD")),
			mcplib.WithString("to", mcplib.Required(), mcplib.Description("End date, YYYY-MM-DD")),
		),
		handleBillsRange(eng),
	)

	// 6. sales_report
	s.AddTool(
		mcplib.NewTool("sales_report",
			mcplib.WithDescription("Revenue per cashier between two dates with a TOTAL row"),
			mcplib.WithString("from", mcplib.Required(), mcplib.Description("Start date, YYYY-MM-DD")),
			mcplib.WithString("to", mcplib.Required(), mcplib.Description("End date, YYYY-MM-DD")),
		),
		handleSalesReport(eng),
	)
}

func handleInventoryList(eng *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(eng.Catalog().Items())
	}
}

func handleInventoryFind(eng *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		item, ok := eng.Catalog().Find(name)
		if !ok {
			return errorResult(fmt.Sprintf("item %q not found", name)), nil
		}
		return jsonResult(item)
	}
}

func handleLowStock(eng *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		threshold := request.GetInt("threshold", eng.Config().LowStockThreshold)
		items := eng.Catalog().LowStock(threshold)
		if len(items) == 0 {
			return textResult(fmt.Sprintf("No items below %d in stock.", threshold)), nil
		}
		return jsonResult(items)
	}
}

func handleBillsToday(eng *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.Summaries(eng.Ledger().TodayBills()))
	}
}

func handleBillsRange(eng *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		from, to, err := dateRange(eng, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		bills, err := eng.Ledger().BillsWithinDateRange(from, to)
		if err != nil {
			return errorResult(fmt.Sprintf("range query failed: %v", err)), nil
		}
		return jsonResult(domain.Summaries(bills))
	}
}

func handleSalesReport(eng *application.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		from, to, err := dateRange(eng, request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		report, err := eng.Reports().SalesByCashier(from, to)
		if err != nil {
			return errorResult(fmt.Sprintf("sales report failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// dateRange reads the required from/to arguments as calendar days in the engine's zone.
func dateRange(eng *application.Engine, request mcplib.CallToolRequest) (from, to time.Time, err error) {
	fromArg, err := request.RequireString("from")
	if err != nil {
		return from, to, err
	}
	toArg, err := request.RequireString("to")
	if err != nil {
		return from, to, err
	}
	loc := eng.Clock().Now().Location()
	if from, err = domain.ParseDay(fromArg, loc); err != nil {
		return from, to, err
	}
	if to, err = domain.ParseDay(toArg, loc); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
