package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpadapter "github.com/tillbook/tillbook/internal/adapters/inbound/mcp"
	"github.com/tillbook/tillbook/internal/application"
	"github.com/tillbook/tillbook/internal/domain"
)

func newEngine() *application.Engine {
	return application.NewEngine(domain.DefaultConfig(), application.Adapters{})
}

func TestNewTillbookMCPServer(t *testing.T) {
	s := mcpadapter.NewTillbookMCPServer(newEngine())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewTillbookMCPServer(newEngine())
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"inventory_list",
		"inventory_find",
		"low_stock",
		"bills_today",
		"bills_range",
		"sales_report",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
