package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	moneyStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderInventory lists the catalog in insertion order. Items under threshold are
// flagged.
func RenderInventory(items []*domain.Item, threshold int) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(headerStyle.Render("Inventory") + "\n" +
		dimStyle.Render(fmt.Sprintf("%d items", len(items)))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString("  " + dimStyle.Render("No items.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %s %s %s\n",
		titleStyle.Render(padRight("Name", 22)),
		titleStyle.Render(padRight("Category", 12)),
		titleStyle.Render(padLeft("Cost", 9)),
		titleStyle.Render(padLeft("Price", 9)),
		titleStyle.Render(padLeft("Stock", 7)))
	b.WriteString("  " + separatorLine + "\n")

	for _, it := range items {
		fmt.Fprintf(&b, "  %s %s %s %s %s\n",
			padRight(it.Name, 22),
			dimStyle.Render(padRight(it.Category, 12)),
			padLeft(money(it.PurchasePrice), 9),
			padLeft(money(it.SellingPrice), 9),
			stockStyle(it.StockLevel, threshold).Render(padLeft(fmt.Sprintf("%d", it.StockLevel), 7)))
	}
	return b.String()
}

// RenderItem shows one catalog entry.
func RenderItem(it *domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render(it.Name), dimStyle.Render(it.Category))
	fmt.Fprintf(&b, "  purchase %s   selling %s   stock %d\n", money(it.PurchasePrice), money(it.SellingPrice), it.StockLevel)
	return b.String()
}

// RenderLowStock lists items below threshold.
func RenderLowStock(items []*domain.Item, threshold int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n\n", titleStyle.Render("Low stock"), dimStyle.Render(fmt.Sprintf("below %d", threshold)))
	if len(items) == 0 {
		b.WriteString("  " + passStyle.Render("All items are stocked.") + "\n")
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "  %s %s\n", padRight(it.Name, 30), stockStyle(it.StockLevel, threshold).Render(fmt.Sprintf("%d", it.StockLevel)))
	}
	return b.String()
}

func stockStyle(level, threshold int) lipgloss.Style {
	switch {
	case level <= 0:
		return failStyle
	case level < threshold:
		return warnStyle
	default:
		return passStyle
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
