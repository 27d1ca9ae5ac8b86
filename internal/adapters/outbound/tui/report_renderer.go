package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tillbook/tillbook/internal/domain"
)

func period(from, to time.Time) string {
	return from.Format(domain.DayLayout) + " .. " + to.Format(domain.DayLayout)
}

// RenderSalesReport prints revenue per cashier followed by the TOTAL row.
func RenderSalesReport(r domain.SalesReport) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(headerStyle.Render("Sales by cashier") + "\n" +
		dimStyle.Render(period(r.From, r.To))))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s %s\n",
		titleStyle.Render(padRight("Cashier", 30)),
		titleStyle.Render(padLeft("Bills", 8)),
		titleStyle.Render(padLeft("Revenue", 14)))
	b.WriteString("  " + separatorLine + "\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "  %s %s %s\n",
			padRight(row.Cashier, 30),
			dimStyle.Render(padLeft(fmt.Sprintf("%d", row.Bills), 8)),
			padLeft(money(row.Revenue), 14))
	}
	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s %s\n",
		titleStyle.Render(padRight(r.Total.Cashier, 30)),
		padLeft(fmt.Sprintf("%d", r.Total.Bills), 8),
		moneyStyle.Render(padLeft(money(r.Total.Revenue), 14)))
	return b.String()
}

// RenderInventoryReport prints stock valued at selling price.
func RenderInventoryReport(r domain.InventoryReport) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(headerStyle.Render("Inventory value")))
	b.WriteString("\n\n")

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			padRight(row.Name, 24),
			dimStyle.Render(padLeft(fmt.Sprintf("%d", row.StockLevel), 7)),
			dimStyle.Render(padLeft("x "+money(row.SellingPrice), 12)),
			padLeft(money(row.Value), 14))
	}
	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Total", 44)), moneyStyle.Render(padLeft(money(r.Total), 14)))
	return b.String()
}

// RenderFinancials prints the administrator summary.
func RenderFinancials(f domain.FinancialSummary) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(headerStyle.Render("Financial summary") + "\n" +
		dimStyle.Render(period(f.From, f.To))))
	b.WriteString("\n\n")

	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", padRight(label, 44), padLeft(value, 14))
	}
	line("Revenue in period", money(f.Revenue))
	line("Potential margin on stock", money(f.PotentialMargin))
	line("Stock at cost", money(f.StockCost))
	line("Salaries", money(f.SalaryCosts))
	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Total costs", 44)), moneyStyle.Render(padLeft(money(f.TotalCosts), 14)))
	return b.String()
}

// RenderCashierDay prints a cashier's bills for the day.
func RenderCashierDay(d domain.CashierDay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render(d.Cashier), dimStyle.Render(d.Date.Format(domain.DayLayout)))
	for _, s := range d.Bills {
		fmt.Fprintf(&b, "    %s %s %s\n",
			padRight(fmt.Sprintf("Bill #%d", s.Number), 14),
			dimStyle.Render(s.CreatedAt.Format("15:04")),
			padLeft(money(s.Total), 14))
	}
	fmt.Fprintf(&b, "  %s %s\n", padRight("Total sales today", 34), moneyStyle.Render(padLeft(money(d.Total), 14)))
	return b.String()
}
