package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/domain"
)

const billTimeLayout = "2006-01-02 15:04"

// RenderBill prints one bill with its lines and total.
func RenderBill(bill *domain.Bill) string {
	var b strings.Builder
	cashier := bill.Cashier()
	if cashier == "" {
		cashier = "-"
	}
	fmt.Fprintf(&b, "  %s  %s  %s\n",
		titleStyle.Render(fmt.Sprintf("Bill #%d", bill.Number())),
		dimStyle.Render(cashier),
		dimStyle.Render(bill.CreatedAt().Format(billTimeLayout)))
	for _, l := range bill.Lines() {
		fmt.Fprintf(&b, "    %s %s %s\n",
			padRight(l.Name, 24),
			dimStyle.Render(padLeft(fmt.Sprintf("%d x %s", l.Quantity, money(l.UnitPrice)), 16)),
			padLeft(money(l.Amount()), 10))
	}
	fmt.Fprintf(&b, "    %s %s\n", padRight("Total", 41), moneyStyle.Render(padLeft(money(bill.Total()), 10)))
	return b.String()
}

// RenderBills prints a titled list of bills and their grand total.
func RenderBills(title string, bills []*domain.Bill) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(headerStyle.Render(title) + "\n" +
		dimStyle.Render(fmt.Sprintf("%d bills", len(bills)))))
	b.WriteString("\n\n")

	if len(bills) == 0 {
		b.WriteString("  " + dimStyle.Render("No bills.") + "\n")
		return b.String()
	}
	for i, bill := range bills {
		b.WriteString(RenderBill(bill))
		if i < len(bills)-1 {
			b.WriteString("\n")
		}
	}

	total := money(billsTotal(bills))
	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Grand total", 45)), moneyStyle.Render(padLeft(total, 10)))
	return b.String()
}

func billsTotal(bills []*domain.Bill) decimal.Decimal {
	sum := decimal.Zero
	for _, bill := range bills {
		sum = sum.Add(bill.Total())
	}
	return sum
}
