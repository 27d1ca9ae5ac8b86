package tui

import (
	"fmt"
	"strings"

	"github.com/tillbook/tillbook/internal/domain"
)

func RenderUsers(users []domain.User) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Users") + "\n\n")
	for _, u := range users {
		fmt.Fprintf(&b, "  %s %s\n", padRight(u.Username, 24), dimStyle.Render(string(u.Role)))
	}
	if len(users) == 0 {
		b.WriteString("  " + dimStyle.Render("No users.") + "\n")
	}
	return b.String()
}

func RenderSuppliers(suppliers []domain.Supplier) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Suppliers") + "\n\n")
	for _, s := range suppliers {
		fmt.Fprintf(&b, "  %s %s\n", padRight(s.Name, 24), dimStyle.Render(s.ContactInfo))
		if len(s.Products) > 0 {
			fmt.Fprintf(&b, "    %s\n", strings.Join(s.Products, ", "))
		}
	}
	return b.String()
}

func RenderEmployees(employees []domain.Employee) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Employees") + "\n\n")
	for _, e := range employees {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			padRight(e.Name, 22),
			dimStyle.Render(padRight(e.Username, 14)),
			dimStyle.Render(padRight(string(e.AccessLevel), 14)),
			padLeft(money(e.Salary), 12))
	}
	fmt.Fprintf(&b, "\n  %s %s\n", padRight("Total salaries", 51), moneyStyle.Render(padLeft(money(domain.TotalSalaries(employees)), 12)))
	return b.String()
}
