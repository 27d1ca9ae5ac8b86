package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/domain"
)

// ReportService aggregates inventory and ledger for managers and administrators.
type ReportService struct {
	inventory     *domain.Inventory
	ledger        *domain.Ledger
	users         domain.UserDirectory
	employees     domain.EmployeeDirectory
	clock         domain.Clock
	defaultSalary decimal.Decimal
}

func NewReportService(
	inventory *domain.Inventory,
	ledger *domain.Ledger,
	users domain.UserDirectory,
	employees domain.EmployeeDirectory,
	clock domain.Clock,
	defaultSalary int64,
) *ReportService {
	return &ReportService{
		inventory:     inventory,
		ledger:        ledger,
		users:         users,
		employees:     employees,
		clock:         clock,
		defaultSalary: decimal.NewFromInt(defaultSalary),
	}
}

// CashierDay returns the cashier's bills created today and their total.
func (s *ReportService) CashierDay(cashier string) domain.CashierDay {
	now := s.clock.Now()
	y, m, d := now.Date()
	out := domain.CashierDay{
		Cashier: cashier,
		Date:    time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		Bills:   []domain.BillSummary{},
		Total:   decimal.Zero,
	}
	for _, b := range s.ledger.TodayBills() {
		if domain.SameCashier(b.Cashier(), cashier) {
			out.Bills = append(out.Bills, b.Summary())
			out.Total = out.Total.Add(b.Total())
		}
	}
	return out
}

// SalesByCashier sums revenue per cashier over [from, to]. Rows cover the directory's
// cashiers first, then any other cashier found in the period. Bills without a cashier
// count only toward the total.
func (s *ReportService) SalesByCashier(from, to time.Time) (domain.SalesReport, error) {
	bills, err := s.ledger.BillsWithinDateRange(from, to)
	if err != nil {
		return domain.SalesReport{}, err
	}

	report := domain.SalesReport{
		From:  from,
		To:    to,
		Total: domain.CashierSales{Cashier: domain.TotalRowLabel, Revenue: decimal.Zero},
	}
	index := map[string]int{}
	addRow := func(name string) int {
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			return i
		}
		index[key] = len(report.Rows)
		report.Rows = append(report.Rows, domain.CashierSales{Cashier: name, Revenue: decimal.Zero})
		return index[key]
	}

	if s.users != nil {
		users, err := s.users.List()
		if err != nil {
			return domain.SalesReport{}, fmt.Errorf("listing users: %w", err)
		}
		for _, u := range users {
			if u.Role == domain.RoleCashier {
				addRow(u.Username)
			}
		}
	}

	for _, b := range bills {
		total := b.Total()
		report.Total.Bills++
		report.Total.Revenue = report.Total.Revenue.Add(total)
		if b.Cashier() == "" {
			continue
		}
		i := addRow(b.Cashier())
		report.Rows[i].Bills++
		report.Rows[i].Revenue = report.Rows[i].Revenue.Add(total)
	}
	return report, nil
}

// InventoryStatistics values every item at its selling price.
func (s *ReportService) InventoryStatistics() domain.InventoryReport {
	report := domain.InventoryReport{Rows: []domain.InventoryRow{}, Total: decimal.Zero}
	for _, item := range s.inventory.Items() {
		value := item.StockValue()
		report.Rows = append(report.Rows, domain.InventoryRow{
			Name:         item.Name,
			Category:     item.Category,
			StockLevel:   item.StockLevel,
			SellingPrice: item.SellingPrice,
			Value:        value,
		})
		report.Total = report.Total.Add(value)
	}
	return report
}

// Financials summarises revenue over [from, to] against stock and salary costs. Users
// with no employee record are costed at the default salary.
func (s *ReportService) Financials(from, to time.Time) (domain.FinancialSummary, error) {
	bills, err := s.ledger.BillsWithinDateRange(from, to)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	sum := domain.FinancialSummary{
		From:            from,
		To:              to,
		Revenue:         decimal.Zero,
		StockCost:       decimal.Zero,
		PotentialMargin: decimal.Zero,
	}
	for _, b := range bills {
		sum.Revenue = sum.Revenue.Add(b.Total())
	}
	for _, item := range s.inventory.Items() {
		sum.StockCost = sum.StockCost.Add(item.StockCost())
		sum.PotentialMargin = sum.PotentialMargin.Add(item.Margin())
	}

	salaries, err := s.salaryCosts()
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	sum.SalaryCosts = salaries
	sum.TotalCosts = sum.StockCost.Add(salaries)
	return sum, nil
}

func (s *ReportService) salaryCosts() (decimal.Decimal, error) {
	var employees []domain.Employee
	if s.employees != nil {
		list, err := s.employees.List()
		if err != nil {
			return decimal.Zero, fmt.Errorf("listing employees: %w", err)
		}
		employees = list
	}
	total := domain.TotalSalaries(employees)

	if s.users == nil {
		return total, nil
	}
	users, err := s.users.List()
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing users: %w", err)
	}
	for _, u := range users {
		if !hasEmployee(employees, u.Username) {
			total = total.Add(s.defaultSalary)
		}
	}
	return total, nil
}

func hasEmployee(employees []domain.Employee, username string) bool {
	for _, e := range employees {
		if strings.EqualFold(e.Username, username) {
			return true
		}
	}
	return false
}
