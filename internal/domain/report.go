package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalRowLabel names the aggregate row of per-cashier sales.
const TotalRowLabel = "TOTAL"

type CashierSales struct {
	Cashier string          `json:"cashier"`
	Bills   int             `json:"bills"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SalesReport struct {
	From  time.Time      `json:"from"`
	To    time.Time      `json:"to"`
	Rows  []CashierSales `json:"rows"`
	Total CashierSales   `json:"total"`
}

type InventoryRow struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	StockLevel   int             `json:"stock_level"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Value        decimal.Decimal `json:"value"`
}

type InventoryReport struct {
	Rows  []InventoryRow  `json:"rows"`
	Total decimal.Decimal `json:"total"`
}

// FinancialSummary is the administrator's view of stock, margin, salaries and revenue.
type FinancialSummary struct {
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	Revenue         decimal.Decimal `json:"revenue"`
	StockCost       decimal.Decimal `json:"stock_cost"`
	PotentialMargin decimal.Decimal `json:"potential_margin"`
	SalaryCosts     decimal.Decimal `json:"salary_costs"`
	TotalCosts      decimal.Decimal `json:"total_costs"`
}

type CashierDay struct {
	Cashier string          `json:"cashier"`
	Date    time.Time       `json:"date"`
	Bills   []BillSummary   `json:"bills"`
	Total   decimal.Decimal `json:"total"`
}
