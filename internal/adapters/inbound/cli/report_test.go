package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/domain"
)

func TestBills_TodayAndRange(t *testing.T) {
	s := newShop(t, "")
	s.mustRun(t, "sale", "--cashier", "c1", "--item", "Apple=2")
	s.mustRun(t, "sale", "--cashier", "c2", "--item", "Banana=1")

	var today []domain.BillSummary
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "bills", "today", "--json")), &today))
	assert.Len(t, today, 2)

	day := time.Now().UTC().Format(domain.DayLayout)
	var ranged []domain.BillSummary
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "bills", "range", day, day, "--json")), &ranged))
	assert.Len(t, ranged, 2)

	var mine []domain.BillSummary
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "bills", "all", "--cashier", "C2", "--json")), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "0.80", mine[0].Total.StringFixed(2))

	_, err := s.run(t, "bills", "range", "yesterday", day)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestReportSales_TotalRow(t *testing.T) {
	s := newShop(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(s.data, "users.txt"),
		[]byte("alice,pw,Cashier\nbob,pw,Cashier\nroot,pw,Administrator\n"), 0644))
	s.mustRun(t, "sale", "--cashier", "alice", "--item", "Apple=3")
	s.mustRun(t, "sale", "--cashier", "alice", "--item", "Banana=5")

	var report domain.SalesReport
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "report", "sales", "--json")), &report))
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "alice", report.Rows[0].Cashier)
	assert.Equal(t, "7.00", report.Rows[0].Revenue.StringFixed(2))
	assert.Equal(t, "bob", report.Rows[1].Cashier)
	assert.True(t, report.Rows[1].Revenue.IsZero())
	assert.Equal(t, domain.TotalRowLabel, report.Total.Cashier)
	assert.Equal(t, 2, report.Total.Bills)
}

func TestReportInventory_ValuesAtSellingPrice(t *testing.T) {
	s := newShop(t, "")

	var report domain.InventoryReport
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "report", "inventory", "--json")), &report))
	assert.Equal(t, "140.00", report.Total.StringFixed(2))
}

func TestReportFinancials_DefaultSalaryForUsersWithoutRecord(t *testing.T) {
	s := newShop(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(s.data, "users.txt"),
		[]byte("alice,pw,Cashier\n"), 0644))

	var summary domain.FinancialSummary
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "report", "financials", "--json")), &summary))
	assert.Equal(t, "3000.00", summary.SalaryCosts.StringFixed(2))
	assert.Equal(t, "65.00", summary.StockCost.StringFixed(2))
}

func TestReportCashier_Today(t *testing.T) {
	s := newShop(t, "")
	s.mustRun(t, "sale", "--cashier", "c1", "--item", "Apple=2")
	s.mustRun(t, "sale", "--cashier", "c2", "--item", "Apple=9")

	var day domain.CashierDay
	require.NoError(t, json.Unmarshal([]byte(s.mustRun(t, "report", "cashier", "c1", "--json")), &day))
	require.Len(t, day.Bills, 1)
	assert.Equal(t, "2.00", day.Total.StringFixed(2))
}
