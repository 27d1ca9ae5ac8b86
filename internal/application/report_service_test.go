package application_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/domain"
)

func writeUsers(t *testing.T, f *fixture, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.cfg.UsersPath(), []byte(content), 0644))
}

func sell(t *testing.T, f *fixture, cashier, name string, qty int) {
	t.Helper()
	sale := f.engine.Checkout().Open(cashier)
	_, err := sale.Add(name, qty)
	require.NoError(t, err)
	_, err = sale.Finalize()
	require.NoError(t, err)
}

func TestReports_SalesByCashier(t *testing.T) {
	f := newFixture(t, domain.CommitImmediate)
	writeUsers(t, f, "admin,pw,Administrator\nc1,pw,Cashier\nidle,pw,Cashier\n")

	sell(t, f, "c1", "Apple", 7)
	sell(t, f, "C1", "Banana", 5)
	sell(t, f, "walkin", "Apple", 1)
	f.clock.now = noon.Add(48 * time.Hour)
	sell(t, f, "c1", "Apple", 10)

	report, err := f.engine.Reports().SalesByCashier(noon.Add(-24*time.Hour), noon)
	require.NoError(t, err)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "c1", report.Rows[0].Cashier)
	assert.Equal(t, 2, report.Rows[0].Bills)
	assert.Equal(t, "11.00", report.Rows[0].Revenue.StringFixed(2))
	assert.Equal(t, "idle", report.Rows[1].Cashier)
	assert.True(t, report.Rows[1].Revenue.IsZero())
	assert.Equal(t, "walkin", report.Rows[2].Cashier)

	assert.Equal(t, domain.TotalRowLabel, report.Total.Cashier)
	assert.Equal(t, 3, report.Total.Bills)
	assert.Equal(t, "12.00", report.Total.Revenue.StringFixed(2))
}

func TestReports_SalesByCashierRequiresBounds(t *testing.T) {
	f := newFixture(t, domain.CommitImmediate)
	_, err := f.engine.Reports().SalesByCashier(time.Time{}, noon)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestReports_CashierDay(t *testing.T) {
	f := newFixture(t, domain.CommitImmediate)
	sell(t, f, "c1", "Apple", 7)
	sell(t, f, "c2", "Banana", 5)
	f.clock.now = noon.Add(24 * time.Hour)
	sell(t, f, "c1", "Apple", 1)
	f.clock.now = noon

	day := f.engine.Reports().CashierDay("C1")
	require.Len(t, day.Bills, 1)
	assert.Equal(t, "7.00", day.Total.StringFixed(2))
}

func TestReports_InventoryStatistics(t *testing.T) {
	f := newFixture(t, domain.CommitImmediate)

	report := f.engine.Reports().InventoryStatistics()
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "100.00", report.Rows[0].Value.StringFixed(2))
	assert.Equal(t, "40.00", report.Rows[1].Value.StringFixed(2))
	assert.Equal(t, "140.00", report.Total.StringFixed(2))
}

func TestReports_Financials(t *testing.T) {
	f := newFixture(t, domain.CommitImmediate)
	writeUsers(t, f, "admin,pw,Administrator\nc1,pw,Cashier\n")
	require.NoError(t, f.engine.Employees().Add(domain.Employee{Name: "Carla", Username: "c1", Salary: dec("2000")}))
	sell(t, f, "c1", "Apple", 10)

	sum, err := f.engine.Reports().Financials(noon, noon)
	require.NoError(t, err)

	// stock after the sale: Apple 90 @0.50/1.00, Banana 50 @0.30/0.80
	assert.Equal(t, "10.00", sum.Revenue.StringFixed(2))
	assert.Equal(t, "60.00", sum.StockCost.StringFixed(2))
	assert.Equal(t, "70.00", sum.PotentialMargin.StringFixed(2))
	assert.Equal(t, "5000.00", sum.SalaryCosts.StringFixed(2), "c1 from employee record, admin at the default salary")
	assert.Equal(t, "5060.00", sum.TotalCosts.StringFixed(2))
}
