package application_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/adapters/outbound/catalogfile"
	"github.com/tillbook/tillbook/internal/adapters/outbound/directory"
	"github.com/tillbook/tillbook/internal/adapters/outbound/ledgerfile"
	"github.com/tillbook/tillbook/internal/adapters/outbound/receipt"
	"github.com/tillbook/tillbook/internal/application"
	"github.com/tillbook/tillbook/internal/domain"
)

var noon = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// testClock is a settable engine clock.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

type fixture struct {
	dir    string
	cfg    domain.Config
	clock  *testClock
	engine *application.Engine
}

// newFixture builds a file-backed engine in a temp dir, seeded with Apple and Banana.
func newFixture(t *testing.T, mode domain.CommitMode) *fixture {
	t.Helper()
	dir := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.ReceiptsDir = filepath.Join(dir, "bills")
	cfg.CommitMode = mode
	cfg.Timezone = "UTC"

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(cfg.InventoryPath(), []byte(
		"Apple,Fruit,0.50,1.00,100\nBanana,Fruit,0.30,0.80,50\n"), 0644))

	f := &fixture{dir: dir, cfg: cfg, clock: &testClock{now: noon}}
	f.engine = f.open(t)
	return f
}

// open builds a fresh engine over the same files, as a restarted process would.
func (f *fixture) open(t *testing.T) *application.Engine {
	t.Helper()
	eng := application.NewEngine(f.cfg, application.Adapters{
		InventoryStore: catalogfile.New(f.cfg.InventoryPath()),
		LedgerStore:    ledgerfile.New(f.cfg.LedgerPath()),
		Receipts:       receipt.New(f.cfg.ReceiptsDir, f.cfg.ReceiptNaming),
		Users:          directory.NewUserFile(f.cfg.UsersPath()),
		Suppliers:      directory.NewSupplierFile(f.cfg.SuppliersPath()),
		Employees:      directory.NewEmployeeFile(f.cfg.EmployeesPath()),
		Clock:          f.clock,
	})
	require.NoError(t, eng.Load())
	return eng
}

func (f *fixture) stock(t *testing.T, eng *application.Engine, name string) int {
	t.Helper()
	item, ok := eng.Inventory().FindByName(name)
	require.True(t, ok, "item %q", name)
	return item.StockLevel
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
