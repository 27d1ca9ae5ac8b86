package application

import (
	"errors"
	"fmt"

	"github.com/tillbook/tillbook/internal/domain"
)

// Adapters bundles the outbound ports the engine runs on.
type Adapters struct {
	InventoryStore domain.InventoryStore
	LedgerStore    domain.LedgerStore
	Receipts       domain.ReceiptWriter
	Users          domain.UserDirectory
	Suppliers      domain.SupplierDirectory
	Employees      domain.EmployeeDirectory
	Clock          domain.Clock
}

// Engine owns the process's single Inventory and Ledger. Every service is handed these
// same instances, so there is one source of truth for stock and bills.
type Engine struct {
	cfg       domain.Config
	clock     domain.Clock
	inventory *domain.Inventory
	ledger    *domain.Ledger
	users     domain.UserDirectory
	suppliers domain.SupplierDirectory
	employees domain.EmployeeDirectory

	checkout *CheckoutService
	catalog  *CatalogService
	reports  *ReportService
}

func NewEngine(cfg domain.Config, a Adapters) *Engine {
	clock := a.Clock
	if clock == nil {
		clock = domain.SystemClock{}
	}
	e := &Engine{
		cfg:       cfg,
		clock:     clock,
		inventory: domain.NewInventory(a.InventoryStore, cfg.Validation),
		ledger:    domain.NewLedger(a.LedgerStore, a.Receipts, clock),
		users:     a.Users,
		suppliers: a.Suppliers,
		employees: a.Employees,
	}
	e.checkout = NewCheckoutService(e.inventory, e.ledger, clock, cfg.CommitMode)
	e.catalog = NewCatalogService(e.inventory)
	e.reports = NewReportService(e.inventory, e.ledger, a.Users, a.Employees, clock, cfg.DefaultSalary)
	return e
}

// Load reads inventory and ledger from their stores. Both are attempted; failures are
// joined. The engine stays usable afterwards: a failed inventory load leaves it empty,
// a failed ledger load leaves it as it was.
func (e *Engine) Load() error {
	var errs []error
	if err := e.inventory.Load(); err != nil {
		errs = append(errs, err)
	}
	if err := e.ledger.Load(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Save persists inventory and ledger.
func (e *Engine) Save() error {
	if err := e.inventory.Save(); err != nil {
		return err
	}
	if err := e.ledger.Save(); err != nil {
		return fmt.Errorf("inventory saved, ledger not: %w", err)
	}
	return nil
}

func (e *Engine) Config() domain.Config               { return e.cfg }
func (e *Engine) Clock() domain.Clock                 { return e.clock }
func (e *Engine) Inventory() *domain.Inventory        { return e.inventory }
func (e *Engine) Ledger() *domain.Ledger              { return e.ledger }
func (e *Engine) Users() domain.UserDirectory         { return e.users }
func (e *Engine) Suppliers() domain.SupplierDirectory { return e.suppliers }
func (e *Engine) Employees() domain.EmployeeDirectory { return e.employees }
func (e *Engine) Checkout() *CheckoutService          { return e.checkout }
func (e *Engine) Catalog() *CatalogService            { return e.catalog }
func (e *Engine) Reports() *ReportService             { return e.reports }
