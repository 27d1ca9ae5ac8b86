package domain

// InventoryStore persists the whole catalog. Load returns the well-formed records in
// stored order; a missing store yields no records.
type InventoryStore interface {
	Save(items []Item) error
	Load() ([]Item, error)
}

// LedgerStore persists the whole bill ledger as one blob. A missing store loads as an
// empty ledger; an undecodable one returns an error wrapping ErrCorruptLedger.
type LedgerStore interface {
	Save(bills []*Bill) error
	Load() ([]*Bill, error)
}

// ReceiptWriter renders a finalized bill for people and returns where it went.
type ReceiptWriter interface {
	Write(bill *Bill) (string, error)
}

// ConfigLoader loads engine configuration.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// UserDirectory resolves cashier identities and roles. Read-only.
type UserDirectory interface {
	List() ([]User, error)
	Find(username string) (User, bool, error)
}

type SupplierDirectory interface {
	List() ([]Supplier, error)
	Add(supplier Supplier) error
}

type EmployeeDirectory interface {
	List() ([]Employee, error)
	Add(employee Employee) error
	FindByUsername(username string) (Employee, bool, error)
}
