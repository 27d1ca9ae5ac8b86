package domain

import (
	"fmt"
	"strings"
)

// recordDelimiters cannot appear in a stored catalog field.
const recordDelimiters = ",\r\n"

// ValidationPolicy selects how numeric inputs are checked.
type ValidationPolicy string

const (
	// PolicyLegacyPermissive accepts negative stock, prices and quantities.
	PolicyLegacyPermissive ValidationPolicy = "legacy-permissive"
	// PolicyStrict rejects negative stock and prices, and non-positive quantities.
	PolicyStrict ValidationPolicy = "strict"
)

var ValidPolicies = []ValidationPolicy{PolicyLegacyPermissive, PolicyStrict}

func (p ValidationPolicy) strict() bool { return p == PolicyStrict }

// CheckItem validates a catalog entry before it is added.
func (p ValidationPolicy) CheckItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is required", ErrInvalidArgument)
	}
	if !p.strict() {
		return nil
	}
	if item.Name == "" {
		return fmt.Errorf("%w: item name is empty", ErrInvalidArgument)
	}
	if strings.ContainsAny(item.Name, recordDelimiters) || strings.ContainsAny(item.Category, recordDelimiters) {
		return fmt.Errorf("%w: %q: name and category cannot hold commas or line breaks", ErrInvalidArgument, item.Name)
	}
	if item.PurchasePrice.IsNegative() || item.SellingPrice.IsNegative() {
		return fmt.Errorf("%w: negative price for %q", ErrInvalidArgument, item.Name)
	}
	return p.CheckStockLevel(item.StockLevel)
}

func (p ValidationPolicy) CheckStockLevel(level int) error {
	if p.strict() && level < 0 {
		return fmt.Errorf("%w: negative stock level %d", ErrInvalidArgument, level)
	}
	return nil
}

func (p ValidationPolicy) CheckQuantity(qty int) error {
	if p.strict() && qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidArgument, qty)
	}
	return nil
}

// CommitMode selects when sale stock decrements become durable.
type CommitMode string

const (
	// CommitImmediate decrements and persists stock as each line is admitted.
	// Abandoning a sale does not restore the stock.
	CommitImmediate CommitMode = "immediate"
	// CommitStaged holds decrements on the sale and applies them at finalize,
	// together with the ledger append. Abandoning discards them.
	CommitStaged CommitMode = "staged"
)

var ValidCommitModes = []CommitMode{CommitImmediate, CommitStaged}
