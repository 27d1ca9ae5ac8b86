package application

import (
	"strings"

	"github.com/tillbook/tillbook/internal/domain"
)

// CheckoutService opens sales against the shared inventory and ledger.
type CheckoutService struct {
	inventory *domain.Inventory
	ledger    *domain.Ledger
	clock     domain.Clock
	mode      domain.CommitMode

	// next bill number per cashier, lower-cased
	counters map[string]int
}

func NewCheckoutService(inventory *domain.Inventory, ledger *domain.Ledger, clock domain.Clock, mode domain.CommitMode) *CheckoutService {
	if mode == "" {
		mode = domain.CommitImmediate
	}
	return &CheckoutService{
		inventory: inventory,
		ledger:    ledger,
		clock:     clock,
		mode:      mode,
		counters:  make(map[string]int),
	}
}

func (s *CheckoutService) Mode() domain.CommitMode { return s.mode }

// Open starts a sale for cashier with the cashier's next bill number.
func (s *CheckoutService) Open(cashier string) *Sale {
	key := strings.ToLower(cashier)
	number := s.ledger.NextBillNumber(cashier)
	if n := s.counters[key]; n > number {
		number = n
	}
	s.counters[key] = number + 1

	return &Sale{
		svc:   s,
		bill:  domain.NewBill(number, cashier, s.clock),
		state: SaleOpen,
	}
}
