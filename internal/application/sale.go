package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/domain"
)

// SaleState is the lifecycle of an in-progress bill.
type SaleState string

const (
	SaleOpen      SaleState = "OPEN"
	SaleFinalized SaleState = "FINALIZED"
	SaleAbandoned SaleState = "ABANDONED"
)

type stagedDecrement struct {
	item *domain.Item
	qty  int
}

// Sale drives one bill from OPEN to FINALIZED or ABANDONED.
//
// In immediate mode every admitted line decrements and persists stock at once; the
// decrement survives an abandoned sale or a crash before finalize. In staged mode the
// decrements are held here and applied together with the ledger append.
type Sale struct {
	svc    *CheckoutService
	bill   *domain.Bill
	state  SaleState
	staged []stagedDecrement
}

func (s *Sale) Bill() *domain.Bill       { return s.bill }
func (s *Sale) State() SaleState         { return s.state }
func (s *Sale) Total() decimal.Decimal   { return s.bill.Total() }
func (s *Sale) Lines() []domain.BillLine { return s.bill.Lines() }

// Available is the stock of item not yet claimed by this sale.
func (s *Sale) Available(item *domain.Item) int {
	available := item.StockLevel
	for _, d := range s.staged {
		if d.item == item {
			available -= d.qty
		}
	}
	return available
}

// LineRequest names an item and the quantity wanted of it.
type LineRequest struct {
	Name     string
	Quantity int
}

// Check reports whether every request would be admitted by Add, with quantities for
// the same item summed against what is still available. Nothing changes either way.
func (s *Sale) Check(requests []LineRequest) error {
	if s.state != SaleOpen {
		return fmt.Errorf("bill %d is %s: %w", s.bill.Number(), s.state, domain.ErrSaleClosed)
	}
	wanted := map[*domain.Item]int{}
	for _, r := range requests {
		item, ok := s.svc.inventory.FindByName(r.Name)
		if !ok {
			return fmt.Errorf("%q: %w", r.Name, domain.ErrItemNotFound)
		}
		wanted[item] += r.Quantity
		available := s.Available(item)
		if r.Quantity <= 0 || wanted[item] > available {
			return fmt.Errorf("%w: %d x %q, %d in stock", domain.ErrQuantityRejected, wanted[item], item.Name, available)
		}
	}
	return nil
}

// Add admits qty units of the named item. The quantity must satisfy
// 0 < qty <= available stock; otherwise nothing changes.
func (s *Sale) Add(name string, qty int) (domain.BillLine, error) {
	if s.state != SaleOpen {
		return domain.BillLine{}, fmt.Errorf("bill %d is %s: %w", s.bill.Number(), s.state, domain.ErrSaleClosed)
	}
	item, ok := s.svc.inventory.FindByName(name)
	if !ok {
		return domain.BillLine{}, fmt.Errorf("%q: %w", name, domain.ErrItemNotFound)
	}
	available := s.Available(item)
	if qty <= 0 || qty > available {
		return domain.BillLine{}, fmt.Errorf("%w: %d x %q, %d in stock", domain.ErrQuantityRejected, qty, item.Name, available)
	}

	line, err := s.bill.AddLine(item, qty)
	if err != nil {
		return domain.BillLine{}, err
	}

	if s.svc.mode == domain.CommitStaged {
		s.staged = append(s.staged, stagedDecrement{item: item, qty: qty})
		return line, nil
	}

	item.StockLevel -= qty
	if err := s.svc.inventory.Save(); err != nil {
		// the line and the in-memory decrement stay; the caller may retry the save
		return line, err
	}
	return line, nil
}

// Finalize appends the bill to the ledger and writes its receipt. It returns the
// receipt path. An empty bill is rejected and the sale stays open.
//
// Persistence failures are returned after the in-memory state has been committed, so
// stock and ledger agree in memory and a later save can retry.
func (s *Sale) Finalize() (string, error) {
	if s.state != SaleOpen {
		return "", fmt.Errorf("bill %d is %s: %w", s.bill.Number(), s.state, domain.ErrSaleClosed)
	}
	if s.bill.Len() == 0 {
		return "", fmt.Errorf("bill %d: %w", s.bill.Number(), domain.ErrEmptyBill)
	}

	var errs []error
	if s.svc.mode == domain.CommitStaged {
		for _, d := range s.staged {
			d.item.StockLevel -= d.qty
		}
		s.staged = nil
		if err := s.svc.inventory.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.svc.ledger.AddBill(s.bill); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			return "", err
		}
		errs = append(errs, err)
	}
	s.state = SaleFinalized

	path, err := s.svc.ledger.SaveBillToFile(s.bill)
	if err != nil {
		errs = append(errs, err)
	}

	slog.Info("bill finalized",
		"bill", s.bill.Number(),
		"cashier", s.bill.Cashier(),
		"entry", s.bill.EntryID(),
		"total", s.bill.Total().StringFixed(2),
		"mode", s.svc.mode)
	return path, errors.Join(errs...)
}

// Abandon discards the bill. Staged decrements are dropped; immediate-mode
// decrements have already been persisted and are not restored.
func (s *Sale) Abandon() error {
	if s.state != SaleOpen {
		return fmt.Errorf("bill %d is %s: %w", s.bill.Number(), s.state, domain.ErrSaleClosed)
	}
	s.state = SaleAbandoned
	if s.svc.mode == domain.CommitStaged {
		s.staged = nil
		return nil
	}
	if s.bill.Len() > 0 {
		slog.Warn("sale abandoned after stock was decremented",
			"bill", s.bill.Number(), "cashier", s.bill.Cashier(), "lines", s.bill.Len())
	}
	return nil
}
