package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ledger is the bill store: every finalized bill from every cashier, persisted as one
// unit. Cashier partitioning happens at query time only.
type Ledger struct {
	bills    []*Bill
	store    LedgerStore
	receipts ReceiptWriter
	clock    Clock
}

func NewLedger(store LedgerStore, receipts ReceiptWriter, clock Clock) *Ledger {
	return &Ledger{store: store, receipts: receipts, clock: clock}
}

// AddBill finalizes bill, appends it and persists the whole ledger. A nil bill is
// ignored. When the save fails the bill stays in memory and the error wraps ErrPersistence.
func (l *Ledger) AddBill(bill *Bill) error {
	if bill == nil {
		slog.Debug("ignoring absent bill")
		return nil
	}
	if bill.finalized {
		return fmt.Errorf("bill %d: %w", bill.number, ErrBillFinalized)
	}
	bill.finalize(uuid.NewString())
	l.bills = append(l.bills, bill)
	return l.Save()
}

// Save rewrites the ledger store from memory.
func (l *Ledger) Save() error {
	if err := l.store.Save(l.Bills()); err != nil {
		return fmt.Errorf("%w: saving ledger: %w", ErrPersistence, err)
	}
	return nil
}

// Load replaces the in-memory ledger with the stored one. On failure the current
// contents are kept.
func (l *Ledger) Load() error {
	bills, err := l.store.Load()
	if err != nil {
		if errors.Is(err, ErrCorruptLedger) {
			return err
		}
		return fmt.Errorf("%w: loading ledger: %w", ErrPersistence, err)
	}
	l.bills = bills
	return nil
}

// Bills returns every bill in append order.
func (l *Ledger) Bills() []*Bill {
	out := make([]*Bill, len(l.bills))
	copy(out, l.bills)
	return out
}

func (l *Ledger) Len() int { return len(l.bills) }

// TodayBills returns the bills created on the clock's current date.
func (l *Ledger) TodayBills() []*Bill {
	now := l.clock.Now()
	loc := now.Location()
	today := dayOf(now, loc)

	var out []*Bill
	for _, b := range l.bills {
		if dayOf(b.createdAt, loc).Equal(today) {
			out = append(out, b)
		}
	}
	return out
}

// BillsWithinDateRange returns bills whose creation date lies in [start, end], both
// inclusive and compared as calendar dates. Each bound is read as the date it names in
// its own location; creation times are read in the clock's location. Zero bounds are
// rejected. A start after end is a valid call with no matches.
func (l *Ledger) BillsWithinDateRange(start, end time.Time) ([]*Bill, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: date range needs both bounds", ErrInvalidArgument)
	}
	loc := l.clock.Now().Location()
	from, to := calendarDay(start), calendarDay(end)

	out := []*Bill{}
	for _, b := range l.bills {
		day := dayOf(b.createdAt, loc)
		if !day.Before(from) && !day.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

// BillsByCashier filters by cashier, ignoring case. An empty name matches nothing.
func (l *Ledger) BillsByCashier(cashier string) []*Bill {
	var out []*Bill
	for _, b := range l.bills {
		if SameCashier(b.cashier, cashier) {
			out = append(out, b)
		}
	}
	return out
}

// NextBillNumber continues the cashier's counter past the highest number already in
// the ledger, starting at 1.
func (l *Ledger) NextBillNumber(cashier string) int {
	highest := 0
	for _, b := range l.bills {
		if strings.EqualFold(b.cashier, cashier) && b.number > highest {
			highest = b.number
		}
	}
	return highest + 1
}

// SaveBillToFile writes the human-readable receipt for bill and returns its path.
func (l *Ledger) SaveBillToFile(bill *Bill) (string, error) {
	if bill == nil {
		return "", fmt.Errorf("%w: receipt needs a bill", ErrInvalidArgument)
	}
	path, err := l.receipts.Write(bill)
	if err != nil {
		return "", fmt.Errorf("%w: writing receipt for bill %d: %w", ErrPersistence, bill.number, err)
	}
	return path, nil
}

// SameCashier compares cashier names without case. Empty names never match.
func SameCashier(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}
