package domain_test

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/domain"
)

type memInventoryStore struct {
	records []domain.Item
	saves   int
	loadErr error
	saveErr error
}

func (m *memInventoryStore) Save(items []domain.Item) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records = append([]domain.Item(nil), items...)
	return nil
}

func (m *memInventoryStore) Load() ([]domain.Item, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]domain.Item(nil), m.records...), nil
}

type memLedgerStore struct {
	bills   []*domain.Bill
	saves   int
	loadErr error
	saveErr error
}

func (m *memLedgerStore) Save(bills []*domain.Bill) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.bills = bills
	return nil
}

func (m *memLedgerStore) Load() ([]*domain.Bill, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.bills, nil
}

type memReceipts struct {
	written []*domain.Bill
	err     error
}

func (m *memReceipts) Write(bill *domain.Bill) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.written = append(m.written, bill)
	return "receipt.txt", nil
}

var errDisk = errors.New("disk full")

func fixedClock(t time.Time) domain.Clock {
	return domain.ClockFunc(func() time.Time { return t })
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
