package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BillLine is a snapshot of one sold item. Later changes to the item do not reach it.
type BillLine struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Amount is UnitPrice × Quantity. Negative quantities yield a negative amount.
func (l BillLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l BillLine) String() string {
	return fmt.Sprintf("%s (Qty: %d, Price: $%s)", l.Name, l.Quantity, l.UnitPrice.StringFixed(2))
}

// Bill is one transaction of a cashier. Numbers come from the cashier's own counter and
// are not unique across the ledger; EntryID is, once the ledger has accepted the bill.
type Bill struct {
	entryID   string
	number    int
	cashier   string
	createdAt time.Time
	lines     []BillLine
	finalized bool
}

// NewBill starts an empty bill stamped with the clock's current time. An empty cashier
// is allowed; such a bill matches no cashier filter.
func NewBill(number int, cashier string, clock Clock) *Bill {
	return &Bill{number: number, cashier: cashier, createdAt: clock.Now()}
}

// RestoreBill rebuilds a finalized bill read back from the ledger store.
func RestoreBill(entryID string, number int, cashier string, createdAt time.Time, lines []BillLine) *Bill {
	return &Bill{
		entryID:   entryID,
		number:    number,
		cashier:   cashier,
		createdAt: createdAt,
		lines:     append([]BillLine(nil), lines...),
		finalized: true,
	}
}

// AddLine appends a snapshot of item at its current selling price. The quantity is
// taken as given, including zero and negative values.
func (b *Bill) AddLine(item *Item, quantity int) (BillLine, error) {
	if item == nil {
		return BillLine{}, fmt.Errorf("%w: bill line needs an item", ErrInvalidArgument)
	}
	if b.finalized {
		return BillLine{}, fmt.Errorf("bill %d: %w", b.number, ErrBillFinalized)
	}
	line := BillLine{Name: item.Name, UnitPrice: item.SellingPrice, Quantity: quantity}
	b.lines = append(b.lines, line)
	return line, nil
}

// Total sums every line amount. It is recomputed on each call.
func (b *Bill) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.lines {
		total = total.Add(l.Amount())
	}
	return total
}

func (b *Bill) Lines() []BillLine    { return append([]BillLine(nil), b.lines...) }
func (b *Bill) Len() int             { return len(b.lines) }
func (b *Bill) Number() int          { return b.number }
func (b *Bill) Cashier() string      { return b.cashier }
func (b *Bill) CreatedAt() time.Time { return b.createdAt }
func (b *Bill) EntryID() string      { return b.entryID }
func (b *Bill) Finalized() bool      { return b.finalized }

// Summary flattens the bill for JSON output.
func (b *Bill) Summary() BillSummary {
	return BillSummary{
		EntryID:   b.entryID,
		Number:    b.number,
		Cashier:   b.cashier,
		CreatedAt: b.createdAt,
		Lines:     b.Lines(),
		Total:     b.Total(),
	}
}

func (b *Bill) finalize(entryID string) {
	b.entryID = entryID
	b.finalized = true
}

// BillSummary is the exported view of a bill.
type BillSummary struct {
	EntryID   string          `json:"entry_id"`
	Number    int             `json:"number"`
	Cashier   string          `json:"cashier"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []BillLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
}

func Summaries(bills []*Bill) []BillSummary {
	out := make([]BillSummary, 0, len(bills))
	for _, b := range bills {
		out = append(out, b.Summary())
	}
	return out
}
