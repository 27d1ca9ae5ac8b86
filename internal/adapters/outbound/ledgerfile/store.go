// Package ledgerfile persists the bill ledger as a single gob-encoded blob. The format
// is private to this package.
package ledgerfile

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/adapters/outbound/filestore"
	"github.com/tillbook/tillbook/internal/domain"
)

const formatVersion = 1

type ledgerFile struct {
	Version int
	Bills   []billRecord
}

type billRecord struct {
	EntryID   string
	Number    int
	Cashier   string
	CreatedAt time.Time
	Lines     []lineRecord
}

type lineRecord struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CorruptSuffix is appended to an unreadable ledger file when it is set aside.
const CorruptSuffix = ".corrupt"

// Store implements domain.LedgerStore. After a Load that finds the file unreadable,
// the next Save first moves that file aside instead of overwriting it.
type Store struct {
	path    string
	corrupt bool
}

func New(path string) *Store { return &Store{path: path} }

var _ domain.LedgerStore = (*Store)(nil)

func (s *Store) Save(bills []*domain.Bill) error {
	if s.corrupt {
		if err := s.setAside(); err != nil {
			return err
		}
	}

	file := ledgerFile{Version: formatVersion, Bills: make([]billRecord, 0, len(bills))}
	for _, b := range bills {
		rec := billRecord{
			EntryID:   b.EntryID(),
			Number:    b.Number(),
			Cashier:   b.Cashier(),
			CreatedAt: b.CreatedAt(),
		}
		for _, l := range b.Lines() {
			rec.Lines = append(rec.Lines, lineRecord{Name: l.Name, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
		}
		file.Bills = append(file.Bills, rec)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(file); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return filestore.WriteAtomic(s.path, buf.Bytes())
}

// Load decodes the ledger. A missing file is an empty ledger.
func (s *Store) Load() ([]*domain.Bill, error) {
	data, found, err := filestore.ReadOptional(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if !found {
		slog.Debug("ledger file not found, starting empty", "path", s.path)
		return nil, nil
	}

	var file ledgerFile
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&file); err != nil {
		s.corrupt = true
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorruptLedger, s.path, err)
	}
	if file.Version != formatVersion {
		s.corrupt = true
		return nil, fmt.Errorf("%w: %s: unsupported version %d", domain.ErrCorruptLedger, s.path, file.Version)
	}
	s.corrupt = false

	bills := make([]*domain.Bill, 0, len(file.Bills))
	for _, rec := range file.Bills {
		lines := make([]domain.BillLine, 0, len(rec.Lines))
		for _, l := range rec.Lines {
			lines = append(lines, domain.BillLine{Name: l.Name, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
		}
		bills = append(bills, domain.RestoreBill(rec.EntryID, rec.Number, rec.Cashier, rec.CreatedAt, lines))
	}
	return bills, nil
}

// setAside renames the unreadable ledger to the first free name ending in
// CorruptSuffix, so earlier copies are never replaced.
func (s *Store) setAside() error {
	dest := s.path + CorruptSuffix
	for n := 1; ; n++ {
		if _, err := os.Stat(dest); errors.Is(err, os.ErrNotExist) {
			break
		}
		dest = fmt.Sprintf("%s%s.%d", s.path, CorruptSuffix, n)
	}
	if err := os.Rename(s.path, dest); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("setting aside corrupt ledger %s: %w", s.path, err)
	}
	slog.Warn("corrupt ledger set aside", "path", s.path, "moved_to", dest)
	s.corrupt = false
	return nil
}
