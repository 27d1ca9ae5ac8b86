// Package catalogfile stores the inventory as comma-delimited text, one item per line:
//
//	name,category,purchasePrice,sellingPrice,stockLevel
//
// Fields are not quoted or escaped, so names and categories cannot contain commas.
package catalogfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tillbook/tillbook/internal/adapters/outbound/filestore"
	"github.com/tillbook/tillbook/internal/domain"
)

const (
	fieldCount = 5
	delimiters = ",\r\n"
)

// Store implements domain.InventoryStore on a text file.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

var _ domain.InventoryStore = (*Store)(nil)

func (s *Store) Path() string { return s.path }

// Save rewrites the whole file.
func (s *Store) Save(items []domain.Item) error {
	var buf bytes.Buffer
	if err := Encode(&buf, items); err != nil {
		return err
	}
	return filestore.WriteAtomic(s.path, buf.Bytes())
}

// Load reads every well-formed record. A missing file is an empty catalog.
func (s *Store) Load() ([]domain.Item, error) {
	data, found, err := filestore.ReadOptional(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if !found {
		slog.Debug("inventory file not found, starting empty", "path", s.path)
		return nil, nil
	}
	items, skipped, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if skipped > 0 {
		slog.Warn("inventory loaded with skipped records", "path", s.path, "loaded", len(items), "skipped", skipped)
	}
	return items, nil
}

// Encode writes one record per item. Prices are written to the cent, so sub-cent
// precision is rounded away. Names or categories holding a comma or line break cannot
// be read back; they are written as-is with a warning.
func Encode(w io.Writer, items []domain.Item) error {
	for _, it := range items {
		if strings.ContainsAny(it.Name, delimiters) || strings.ContainsAny(it.Category, delimiters) {
			slog.Warn("inventory record will not load back", "name", it.Name, "category", it.Category)
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%d\n",
			it.Name, it.Category,
			it.PurchasePrice.StringFixed(2), it.SellingPrice.StringFixed(2),
			it.StockLevel)
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode parses records from r, skipping malformed lines with a warning. It returns the
// number of skipped lines. Lines have no length limit.
func Decode(r io.Reader) ([]domain.Item, int, error) {
	var (
		items   []domain.Item
		skipped int
		lineNo  int
	)
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, skipped, err
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) != "" {
			item, perr := parseRecord(line)
			if perr != nil {
				skipped++
				slog.Warn("skipping malformed inventory record", "line", lineNo, "err", perr)
			} else {
				items = append(items, item)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return items, skipped, nil
}

func parseRecord(line string) (domain.Item, error) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return domain.Item{}, fmt.Errorf("want %d fields, got %d", fieldCount, len(parts))
	}
	purchase, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return domain.Item{}, fmt.Errorf("purchase price %q: %w", parts[2], err)
	}
	selling, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		return domain.Item{}, fmt.Errorf("selling price %q: %w", parts[3], err)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return domain.Item{}, fmt.Errorf("stock level %q: %w", parts[4], err)
	}
	return domain.Item{
		Name:          parts[0],
		Category:      parts[1],
		PurchasePrice: purchase,
		SellingPrice:  selling,
		StockLevel:    stock,
	}, nil
}
