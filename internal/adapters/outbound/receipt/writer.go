// Package receipt writes one human-readable text file per finalized bill.
package receipt

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tillbook/tillbook/internal/adapters/outbound/filestore"
	"github.com/tillbook/tillbook/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var unsafeChars = regexp.MustCompile(`[\\/:*?"<>|\s]`)

// Writer implements domain.ReceiptWriter.
type Writer struct {
	dir    string
	naming domain.ReceiptNaming
}

func New(dir string, naming domain.ReceiptNaming) *Writer {
	if naming == "" {
		naming = domain.ReceiptNamingCashier
	}
	return &Writer{dir: dir, naming: naming}
}

var _ domain.ReceiptWriter = (*Writer)(nil)

func (w *Writer) Write(bill *domain.Bill) (string, error) {
	path := filepath.Join(w.dir, FileName(bill, w.naming))
	if err := filestore.WriteAtomic(path, []byte(Format(bill))); err != nil {
		return "", err
	}
	return path, nil
}

// FileName derives the receipt name from the bill number and, for cashier naming, the
// bill date and cashier.
func FileName(bill *domain.Bill, naming domain.ReceiptNaming) string {
	if naming == domain.ReceiptNamingPlain {
		return fmt.Sprintf("Bill%d.txt", bill.Number())
	}
	name := fmt.Sprintf("Bill_%d_%s", bill.Number(), bill.CreatedAt().Format(domain.DayLayout))
	if bill.Cashier() != "" {
		name += "_" + bill.Cashier()
	}
	return Sanitize(name) + ".txt"
}

// Sanitize replaces characters that are unsafe in file names with underscores.
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

func Format(bill *domain.Bill) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bill Number: %d\n", bill.Number())
	if bill.Cashier() != "" {
		fmt.Fprintf(&b, "Cashier: %s\n", bill.Cashier())
	}
	fmt.Fprintf(&b, "Date: %s\n", bill.CreatedAt().Format(timestampLayout))
	b.WriteString("Items Purchased:\n")
	for _, l := range bill.Lines() {
		fmt.Fprintf(&b, "- %s\n", l)
	}
	fmt.Fprintf(&b, "Total Amount: $%s\n", bill.Total().StringFixed(2))
	return b.String()
}
