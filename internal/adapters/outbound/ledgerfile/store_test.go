package ledgerfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/adapters/outbound/ledgerfile"
	"github.com/tillbook/tillbook/internal/domain"
)

func TestStore_RoundTripPreservesTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills_data.bin")
	store := ledgerfile.New(path)

	createdAt := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	bill := domain.RestoreBill("e-1", 3, "c1", createdAt, []domain.BillLine{
		{Name: "Apple", UnitPrice: decimal.RequireFromString("1.00"), Quantity: 7},
		{Name: "Banana", UnitPrice: decimal.RequireFromString("0.80"), Quantity: 5},
	})
	require.NoError(t, store.Save([]*domain.Bill{bill}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.Equal(t, "e-1", got.EntryID())
	assert.Equal(t, 3, got.Number())
	assert.Equal(t, "c1", got.Cashier())
	assert.True(t, createdAt.Equal(got.CreatedAt()))
	assert.Equal(t, bill.Total().String(), got.Total().String())
	assert.Equal(t, "11.00", got.Total().StringFixed(2))
}

func TestStore_MissingFileIsEmptyLedger(t *testing.T) {
	bills, err := ledgerfile.New(filepath.Join(t.TempDir(), "none.bin")).Load()
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestStore_CorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills_data.bin")
	require.NoError(t, os.WriteFile(path, []byte("definitely not gob"), 0644))

	_, err := ledgerfile.New(path).Load()
	assert.ErrorIs(t, err, domain.ErrCorruptLedger)
}

func TestStore_TruncatedBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills_data.bin")
	store := ledgerfile.New(path)
	bill := domain.RestoreBill("e-1", 1, "c1", time.Now(), []domain.BillLine{
		{Name: "Apple", UnitPrice: decimal.RequireFromString("1"), Quantity: 1},
	})
	require.NoError(t, store.Save([]*domain.Bill{bill}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0644))

	_, err = store.Load()
	assert.ErrorIs(t, err, domain.ErrCorruptLedger)
}

func TestStore_SaveAfterCorruptLoadKeepsUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills_data.bin")
	require.NoError(t, os.WriteFile(path, []byte("definitely not gob"), 0644))
	store := ledgerfile.New(path)

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptLedger)

	bill := domain.RestoreBill("e-1", 1, "c1", time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC), nil)
	require.NoError(t, store.Save([]*domain.Bill{bill}))

	kept, err := os.ReadFile(path + ledgerfile.CorruptSuffix)
	require.NoError(t, err)
	assert.Equal(t, "definitely not gob", string(kept))

	loaded, err := ledgerfile.New(path).Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	// a second corruption does not replace the first copy
	require.NoError(t, os.WriteFile(path, []byte("garbage again"), 0644))
	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptLedger)
	require.NoError(t, store.Save(nil))

	kept, err = os.ReadFile(path + ledgerfile.CorruptSuffix)
	require.NoError(t, err)
	assert.Equal(t, "definitely not gob", string(kept))
	again, err := os.ReadFile(path + ledgerfile.CorruptSuffix + ".1")
	require.NoError(t, err)
	assert.Equal(t, "garbage again", string(again))
}
