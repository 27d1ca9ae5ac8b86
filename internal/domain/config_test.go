package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/domain"
)

func TestDefaultConfig_LegacyBehaviour(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.PolicyLegacyPermissive, cfg.Validation)
	assert.Equal(t, domain.CommitImmediate, cfg.CommitMode)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.Equal(t, int64(3000), cfg.DefaultSalary)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Paths(t *testing.T) {
	cfg := domain.Config{DataDir: "/srv/shop"}
	assert.Equal(t, filepath.Join("/srv/shop", "inventory.txt"), cfg.InventoryPath())
	assert.Equal(t, filepath.Join("/srv/shop", "bills_data.bin"), cfg.LedgerPath())
	assert.Equal(t, filepath.Join("/srv/shop", "users.txt"), cfg.UsersPath())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.Config
		wantErr string
	}{
		{"empty is valid", domain.Config{}, ""},
		{"unknown policy", domain.Config{Validation: "lenient"}, "unknown validation"},
		{"unknown commit mode", domain.Config{CommitMode: "lazy"}, "unknown commit_mode"},
		{"unknown naming", domain.Config{ReceiptNaming: "uuid"}, "unknown receipt_naming"},
		{"negative threshold", domain.Config{LowStockThreshold: -1}, "low_stock_threshold"},
		{"negative salary", domain.Config{DefaultSalary: -10}, "default_salary"},
		{"bad timezone", domain.Config{Timezone: "Mars/Olympus"}, "unknown timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_LocationDefaultsToLocal(t *testing.T) {
	loc, err := domain.Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = domain.Config{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
