package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/tillbook/tillbook/internal/adapters/outbound/catalogfile"
	"github.com/tillbook/tillbook/internal/adapters/outbound/config"
	"github.com/tillbook/tillbook/internal/adapters/outbound/directory"
	"github.com/tillbook/tillbook/internal/adapters/outbound/ledgerfile"
	"github.com/tillbook/tillbook/internal/adapters/outbound/receipt"
	"github.com/tillbook/tillbook/internal/application"
	"github.com/tillbook/tillbook/internal/domain"
)

// openEngine loads configuration, wires the file adapters and loads the stores.
// Load problems are logged and the engine is returned anyway.
func openEngine(opts *rootOptions) (*application.Engine, error) {
	cfg, err := config.New().Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	eng := application.NewEngine(cfg, application.Adapters{
		InventoryStore: catalogfile.New(cfg.InventoryPath()),
		LedgerStore:    ledgerfile.New(cfg.LedgerPath()),
		Receipts:       receipt.New(cfg.ReceiptsDir, cfg.ReceiptNaming),
		Users:          directory.NewUserFile(cfg.UsersPath()),
		Suppliers:      directory.NewSupplierFile(cfg.SuppliersPath()),
		Employees:      directory.NewEmployeeFile(cfg.EmployeesPath()),
		Clock:          domain.SystemClock{Location: loc},
	})
	if err := eng.Load(); err != nil {
		slog.Warn("engine loaded with errors", "err", err)
	}
	if !eng.Inventory().Loaded() {
		slog.Warn("catalog changes will not be saved until inventory loads", "path", cfg.InventoryPath())
	}
	return eng, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
