package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// ReceiptNaming selects how receipt files are named.
type ReceiptNaming string

const (
	// ReceiptNamingPlain names receipts Bill<N>.txt.
	ReceiptNamingPlain ReceiptNaming = "plain"
	// ReceiptNamingCashier names receipts Bill_<N>_<date>_<cashier>.txt.
	ReceiptNamingCashier ReceiptNaming = "cashier"
)

var ValidReceiptNamings = []ReceiptNaming{ReceiptNamingPlain, ReceiptNamingCashier}

// Store file names inside Config.DataDir.
const (
	InventoryFileName = "inventory.txt"
	LedgerFileName    = "bills_data.bin"
	UsersFileName     = "users.txt"
	SuppliersFileName = "suppliers.yaml"
	EmployeesFileName = "employees.yaml"
)

// Config holds engine configuration loaded from .tillbook.yaml.
type Config struct {
	DataDir           string           `yaml:"data_dir"            json:"data_dir"`
	ReceiptsDir       string           `yaml:"receipts_dir"        json:"receipts_dir"`
	ReceiptNaming     ReceiptNaming    `yaml:"receipt_naming"      json:"receipt_naming"`
	Validation        ValidationPolicy `yaml:"validation"          json:"validation"`
	CommitMode        CommitMode       `yaml:"commit_mode"         json:"commit_mode"`
	LowStockThreshold int              `yaml:"low_stock_threshold" json:"low_stock_threshold"`
	DefaultSalary     int64            `yaml:"default_salary"      json:"default_salary"`
	Timezone          string           `yaml:"timezone"            json:"timezone"`
}

func DefaultConfig() Config {
	return Config{
		DataDir:           "data",
		ReceiptsDir:       "bills",
		ReceiptNaming:     ReceiptNamingCashier,
		Validation:        PolicyLegacyPermissive,
		CommitMode:        CommitImmediate,
		LowStockThreshold: 5,
		DefaultSalary:     3000,
		Timezone:          "Local",
	}
}

// Validate checks the raw values. Empty fields are allowed; they take defaults.
func (c Config) Validate() error {
	// 1. validation policy
	if c.Validation != "" && !contains(ValidPolicies, c.Validation) {
		return fmt.Errorf("unknown validation %q (valid: legacy-permissive, strict)", c.Validation)
	}

	// 2. commit mode
	if c.CommitMode != "" && !contains(ValidCommitModes, c.CommitMode) {
		return fmt.Errorf("unknown commit_mode %q (valid: immediate, staged)", c.CommitMode)
	}

	// 3. receipt naming
	if c.ReceiptNaming != "" && !contains(ValidReceiptNamings, c.ReceiptNaming) {
		return fmt.Errorf("unknown receipt_naming %q (valid: plain, cashier)", c.ReceiptNaming)
	}

	// 4. numeric bounds
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold must be >= 0, got %d", c.LowStockThreshold)
	}
	if c.DefaultSalary < 0 {
		return fmt.Errorf("default_salary must be >= 0, got %d", c.DefaultSalary)
	}

	// 5. timezone must resolve
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone. Empty and "Local" mean the process zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) InventoryPath() string { return filepath.Join(c.DataDir, InventoryFileName) }
func (c Config) LedgerPath() string    { return filepath.Join(c.DataDir, LedgerFileName) }
func (c Config) UsersPath() string     { return filepath.Join(c.DataDir, UsersFileName) }
func (c Config) SuppliersPath() string { return filepath.Join(c.DataDir, SuppliersFileName) }
func (c Config) EmployeesPath() string { return filepath.Join(c.DataDir, EmployeesFileName) }

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
