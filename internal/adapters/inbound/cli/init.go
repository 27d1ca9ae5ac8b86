package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/config"
	"github.com/tillbook/tillbook/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		commitMode string
		validation string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .tillbook.yaml configuration file",
		Long:  "Create a .tillbook.yaml with the default store layout and the chosen commit mode and validation policy.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.CommitMode = domain.CommitMode(commitMode)
			cfg.Validation = domain.ValidationPolicy(validation)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&commitMode, "commit-mode", string(domain.CommitImmediate), "Stock commit mode (immediate, staged)")
	cmd.Flags().StringVar(&validation, "validation", string(domain.PolicyLegacyPermissive), "Validation policy (legacy-permissive, strict)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .tillbook.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) string {
	return fmt.Sprintf(`# tillbook configuration

# inventory.txt, bills_data.bin, users.txt, suppliers.yaml and employees.yaml live here
data_dir: %s

# one text receipt per finalized bill
receipts_dir: %s
# plain:   Bill<N>.txt
# cashier: Bill_<N>_<YYYY-MM-DD>_<cashier>.txt
receipt_naming: %s

# legacy-permissive accepts negative stock, prices and quantities; strict rejects them
validation: %s

# immediate: stock is decremented and saved as each line is added; abandoned bills keep it
# staged:    stock is decremented when the bill is finalized, together with the ledger
commit_mode: %s

low_stock_threshold: %d

# salary assumed for users without an employee record
default_salary: %d

timezone: %s
`, cfg.DataDir, cfg.ReceiptsDir, cfg.ReceiptNaming, cfg.Validation, cfg.CommitMode,
		cfg.LowStockThreshold, cfg.DefaultSalary, cfg.Timezone)
}
