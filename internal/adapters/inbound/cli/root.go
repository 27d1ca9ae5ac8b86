package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/config"
	"github.com/tillbook/tillbook/pkg/logging"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries the persistent flags down to subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tillbook",
		Short: "Retail back office: inventory, billing and reports",
		Long:  "tillbook keeps the shop catalog, rings up bills against live stock, and reports on sales, stock and costs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			name := opts.logLevel
			if name == "" {
				name = os.Getenv("LOG_LEVEL")
			}
			level, err := logging.ParseLevel(name)
			if err != nil {
				return err
			}
			logging.SetupWithLevel(level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL, else warn)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newInventoryCmd(opts))
	cmd.AddCommand(newSaleCmd(opts))
	cmd.AddCommand(newBillsCmd(opts))
	cmd.AddCommand(newReportCmd(opts))
	cmd.AddCommand(newUsersCmd(opts))
	cmd.AddCommand(newSuppliersCmd(opts))
	cmd.AddCommand(newEmployeesCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
