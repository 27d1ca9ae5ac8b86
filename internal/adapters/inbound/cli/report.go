package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/tui"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manager and administrator reports",
	}
	cmd.AddCommand(newReportSalesCmd(opts))
	cmd.AddCommand(newReportInventoryCmd(opts))
	cmd.AddCommand(newReportFinancialsCmd(opts))
	cmd.AddCommand(newReportCashierCmd(opts))
	return cmd
}

func newReportSalesCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Revenue per cashier with a TOTAL row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			start, end, err := defaultRange(eng, from, to)
			if err != nil {
				return err
			}
			report, err := eng.Reports().SalesByCashier(start, end)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSalesReport(report))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD (default one month ago)")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newReportInventoryCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Stock valued at selling price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			report := eng.Reports().InventoryStatistics()
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventoryReport(report))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newReportFinancialsCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "financials",
		Short: "Revenue, stock cost, margin and salaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			start, end, err := defaultRange(eng, from, to)
			if err != nil {
				return err
			}
			summary, err := eng.Reports().Financials(start, end)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFinancials(summary))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD (default one month ago)")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newReportCashierCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "cashier <username>",
		Short: "A cashier's bills and total for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			day := eng.Reports().CashierDay(args[0])
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), day)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCashierDay(day))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
