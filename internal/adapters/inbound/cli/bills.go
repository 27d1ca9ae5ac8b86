package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/tui"
	"github.com/tillbook/tillbook/internal/application"
	"github.com/tillbook/tillbook/internal/domain"
)

func newBillsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Query the bill ledger",
	}
	cmd.AddCommand(newBillsTodayCmd(opts))
	cmd.AddCommand(newBillsRangeCmd(opts))
	cmd.AddCommand(newBillsAllCmd(opts))
	return cmd
}

func newBillsTodayCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List bills created today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			return printBills(cmd, "Today's bills", eng.Ledger().TodayBills(), jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newBillsRangeCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "range <from> <to>",
		Short: "List bills created between two dates (YYYY-MM-DD, inclusive)",
		Long:  "List bills whose creation date lies between from and to, both inclusive. A from date after the to date matches nothing.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			from, to, err := parseRange(eng, args[0], args[1])
			if err != nil {
				return err
			}
			bills, err := eng.Ledger().BillsWithinDateRange(from, to)
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}
			return printBills(cmd, fmt.Sprintf("Bills %s .. %s", args[0], args[1]), bills, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newBillsAllCmd(opts *rootOptions) *cobra.Command {
	var (
		cashier    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every bill in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			bills := eng.Ledger().Bills()
			if cashier != "" {
				bills = eng.Ledger().BillsByCashier(cashier)
			}
			return printBills(cmd, "All bills", bills, jsonOutput)
		},
	}
	cmd.Flags().StringVar(&cashier, "cashier", "", "Only bills of this cashier")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printBills(cmd *cobra.Command, title string, bills []*domain.Bill, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), domain.Summaries(bills))
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderBills(title, bills))
	return nil
}

// parseRange parses two YYYY-MM-DD dates in the engine's time zone.
func parseRange(eng *application.Engine, from, to string) (time.Time, time.Time, error) {
	loc := eng.Clock().Now().Location()
	start, err := domain.ParseDay(from, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := domain.ParseDay(to, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// defaultRange resolves optional --from/--to flags. Missing bounds default to one
// month before today and today.
func defaultRange(eng *application.Engine, from, to string) (time.Time, time.Time, error) {
	now := eng.Clock().Now()
	if to == "" {
		to = now.Format(domain.DayLayout)
	}
	if from == "" {
		from = now.AddDate(0, -1, 0).Format(domain.DayLayout)
	}
	return parseRange(eng, from, to)
}
