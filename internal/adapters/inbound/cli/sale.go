package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/tui"
	"github.com/tillbook/tillbook/internal/application"
)

func newSaleCmd(opts *rootOptions) *cobra.Command {
	var (
		cashier    string
		items      []string
		abandon    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Ring up a bill",
		Long: `Open a bill for a cashier, add each --item as name=quantity, and finalize it.
A quantity is accepted only when it is positive and no larger than the stock left.
All lines are checked first; if any is rejected no stock changes and no bill is recorded.
With --abandon the bill is discarded instead of finalized.`,
		Example: "  tillbook sale --cashier c1 --item Apple=7 --item Banana=5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseSaleLines(items)
			if err != nil {
				return err
			}

			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			sale := eng.Checkout().Open(cashier)
			// every line is admitted before any stock moves
			if err := sale.Check(lines); err != nil {
				_ = sale.Abandon()
				return fmt.Errorf("sale failed: %w", err)
			}
			for _, l := range lines {
				if _, err := sale.Add(l.Name, l.Quantity); err != nil {
					_ = sale.Abandon()
					return fmt.Errorf("sale failed: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if abandon {
				if err := sale.Abandon(); err != nil {
					return fmt.Errorf("abandon failed: %w", err)
				}
				fmt.Fprintf(out, "Bill %d abandoned (%s)\n", sale.Bill().Number(), eng.Checkout().Mode())
				return nil
			}

			path, err := sale.Finalize()
			if err != nil && sale.Bill().EntryID() == "" {
				return fmt.Errorf("sale failed: %w", err)
			}
			if jsonOutput {
				if werr := writeJSON(out, sale.Bill().Summary()); werr != nil {
					return werr
				}
			} else {
				fmt.Fprint(out, tui.RenderBill(sale.Bill()))
				if path != "" {
					fmt.Fprintf(out, "Receipt: %s\n", path)
				}
			}
			if err != nil {
				return fmt.Errorf("bill %d recorded with errors: %w", sale.Bill().Number(), err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cashier, "cashier", "", "Cashier username")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Line as name=quantity (repeatable)")
	cmd.Flags().BoolVar(&abandon, "abandon", false, "Discard the bill instead of finalizing it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the bill as JSON")
	return cmd
}

func parseSaleLines(items []string) ([]application.LineRequest, error) {
	lines := make([]application.LineRequest, 0, len(items))
	for _, raw := range items {
		i := strings.LastIndex(raw, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid --item %q (want name=quantity)", raw)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in --item %q: %w", raw, err)
		}
		lines = append(lines, application.LineRequest{Name: strings.TrimSpace(raw[:i]), Quantity: qty})
	}
	return lines, nil
}
