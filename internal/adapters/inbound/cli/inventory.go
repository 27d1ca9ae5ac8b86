package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/tui"
	"github.com/tillbook/tillbook/internal/domain"
)

func newInventoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage the catalog",
	}
	cmd.AddCommand(newInventoryListCmd(opts))
	cmd.AddCommand(newInventoryFindCmd(opts))
	cmd.AddCommand(newInventoryAddCmd(opts))
	cmd.AddCommand(newInventorySetStockCmd(opts))
	cmd.AddCommand(newInventoryRestockCmd(opts))
	cmd.AddCommand(newInventoryModifyCmd(opts))
	cmd.AddCommand(newInventoryRemoveCmd(opts))
	cmd.AddCommand(newInventoryAddCategoryCmd(opts))
	cmd.AddCommand(newInventoryLowStockCmd(opts))
	return cmd
}

func newInventoryListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all items in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			items := eng.Catalog().Items()
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInventory(items, eng.Config().LowStockThreshold))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newInventoryFindCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Look up an item by name (case-insensitive, first match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			item, ok := eng.Catalog().Find(args[0])
			if !ok {
				return fmt.Errorf("%q: %w", args[0], domain.ErrItemNotFound)
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), item)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderItem(item))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newInventoryAddCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		purchase string
		selling  string
		stock    int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Append an item to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			purchasePrice, err := parseMoney("purchase", purchase)
			if err != nil {
				return err
			}
			sellingPrice, err := parseMoney("selling", selling)
			if err != nil {
				return err
			}

			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			item := domain.NewItem(args[0], category, purchasePrice, sellingPrice, stock)
			if err := eng.Catalog().AddItem(item); err != nil {
				return fmt.Errorf("add failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", item.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Item category")
	cmd.Flags().StringVar(&purchase, "purchase", "0", "Purchase price")
	cmd.Flags().StringVar(&selling, "selling", "0", "Selling price")
	cmd.Flags().IntVar(&stock, "stock", 0, "Initial stock level")
	return cmd
}

func newInventorySetStockCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-stock <name> <level>",
		Short: "Set an item's stock level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid level %q: %w", args[1], err)
			}
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			ok, err := eng.Catalog().SetStock(args[0], level)
			return reportUpdate(cmd, args[0], ok, err, fmt.Sprintf("stock set to %d", level))
		},
	}
}

func newInventoryRestockCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restock <name> <quantity>",
		Short: "Add received quantity to an item's stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			ok, err := eng.Catalog().Restock(args[0], qty)
			return reportUpdate(cmd, args[0], ok, err, fmt.Sprintf("restocked by %d", qty))
		},
	}
}

func newInventoryModifyCmd(opts *rootOptions) *cobra.Command {
	var (
		stock   int
		selling string
	)

	cmd := &cobra.Command{
		Use:   "modify <name>",
		Short: "Set an item's stock level and selling price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseMoney("selling", selling)
			if err != nil {
				return err
			}
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			ok, err := eng.Catalog().ModifyItem(args[0], stock, price)
			return reportUpdate(cmd, args[0], ok, err, "modified")
		},
	}
	cmd.Flags().IntVar(&stock, "stock", 0, "New stock level")
	cmd.Flags().StringVar(&selling, "selling", "", "New selling price")
	_ = cmd.MarkFlagRequired("stock")
	_ = cmd.MarkFlagRequired("selling")
	return cmd
}

func newInventoryRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove the first item matching name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			ok, err := eng.Catalog().RemoveItem(args[0])
			return reportUpdate(cmd, args[0], ok, err, "removed")
		},
	}
}

func newInventoryAddCategoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-category <category>",
		Short: "Introduce a category with a placeholder item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			item, err := eng.Catalog().AddCategory(args[0])
			if err != nil {
				return fmt.Errorf("add-category failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", item.Name)
			return nil
		},
	}
}

func newInventoryLowStockCmd(opts *rootOptions) *cobra.Command {
	var (
		threshold  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List items below the low-stock threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = eng.Config().LowStockThreshold
			}
			items := eng.Catalog().LowStock(threshold)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLowStock(items, threshold))
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Stock level below which an item is listed (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func reportUpdate(cmd *cobra.Command, name string, ok bool, err error, what string) error {
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("%q: %w", name, domain.ErrItemNotFound)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, what)
	return nil
}

func parseMoney(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s price %q: %w", field, s, err)
	}
	return d, nil
}
