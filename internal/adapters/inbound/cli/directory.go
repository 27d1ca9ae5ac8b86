package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tillbook/tillbook/internal/adapters/outbound/tui"
	"github.com/tillbook/tillbook/internal/domain"
)

func newUsersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect the user directory",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users and roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			users, err := eng.Users().List()
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderUsers(users))
			return nil
		},
	})
	return cmd
}

func newSuppliersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "Manage suppliers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List suppliers and their products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			suppliers, err := eng.Suppliers().List()
			if err != nil {
				return fmt.Errorf("listing suppliers: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuppliers(suppliers))
			return nil
		},
	})
	cmd.AddCommand(newSuppliersAddCmd(opts))
	return cmd
}

func newSuppliersAddCmd(opts *rootOptions) *cobra.Command {
	var (
		contact  string
		products []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a supplier, or extend an existing one's products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			supplier := domain.Supplier{Name: args[0], ContactInfo: contact, Products: products}
			if err := eng.Suppliers().Add(supplier); err != nil {
				return fmt.Errorf("add failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved supplier %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&contact, "contact", "", "Contact details")
	cmd.Flags().StringSliceVar(&products, "product", nil, "Product supplied (repeatable or comma-separated)")
	return cmd
}

func newEmployeesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employee records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List employees and total salaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			employees, err := eng.Employees().List()
			if err != nil {
				return fmt.Errorf("listing employees: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderEmployees(employees))
			return nil
		},
	})
	cmd.AddCommand(newEmployeesAddCmd(opts))
	return cmd
}

func newEmployeesAddCmd(opts *rootOptions) *cobra.Command {
	var (
		emp    domain.Employee
		salary string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Record an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(salary)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", salary, err)
			}
			access, ok := domain.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q (valid: Administrator, Manager, Cashier)", role)
			}
			emp.Username = args[0]
			emp.Salary = amount
			emp.AccessLevel = access

			eng, err := openEngine(opts)
			if err != nil {
				return err
			}
			if err := eng.Employees().Add(emp); err != nil {
				return fmt.Errorf("add failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved employee %s\n", emp.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&emp.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&emp.DateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&emp.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&emp.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&salary, "salary", "0", "Monthly salary")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleCashier), "Access level")
	return cmd
}
