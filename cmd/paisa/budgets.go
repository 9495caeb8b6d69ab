package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/alert"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/budget"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/cli"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/currency"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budgets",
		Long:  `Set, list, and delete spending budgets. One budget exists per category and period.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var periodArg string

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set a budget for a category",
		Long: `Set a spending budget for an expense category. Setting a budget for a
(category, period) pair that already has one updates it in place.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID := currentUser()

			category, err := cli.ResolveCategory(args[0], catalog.ExpenseCategories)
			if err != nil {
				return err
			}

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("amount must be a number, got %q", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := alert.NewEngine(store)
			budgets := budget.NewService(store, engine)

			saved, err := budgets.Set(ctx, userID, category.ID, amount, model.BudgetPeriod(periodArg))
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget set: %s %s per %s",
				category.Name, currency.Format(saved.Amount, currency.BaseCurrency),
				periodNoun(saved.Period))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodArg, "period", "p", "monthly", "budget period (monthly, yearly)")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with current spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			userID := currentUser()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, transactions, err := loadBudgetInputs(ctx, store, userID)
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'paisa budget set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Period"),
				cli.BoldStyle.Render("Budget"),
				cli.BoldStyle.Render("Spent"),
				cli.BoldStyle.Render("Used"))

			for _, b := range budgets {
				category, ok := catalog.ExpenseByID(b.CategoryID)
				if !ok {
					continue
				}
				spent, percentage := alert.SpendToDate(b, transactions)

				used := fmt.Sprintf("%.0f%%", percentage)
				switch {
				case percentage >= alert.Threshold100:
					used = cli.ErrorStyle.Render(used)
				case percentage >= alert.Threshold80:
					used = cli.WarningStyle.Render(used)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					b.ID, category.Name, b.Period,
					currency.Format(b.Amount, currency.BaseCurrency),
					currency.Format(spent, currency.BaseCurrency), used)
			}

			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget and its alerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := alert.NewEngine(store)
			budgets := budget.NewService(store, engine)

			if err := budgets.Delete(ctx, currentUser(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Budget deleted"))
			return nil
		},
	}
}

func periodNoun(period model.BudgetPeriod) string {
	if period == model.PeriodYearly {
		return "year"
	}
	return "month"
}
