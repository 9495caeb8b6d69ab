package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/cli"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/currency"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/importer"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/service"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, import, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(importTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		categoryArg string
		txnTypeArg  string
		dateArg     string
		currencyArg string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description...>",
		Short: "Add a transaction",
		Long: `Record a transaction. When --category is omitted the description is run
through the category suggester and the result is used.

Foreign-currency amounts (--currency) are converted to the base currency
using current exchange rates; the original amount is kept alongside.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID := currentUser()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive number, got %q", args[0])
			}
			description := strings.Join(args[1:], " ")

			txnType := model.TransactionType(txnTypeArg)
			if txnType != model.TypeExpense && txnType != model.TypeIncome {
				return fmt.Errorf("type must be expense or income, got %q", txnTypeArg)
			}

			date := time.Now()
			if dateArg != "" {
				date, err = time.Parse("2006-01-02", dateArg)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD, got %q", dateArg)
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			suggester, err := newSeededSuggester(ctx, store, userID)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				Date:        date,
				Description: description,
				Type:        txnType,
				Tags:        tags,
				Amount:      amount,
				UserID:      userID,
			}

			if categoryArg != "" {
				pool := catalog.ExpenseCategories
				if txnType == model.TypeIncome {
					pool = catalog.IncomeCategories
				}
				txn.Category, err = cli.ResolveCategory(categoryArg, pool)
				if err != nil {
					return err
				}
			} else {
				suggested, confidence := suggester.SuggestWithConfidence(description)
				txn.Category = suggested
				fmt.Println(cli.InfoStyle.Render(
					fmt.Sprintf("Suggested category: %s (%.0f%% confidence)", suggested.Name, confidence*100)))
			}

			if currencyArg != "" && currencyArg != currency.BaseCurrency {
				rates := currency.NewRates()
				if err := rates.Refresh(ctx); err != nil {
					fmt.Println(cli.WarningStyle.Render("Using fallback exchange rates"))
				}
				txn.Currency = currencyArg
				txn.OriginalAmount = amount
				txn.Amount = rates.ToBase(amount, currencyArg)
			}

			saved, err := store.SaveTransaction(ctx, &txn)
			if err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			// The stored record doubles as the confirmed pair for future
			// suggestions; history is rebuilt from storage next run.
			suggester.Record(saved.Description, saved.Category.ID)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s %s — %s (%s)",
				txnType, currency.Format(saved.Amount, currency.BaseCurrency),
				saved.Description, saved.Category.Name)))

			return checkAndRenderAlerts(ctx, store, userID)
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "", "category id or name (suggested when omitted)")
	cmd.Flags().StringVarP(&txnTypeArg, "type", "t", "expense", "transaction type (expense, income)")
	cmd.Flags().StringVarP(&dateArg, "date", "d", "", "transaction date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&currencyArg, "currency", "", "original currency code for foreign amounts")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags to attach (repeatable)")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		typeFilter     string
		categoryFilter string
		searchTerm     string
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			userID := currentUser()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := service.TransactionFilter{
				Type:       model.TransactionType(typeFilter),
				CategoryID: categoryFilter,
				Search:     searchTerm,
				Limit:      limit,
			}

			transactions, err := store.GetTransactions(ctx, userID, filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'paisa tx add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Description"))

			for _, txn := range transactions {
				amount := currency.Format(txn.Amount, currency.BaseCurrency)
				if txn.Currency != "" {
					amount += cli.SubtleStyle.Render(
						fmt.Sprintf(" (%s)", currency.Format(txn.OriginalAmount, txn.Currency)))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					txn.Date.Format("2006-01-02"), txn.Type, amount,
					txn.Category.Name, txn.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "filter by type (expense, income)")
	cmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "filter by category id")
	cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "filter by description substring")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum rows to show")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, currentUser(), args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Transaction deleted"))
			return nil
		},
	}
}

func importTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file with columns
date,description,amount,type[,category][,currency][,original_amount].
Rows without a category get one from the suggestion engine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID := currentUser()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = file.Close() }()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			suggester, err := newSeededSuggester(ctx, store, userID)
			if err != nil {
				return err
			}

			result, err := importer.ParseCSV(file, userID, suggester)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(result.Transactions),
				progressbar.OptionSetDescription("Importing transactions"),
				progressbar.OptionShowCount())

			saved := 0
			for i := range result.Transactions {
				txn := result.Transactions[i]
				if _, err := store.SaveTransaction(ctx, &txn); err != nil {
					result.Skipped = append(result.Skipped, importer.RowError{Row: -1, Err: err})
					continue
				}
				suggester.Record(txn.Description, txn.Category.ID)
				saved++
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Println()

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d transactions", saved)))
			for _, skipped := range result.Skipped {
				if skipped.Row > 0 {
					fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Skipped row %d: %v", skipped.Row, skipped.Err)))
				} else {
					fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Skipped: %v", skipped.Err)))
				}
			}

			return checkAndRenderAlerts(ctx, store, userID)
		},
	}
}
