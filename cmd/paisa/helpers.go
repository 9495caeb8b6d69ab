package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/service"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/storage"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/suggest"
)

// defaultUserID scopes data when no user is configured; the storage schema
// is multi-user but the CLI runs single-user.
const defaultUserID = "local"

// initStorage opens the database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "paisa", "paisa.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}

// currentUser returns the configured user id owning all data.
func currentUser() string {
	if user := viper.GetString("user"); user != "" {
		return user
	}
	return defaultUserID
}

// newSeededSuggester builds a suggester whose history is warmed from the
// stored transaction snapshot, so suggestions learn across CLI runs rather
// than only within one process.
func newSeededSuggester(ctx context.Context, store service.Storage, userID string) (*suggest.Suggester, error) {
	suggester := suggest.NewSuggester()

	transactions, err := store.GetTransactions(ctx, userID, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for suggestion history: %w", err)
	}

	// GetTransactions returns newest first; replay oldest first so the
	// retained window favors recent confirmations.
	for i := len(transactions) - 1; i >= 0; i-- {
		suggester.Record(transactions[i].Description, transactions[i].Category.ID)
	}
	return suggester, nil
}

// loadBudgetInputs fetches the budgets and transaction snapshot an alert
// check needs.
func loadBudgetInputs(ctx context.Context, store service.Storage, userID string) ([]model.Budget, []model.Transaction, error) {
	budgets, err := store.GetBudgets(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	transactions, err := store.GetTransactions(ctx, userID, service.TransactionFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return budgets, transactions, nil
}
