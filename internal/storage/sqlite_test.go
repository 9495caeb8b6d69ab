package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/common"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/service"
)

// Helper to create migrated test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testTransaction(userID, description string, amount float64, date time.Time) *model.Transaction {
	category, _ := catalog.ByID(catalog.FoodDiningID)
	return &model.Transaction{
		Date:        date,
		Description: description,
		Category:    category,
		Type:        model.TypeExpense,
		UserID:      userID,
		Amount:      amount,
	}
}

func testBudget(userID, categoryID string, amount float64, period model.BudgetPeriod) *model.Budget {
	return &model.Budget{
		CategoryID: categoryID,
		UserID:     userID,
		Period:     period,
		Amount:     amount,
	}
}

func testAlert(userID, budgetID string, percentage float64) *model.BudgetAlert {
	return &model.BudgetAlert{
		Date:         time.Now().UTC(),
		BudgetID:     budgetID,
		Message:      "You've used 80% of your Food & Dining budget",
		CategoryID:   catalog.FoodDiningID,
		CategoryName: "Food & Dining",
		UserID:       userID,
		BudgetAmount: 1000,
		SpentAmount:  percentage * 10,
		Percentage:   percentage,
	}
}

func TestSQLiteStorage_SaveTransaction(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	txn := testTransaction("user1", "Grocery store run", 42.50, date)
	txn.Tags = []string{"weekly", "essentials"}
	txn.Currency = "USD"
	txn.OriginalAmount = 0.51

	saved, err := store.SaveTransaction(ctx, txn)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "an id is minted when absent")

	got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, saved.ID, got[0].ID)
	assert.Equal(t, "Grocery store run", got[0].Description)
	assert.Equal(t, catalog.FoodDiningID, got[0].Category.ID)
	assert.Equal(t, "Food & Dining", got[0].Category.Name)
	assert.Equal(t, []string{"weekly", "essentials"}, got[0].Tags)
	assert.Equal(t, "USD", got[0].Currency)
	assert.InDelta(t, 0.51, got[0].OriginalAmount, 1e-9)
	assert.WithinDuration(t, date, got[0].Date, time.Second)
}

func TestSQLiteStorage_SaveTransaction_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	date := time.Now()

	tests := []struct {
		mutate  func(*model.Transaction)
		wantErr error
		name    string
	}{
		{
			name:    "missing user",
			mutate:  func(txn *model.Transaction) { txn.UserID = "" },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing description",
			mutate:  func(txn *model.Transaction) { txn.Description = "" },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing category",
			mutate:  func(txn *model.Transaction) { txn.Category = model.Category{} },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "bad type",
			mutate:  func(txn *model.Transaction) { txn.Type = "transfer" },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing date",
			mutate:  func(txn *model.Transaction) { txn.Date = time.Time{} },
			wantErr: ErrInvalidTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := testTransaction("user1", "Something", 10, date)
			tt.mutate(txn)
			_, err := store.SaveTransaction(ctx, txn)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nil transaction", func(t *testing.T) {
		_, err := store.SaveTransaction(ctx, nil)
		assert.ErrorIs(t, err, ErrNilParameter)
	})
}

func TestSQLiteStorage_GetTransactions_Filters(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	transport, _ := catalog.ByID(catalog.TransportationID)
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	first := testTransaction("user1", "Grocery store", 20, base)
	second := testTransaction("user1", "Uber downtown", 15, base.AddDate(0, 0, 5))
	second.Category = transport
	third := testTransaction("user1", "Monthly salary", 5000, base.AddDate(0, 0, 10))
	third.Type = model.TypeIncome
	other := testTransaction("user2", "Grocery store", 30, base)

	for _, txn := range []*model.Transaction{first, second, third, other} {
		_, err := store.SaveTransaction(ctx, txn)
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Monthly salary", got[0].Description)
		assert.Equal(t, "Grocery store", got[2].Description)
	})

	t.Run("by type", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{Type: model.TypeIncome})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Monthly salary", got[0].Description)
	})

	t.Run("by category", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{CategoryID: catalog.TransportationID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Uber downtown", got[0].Description)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{Search: "UBER"})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("date range", func(t *testing.T) {
		start := base.AddDate(0, 0, 3)
		end := base.AddDate(0, 0, 7)
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Uber downtown", got[0].Description)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("scoped to user", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, "user2", service.TransactionFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestSQLiteStorage_DeleteTransaction(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	saved, err := store.SaveTransaction(ctx, testTransaction("user1", "Coffee", 4.5, time.Now()))
	require.NoError(t, err)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := store.DeleteTransaction(ctx, "user2", saved.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, store.DeleteTransaction(ctx, "user1", saved.ID))
		got, err := store.GetTransactions(ctx, "user1", service.TransactionFilter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing id", func(t *testing.T) {
		err := store.DeleteTransaction(ctx, "user1", "nope")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSQLiteStorage_Budgets(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		created, err := store.CreateBudget(ctx, testBudget("user1", catalog.FoodDiningID, 1000, model.PeriodMonthly))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := store.GetBudgets(ctx, "user1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, created.ID, got[0].ID)
		assert.InDelta(t, 1000, got[0].Amount, 1e-9)
	})

	t.Run("duplicate category and period rejected", func(t *testing.T) {
		_, err := store.CreateBudget(ctx, testBudget("user1", catalog.FoodDiningID, 2000, model.PeriodMonthly))
		assert.ErrorIs(t, err, common.ErrDuplicateEntry)
	})

	t.Run("same category different period allowed", func(t *testing.T) {
		_, err := store.CreateBudget(ctx, testBudget("user1", catalog.FoodDiningID, 12000, model.PeriodYearly))
		assert.NoError(t, err)
	})

	t.Run("same pair for another user allowed", func(t *testing.T) {
		_, err := store.CreateBudget(ctx, testBudget("user2", catalog.FoodDiningID, 500, model.PeriodMonthly))
		assert.NoError(t, err)
	})

	t.Run("invalid budget rejected", func(t *testing.T) {
		_, err := store.CreateBudget(ctx, testBudget("user1", catalog.HousingID, -10, model.PeriodMonthly))
		assert.ErrorIs(t, err, ErrInvalidBudget)

		_, err = store.CreateBudget(ctx, testBudget("user1", catalog.HousingID, 100, model.BudgetPeriod("weekly")))
		assert.ErrorIs(t, err, ErrInvalidBudget)
	})
}

func TestSQLiteStorage_UpdateBudget(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	created, err := store.CreateBudget(ctx, testBudget("user1", catalog.FoodDiningID, 1000, model.PeriodMonthly))
	require.NoError(t, err)

	updated, err := store.UpdateBudget(ctx, "user1", created.ID, 1500, model.PeriodYearly)
	require.NoError(t, err)
	assert.InDelta(t, 1500, updated.Amount, 1e-9)
	assert.Equal(t, model.PeriodYearly, updated.Period)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	_, err = store.UpdateBudget(ctx, "user2", created.ID, 99, model.PeriodMonthly)
	assert.ErrorIs(t, err, common.ErrNotFound, "other users cannot update")

	_, err = store.UpdateBudget(ctx, "user1", "missing", 99, model.PeriodMonthly)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_DeleteBudget(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	created, err := store.CreateBudget(ctx, testBudget("user1", catalog.FoodDiningID, 1000, model.PeriodMonthly))
	require.NoError(t, err)

	t.Run("delete with alerts attached is rejected", func(t *testing.T) {
		_, err := store.CreateAlert(ctx, testAlert("user1", created.ID, 85))
		require.NoError(t, err)

		err = store.DeleteBudget(ctx, "user1", created.ID)
		assert.Error(t, err, "foreign key keeps alerts from orphaning")
	})

	t.Run("delete after alert cleanup", func(t *testing.T) {
		require.NoError(t, store.DeleteAlertsForBudget(ctx, "user1", created.ID))
		require.NoError(t, store.DeleteBudget(ctx, "user1", created.ID))

		got, err := store.GetBudgets(ctx, "user1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing budget", func(t *testing.T) {
		err := store.DeleteBudget(ctx, "user1", "missing")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSQLiteStorage_Alerts(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	budget, err := store.CreateBudget(ctx, testBudget("user1", catalog.FoodDiningID, 1000, model.PeriodMonthly))
	require.NoError(t, err)

	first, err := store.CreateAlert(ctx, testAlert("user1", budget.ID, 82))
	require.NoError(t, err)
	second, err := store.CreateAlert(ctx, testAlert("user1", budget.ID, 91))
	require.NoError(t, err)

	t.Run("unseen alerts for budget", func(t *testing.T) {
		got, err := store.GetUnseenAlerts(ctx, "user1", budget.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("mark one seen", func(t *testing.T) {
		require.NoError(t, store.MarkAlertSeen(ctx, "user1", first.ID))

		got, err := store.GetUnseenAlerts(ctx, "user1", budget.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.ID, got[0].ID)
	})

	t.Run("all alerts still listed", func(t *testing.T) {
		got, err := store.GetAlerts(ctx, "user1")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("mark all seen", func(t *testing.T) {
		require.NoError(t, store.MarkAllAlertsSeen(ctx, "user1"))

		got, err := store.GetUnseenAlerts(ctx, "user1", budget.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("other user cannot mark seen", func(t *testing.T) {
		third, err := store.CreateAlert(ctx, testAlert("user1", budget.ID, 101))
		require.NoError(t, err)

		require.NoError(t, store.MarkAlertSeen(ctx, "user2", third.ID))

		got, err := store.GetUnseenAlerts(ctx, "user1", budget.ID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("alert for unknown budget rejected", func(t *testing.T) {
		_, err := store.CreateAlert(ctx, testAlert("user1", "missing-budget", 80))
		assert.Error(t, err)
	})

	t.Run("invalid alert rejected", func(t *testing.T) {
		bad := testAlert("user1", budget.ID, 80)
		bad.Message = ""
		_, err := store.CreateAlert(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidAlert)
	})
}

func TestSQLiteStorage_MigrateIdempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Migrate ran in the helper; a second run is a no-op.
	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSQLiteStorage_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))

	_, err = store.SaveTransaction(ctx, testTransaction("user1", "Persisted", 10, time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store2, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store2.Close() }()
	require.NoError(t, store2.Migrate(ctx))

	got, err := store2.GetTransactions(ctx, "user1", service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Persisted", got[0].Description)
}

func TestSQLiteStorage_ValidationHelpers(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // nil context is exactly what is being validated
	_, err := store.GetTransactions(nil, "user1", service.TransactionFilter{})
	assert.ErrorIs(t, err, ErrNilContext)

	_, err = store.GetBudgets(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}
