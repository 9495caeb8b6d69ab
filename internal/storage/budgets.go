package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/common"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// GetBudgets returns all budgets owned by the user.
func (s *SQLiteStorage) GetBudgets(ctx context.Context, userID string) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, category_id, amount, period, created_at, updated_at
		FROM budgets
		WHERE user_id = ?
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	slog.Debug("retrieved budgets", "count", len(budgets))
	return budgets, nil
}

// CreateBudget inserts a budget and returns the stored record.
func (s *SQLiteStorage) CreateBudget(ctx context.Context, budget *model.Budget) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	stored := *budget
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}

	query := `
		INSERT INTO budgets (id, user_id, category_id, amount, period, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		stored.ID, stored.UserID, stored.CategoryID, stored.Amount,
		stored.Period, stored.CreatedAt, stored.UpdatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil, fmt.Errorf("budget for category %s (%s): %w",
				stored.CategoryID, stored.Period, common.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to insert budget: %w", err)
	}

	slog.Debug("created budget", "id", stored.ID, "category_id", stored.CategoryID, "period", stored.Period)
	return &stored, nil
}

// UpdateBudget changes a budget's amount and period and returns the updated
// record. Budgets owned by other users are not touched.
func (s *SQLiteStorage) UpdateBudget(ctx context.Context, userID, id string, amount float64, period model.BudgetPeriod) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx,
		"UPDATE budgets SET amount = ?, period = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		amount, period, now, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("budget %s: %w", id, common.ErrNotFound)
	}

	var b model.Budget
	err = s.db.QueryRowContext(ctx,
		"SELECT id, user_id, category_id, amount, period, created_at, updated_at FROM budgets WHERE id = ?",
		id).Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("budget %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload budget: %w", err)
	}

	return &b, nil
}

// DeleteBudget removes one budget owned by the user. Callers delete the
// budget's alerts first; the foreign key on budget_alerts rejects orphans.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, userID, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM budgets WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("budget %s: %w", id, common.ErrNotFound)
	}
	return nil
}
