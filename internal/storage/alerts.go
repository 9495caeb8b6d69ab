package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// CreateAlert inserts a budget alert and returns the stored record.
func (s *SQLiteStorage) CreateAlert(ctx context.Context, alert *model.BudgetAlert) (*model.BudgetAlert, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateAlert(alert); err != nil {
		return nil, err
	}

	stored := *alert
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Date.IsZero() {
		stored.Date = time.Now()
	}

	query := `
		INSERT INTO budget_alerts
			(id, user_id, budget_id, message, date, seen, category_id,
			 category_name, budget_amount, spent_amount, percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		stored.ID, stored.UserID, stored.BudgetID, stored.Message, stored.Date,
		stored.Seen, stored.CategoryID, stored.CategoryName,
		stored.BudgetAmount, stored.SpentAmount, stored.Percentage)
	if err != nil {
		return nil, fmt.Errorf("failed to insert budget alert: %w", err)
	}

	slog.Debug("created budget alert", "id", stored.ID, "budget_id", stored.BudgetID, "percentage", stored.Percentage)
	return &stored, nil
}

// GetAlerts returns all of the user's alerts, newest first.
func (s *SQLiteStorage) GetAlerts(ctx context.Context, userID string) ([]model.BudgetAlert, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	return s.queryAlerts(ctx,
		`SELECT id, user_id, budget_id, message, date, seen, category_id,
		        category_name, budget_amount, spent_amount, percentage
		 FROM budget_alerts
		 WHERE user_id = ?
		 ORDER BY date DESC`, userID)
}

// GetUnseenAlerts returns the user's unseen alerts for one budget. The alert
// engine uses these to avoid duplicating alerts across sessions.
func (s *SQLiteStorage) GetUnseenAlerts(ctx context.Context, userID, budgetID string) ([]model.BudgetAlert, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return nil, err
	}

	return s.queryAlerts(ctx,
		`SELECT id, user_id, budget_id, message, date, seen, category_id,
		        category_name, budget_amount, spent_amount, percentage
		 FROM budget_alerts
		 WHERE user_id = ? AND budget_id = ? AND seen = 0
		 ORDER BY date DESC`, userID, budgetID)
}

// MarkAlertSeen sets seen on one alert. A no-op for alerts the user does
// not own.
func (s *SQLiteStorage) MarkAlertSeen(ctx context.Context, userID, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE budget_alerts SET seen = 1 WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark alert seen: %w", err)
	}
	return nil
}

// MarkAllAlertsSeen sets seen on every currently-unseen alert the user owns.
func (s *SQLiteStorage) MarkAllAlertsSeen(ctx context.Context, userID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE budget_alerts SET seen = 1 WHERE user_id = ? AND seen = 0", userID)
	if err != nil {
		return fmt.Errorf("failed to mark alerts seen: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil {
		slog.Debug("cleared alerts", "count", affected)
	}
	return nil
}

// DeleteAlertsForBudget removes all alerts belonging to one budget. Called
// before budget deletion to satisfy the foreign key constraint.
func (s *SQLiteStorage) DeleteAlertsForBudget(ctx context.Context, userID, budgetID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM budget_alerts WHERE budget_id = ? AND user_id = ?", budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alerts for budget: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryAlerts(ctx context.Context, query string, args ...any) ([]model.BudgetAlert, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget alerts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var alerts []model.BudgetAlert
	for rows.Next() {
		var a model.BudgetAlert
		err := rows.Scan(&a.ID, &a.UserID, &a.BudgetID, &a.Message, &a.Date, &a.Seen,
			&a.CategoryID, &a.CategoryName, &a.BudgetAmount, &a.SpentAmount, &a.Percentage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget alerts: %w", err)
	}
	return alerts, nil
}
