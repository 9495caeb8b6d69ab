package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/common"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/service"
)

// tagSeparator joins the tags column; tags themselves never contain it.
const tagSeparator = ","

// SaveTransaction inserts a transaction and returns the stored record. A
// fresh id is minted when the transaction doesn't carry one.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(txn); err != nil {
		return nil, err
	}

	stored := *txn
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	query := `
		INSERT INTO transactions
			(id, user_id, amount, description, category_id, category_name,
			 category_icon, category_color, date, type, tags, currency, original_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		stored.ID, stored.UserID, stored.Amount, stored.Description,
		stored.Category.ID, stored.Category.Name, stored.Category.Icon, stored.Category.ColorTag,
		stored.Date, stored.Type, strings.Join(stored.Tags, tagSeparator),
		nullableString(stored.Currency), nullableFloat(stored.OriginalAmount))
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	slog.Debug("saved transaction", "id", stored.ID, "category", stored.Category.Name)
	return &stored, nil
}

// GetTransactions returns the user's transactions, newest first, narrowed
// by the filter.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, userID string, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, amount, description, category_id, category_name,
		       category_icon, category_color, date, type, tags, currency, original_amount
		FROM transactions
		WHERE user_id = ?`
	args := []any{userID}

	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, filter.Type)
	}
	if filter.CategoryID != "" {
		query += " AND category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		query += " AND LOWER(description) LIKE ?"
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// DeleteTransaction removes one transaction owned by the user.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, userID, id string) error {
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
		"DELETE FROM transactions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var txn model.Transaction
	var tags string
	var currency sql.NullString
	var originalAmount sql.NullFloat64

	err := rows.Scan(
		&txn.ID, &txn.UserID, &txn.Amount, &txn.Description,
		&txn.Category.ID, &txn.Category.Name, &txn.Category.Icon, &txn.Category.ColorTag,
		&txn.Date, &txn.Type, &tags, &currency, &originalAmount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	if tags != "" {
		txn.Tags = strings.Split(tags, tagSeparator)
	}
	if currency.Valid {
		txn.Currency = currency.String
	}
	if originalAmount.Valid {
		txn.OriginalAmount = originalAmount.Float64
	}
	return txn, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
