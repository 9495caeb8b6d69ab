package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					amount REAL NOT NULL,
					description TEXT NOT NULL,
					category_id TEXT NOT NULL,
					category_name TEXT NOT NULL,
					category_icon TEXT,
					category_color TEXT,
					date DATETIME NOT NULL,
					type TEXT NOT NULL,
					tags TEXT,
					currency TEXT,
					original_amount REAL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_user ON transactions(user_id)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category_id)`,

				`CREATE TABLE IF NOT EXISTS budgets (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					category_id TEXT NOT NULL,
					amount REAL NOT NULL,
					period TEXT NOT NULL CHECK (period IN ('monthly', 'yearly')),
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL,
					UNIQUE(user_id, category_id, period)
				)`,
				`CREATE INDEX idx_budgets_user ON budgets(user_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add budget alerts table",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS budget_alerts (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					budget_id TEXT NOT NULL,
					message TEXT NOT NULL,
					date DATETIME NOT NULL,
					seen BOOLEAN NOT NULL DEFAULT 0,
					category_id TEXT NOT NULL,
					category_name TEXT NOT NULL,
					budget_amount REAL NOT NULL,
					spent_amount REAL NOT NULL,
					percentage REAL NOT NULL,
					FOREIGN KEY (budget_id) REFERENCES budgets(id)
				)`,
				`CREATE INDEX idx_budget_alerts_user ON budget_alerts(user_id)`,
				`CREATE INDEX idx_budget_alerts_budget ON budget_alerts(budget_id)`,
				`CREATE INDEX idx_budget_alerts_seen ON budget_alerts(seen)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
