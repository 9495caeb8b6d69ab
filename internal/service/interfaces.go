// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// All fields are optional; results are always ordered by date descending.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       model.TransactionType
	CategoryID string
	Search     string
	Limit      int
}

// Storage defines the contract for the persistence collaborator. Every
// operation is scoped to an authenticated user id.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error

	// Budget operations
	GetBudgets(ctx context.Context, userID string) ([]model.Budget, error)
	CreateBudget(ctx context.Context, budget *model.Budget) (*model.Budget, error)
	UpdateBudget(ctx context.Context, userID, id string, amount float64, period model.BudgetPeriod) (*model.Budget, error)
	DeleteBudget(ctx context.Context, userID, id string) error

	// Budget alert operations
	CreateAlert(ctx context.Context, alert *model.BudgetAlert) (*model.BudgetAlert, error)
	GetAlerts(ctx context.Context, userID string) ([]model.BudgetAlert, error)
	GetUnseenAlerts(ctx context.Context, userID, budgetID string) ([]model.BudgetAlert, error)
	MarkAlertSeen(ctx context.Context, userID, id string) error
	MarkAllAlertsSeen(ctx context.Context, userID string) error
	DeleteAlertsForBudget(ctx context.Context, userID, budgetID string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
