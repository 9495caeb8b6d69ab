package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidBudget      = errors.New("invalid budget")
	ErrInvalidAlert       = errors.New("invalid budget alert")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidTransaction)
	}
	if txn.Description == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidTransaction)
	}
	if txn.Category.ID == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if txn.Type != model.TypeExpense && txn.Type != model.TypeIncome {
		return fmt.Errorf("%w: bad type %q", ErrInvalidTransaction, txn.Type)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}

// validateBudget validates a single budget.
func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if budget.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidBudget)
	}
	if budget.CategoryID == "" {
		return fmt.Errorf("%w: missing category id", ErrInvalidBudget)
	}
	if budget.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidBudget)
	}
	if budget.Period != model.PeriodMonthly && budget.Period != model.PeriodYearly {
		return fmt.Errorf("%w: bad period %q", ErrInvalidBudget, budget.Period)
	}
	return nil
}

// validateAlert validates a single budget alert.
func validateAlert(alert *model.BudgetAlert) error {
	if alert == nil {
		return fmt.Errorf("%w: alert", ErrNilParameter)
	}
	if alert.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidAlert)
	}
	if alert.BudgetID == "" {
		return fmt.Errorf("%w: missing budget id", ErrInvalidAlert)
	}
	if alert.Message == "" {
		return fmt.Errorf("%w: missing message", ErrInvalidAlert)
	}
	return nil
}
