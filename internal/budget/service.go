// Package budget provides budget lifecycle management: idempotent creation
// per (category, period) pair, updates that re-arm threshold alerts, and
// deletion with alert cleanup.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/common"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// Store is the slice of the persistence collaborator the budget service uses.
type Store interface {
	GetBudgets(ctx context.Context, userID string) ([]model.Budget, error)
	CreateBudget(ctx context.Context, budget *model.Budget) (*model.Budget, error)
	UpdateBudget(ctx context.Context, userID, id string, amount float64, period model.BudgetPeriod) (*model.Budget, error)
	DeleteBudget(ctx context.Context, userID, id string) error
	DeleteAlertsForBudget(ctx context.Context, userID, budgetID string) error
}

// ThresholdResetter clears per-budget fired-threshold memory when a budget
// changes or goes away. The alert engine implements it.
type ThresholdResetter interface {
	ResetBudget(budgetID string)
	ForgetBudget(budgetID string)
}

// Service manages budgets and keeps the alert engine's threshold memory in
// step with budget mutations.
type Service struct {
	store  Store
	alerts ThresholdResetter
}

// NewService creates a budget service.
func NewService(store Store, alerts ThresholdResetter) *Service {
	return &Service{store: store, alerts: alerts}
}

// List returns all budgets owned by the user.
func (s *Service) List(ctx context.Context, userID string) ([]model.Budget, error) {
	if userID == "" {
		return nil, common.ErrNoUser
	}
	return s.store.GetBudgets(ctx, userID)
}

// Set creates a budget for a category and period, or updates the existing
// one: at most one budget exists per (category, period) pair per user.
func (s *Service) Set(ctx context.Context, userID, categoryID string, amount float64, period model.BudgetPeriod) (*model.Budget, error) {
	if userID == "" {
		return nil, common.ErrNoUser
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: budget amount must be positive", common.ErrInvalidAmount)
	}
	if period != model.PeriodMonthly && period != model.PeriodYearly {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidPeriod, period)
	}
	if _, ok := catalog.ExpenseByID(categoryID); !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, categoryID)
	}

	existing, err := s.store.GetBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	for _, b := range existing {
		if b.CategoryID == categoryID && b.Period == period {
			return s.Update(ctx, userID, b.ID, amount, period)
		}
	}

	now := time.Now()
	created, err := s.store.CreateBudget(ctx, &model.Budget{
		CreatedAt:  now,
		UpdatedAt:  now,
		CategoryID: categoryID,
		UserID:     userID,
		Period:     period,
		Amount:     amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return created, nil
}

// Update changes a budget's amount and period, then clears its fired-
// threshold memory so alerts can refire against the new target.
func (s *Service) Update(ctx context.Context, userID, id string, amount float64, period model.BudgetPeriod) (*model.Budget, error) {
	if userID == "" {
		return nil, common.ErrNoUser
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: budget amount must be positive", common.ErrInvalidAmount)
	}

	updated, err := s.store.UpdateBudget(ctx, userID, id, amount, period)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	if s.alerts != nil {
		s.alerts.ResetBudget(id)
	}
	return updated, nil
}

// Delete removes a budget. Dependent alerts are deleted first to satisfy
// the storage referential constraint; if that cleanup fails the budget
// deletion still proceeds.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return common.ErrNoUser
	}

	if err := s.store.DeleteAlertsForBudget(ctx, userID, id); err != nil {
		slog.Error("failed to delete alerts for budget", "budget_id", id, "error", err)
	}

	if err := s.store.DeleteBudget(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if s.alerts != nil {
		s.alerts.ForgetBudget(id)
	}
	return nil
}
