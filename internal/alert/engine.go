package alert

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// Spend thresholds, as percentages of the budget amount.
const (
	Threshold80  = 80
	Threshold90  = 90
	Threshold100 = 100
)

// dedupeWindow is how close (in percentage points) a stored unseen alert's
// percentage must be to a threshold to count as a duplicate of it.
const dedupeWindow = 5.0

// Engine evaluates budgets against transaction snapshots and raises
// threshold alerts. One instance exists per user session; the fired-
// threshold memory lives on the instance and resets with the process.
type Engine struct {
	store Store
	now   func() time.Time
	fired map[string]map[int]bool
	mu    sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an alert engine backed by the given store.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		fired: make(map[string]map[int]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CheckAlerts recomputes spend-to-date for every budget and returns the new
// alerts it raised. Budgets are processed sequentially in the order given.
// Persistence failures are logged and the affected alert is dropped for this
// cycle; the threshold stays unfired so a later call can retry.
func (e *Engine) CheckAlerts(ctx context.Context, userID string, budgets []model.Budget, transactions []model.Transaction) []model.BudgetAlert {
	if userID == "" || len(budgets) == 0 || len(transactions) == 0 {
		return nil
	}

	now := e.now()
	var newAlerts []model.BudgetAlert

	for _, budget := range budgets {
		category, ok := catalog.ExpenseByID(budget.CategoryID)
		if !ok {
			slog.Debug("skipping budget with unknown category",
				"budget_id", budget.ID, "category_id", budget.CategoryID)
			continue
		}

		start, end := periodWindow(budget.Period, now)
		totalSpent := sumExpenses(transactions, budget.CategoryID, start, end)

		percentage := 0.0
		if budget.Amount > 0 {
			percentage = totalSpent / budget.Amount * 100
		}
		if percentage < Threshold80 {
			continue
		}

		level := thresholdLevel(percentage)
		if e.alreadyFired(budget.ID, level) {
			continue
		}

		// A stored unseen alert near this threshold means another session
		// already raised it; remember that instead of duplicating the record.
		if e.hasStoredAlert(ctx, userID, budget.ID, level) {
			e.markFired(budget.ID, level)
			continue
		}

		created, err := e.store.CreateAlert(ctx, &model.BudgetAlert{
			Date:         now,
			BudgetID:     budget.ID,
			Message:      alertMessage(level, category.Name, percentage),
			CategoryID:   category.ID,
			CategoryName: category.Name,
			UserID:       userID,
			BudgetAmount: budget.Amount,
			SpentAmount:  totalSpent,
			Percentage:   percentage,
		})
		if err != nil {
			slog.Error("failed to create budget alert",
				"budget_id", budget.ID, "threshold", level, "error", err)
			continue
		}

		e.markFired(budget.ID, level)
		newAlerts = append(newAlerts, *created)
	}

	return newAlerts
}

// MarkSeen marks one alert as seen. Alerts not owned by the user are left
// untouched.
func (e *Engine) MarkSeen(ctx context.Context, userID, alertID string) error {
	if userID == "" {
		return nil
	}
	return e.store.MarkAlertSeen(ctx, userID, alertID)
}

// ClearAll marks every unseen alert owned by the user as seen.
func (e *Engine) ClearAll(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return e.store.MarkAllAlertsSeen(ctx, userID)
}

// ResetBudget discards the fired-threshold memory for one budget so alerts
// can refire against a changed amount or period.
func (e *Engine) ResetBudget(budgetID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.fired, budgetID)
}

// ForgetBudget removes a deleted budget from the fired-threshold memory.
func (e *Engine) ForgetBudget(budgetID string) {
	e.ResetBudget(budgetID)
}

func (e *Engine) alreadyFired(budgetID string, level int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fired[budgetID][level]
}

func (e *Engine) markFired(budgetID string, level int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fired[budgetID] == nil {
		e.fired[budgetID] = make(map[int]bool)
	}
	e.fired[budgetID][level] = true
}

func (e *Engine) hasStoredAlert(ctx context.Context, userID, budgetID string, level int) bool {
	existing, err := e.store.GetUnseenAlerts(ctx, userID, budgetID)
	if err != nil {
		slog.Error("failed to read stored alerts", "budget_id", budgetID, "error", err)
		return false
	}
	for _, a := range existing {
		if math.Abs(a.Percentage-float64(level)) <= dedupeWindow {
			return true
		}
	}
	return false
}

// SpendToDate computes a budget's expense total and percentage-used for the
// period window containing the current wall-clock time.
func SpendToDate(budget model.Budget, transactions []model.Transaction) (spent, percentage float64) {
	start, end := periodWindow(budget.Period, time.Now())
	spent = sumExpenses(transactions, budget.CategoryID, start, end)
	if budget.Amount > 0 {
		percentage = spent / budget.Amount * 100
	}
	return spent, percentage
}

// periodWindow returns the inclusive calendar window containing now.
func periodWindow(period model.BudgetPeriod, now time.Time) (start, end time.Time) {
	if period == model.PeriodYearly {
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
		return start, end
	}
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// sumExpenses totals expense transactions for a category inside the window.
func sumExpenses(transactions []model.Transaction, categoryID string, start, end time.Time) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type != model.TypeExpense || t.Category.ID != categoryID {
			continue
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		total += t.Amount
	}
	return total
}

func thresholdLevel(percentage float64) int {
	switch {
	case percentage >= Threshold100:
		return Threshold100
	case percentage >= Threshold90:
		return Threshold90
	default:
		return Threshold80
	}
}

func alertMessage(level int, categoryName string, percentage float64) string {
	switch level {
	case Threshold100:
		return fmt.Sprintf("You've exceeded your %s budget by %.0f%%", categoryName, percentage-100)
	case Threshold90:
		return fmt.Sprintf("You've used 90%% of your %s budget", categoryName)
	default:
		return fmt.Sprintf("You've used 80%% of your %s budget", categoryName)
	}
}
