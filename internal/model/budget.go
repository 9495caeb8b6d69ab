package model

import "time"

// BudgetPeriod is the window a budget's amount applies to.
type BudgetPeriod string

const (
	// PeriodMonthly budgets reset every calendar month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly budgets reset every calendar year.
	PeriodYearly BudgetPeriod = "yearly"
)

// Budget caps spending for one expense category over a recurring period.
// At most one budget exists per (CategoryID, Period) pair per user.
type Budget struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ID         string
	CategoryID string
	UserID     string
	Period     BudgetPeriod
	Amount     float64
}

// BudgetAlert records a crossed spend threshold for a budget. Alerts are
// persisted and shown until marked seen or cleared.
type BudgetAlert struct {
	Date         time.Time
	ID           string
	BudgetID     string
	Message      string
	CategoryID   string
	CategoryName string
	UserID       string
	BudgetAmount float64
	SpentAmount  float64
	Percentage   float64
	Seen         bool
}
