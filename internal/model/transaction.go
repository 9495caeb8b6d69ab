package model

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	// TypeExpense marks a transaction as spending.
	TypeExpense TransactionType = "expense"
	// TypeIncome marks a transaction as earnings.
	TypeIncome TransactionType = "income"
)

// Transaction represents a single logged income or expense entry.
// Amount is always in the base currency; OriginalAmount and Currency are
// populated when the entry was logged in a foreign currency.
type Transaction struct {
	Date           time.Time
	ID             string
	Description    string
	Category       Category
	Type           TransactionType
	Tags           []string
	Currency       string
	Amount         float64
	OriginalAmount float64
	UserID         string
}

// HistoryEntry is a confirmed description→category pair used as the
// learning signal for future category suggestions.
type HistoryEntry struct {
	Description string
	CategoryID  string
}
