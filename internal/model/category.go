package model

// CategoryType indicates whether a category applies to income or expense transactions.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents an entry in the static category catalog.
// Catalog ids are stable strings; categories are reference data, not user-editable.
type Category struct {
	ID       string
	Name     string
	Icon     string
	ColorTag string
	Type     CategoryType
}
