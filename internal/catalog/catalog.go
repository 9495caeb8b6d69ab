// Package catalog holds the static expense and income category catalogs and
// the keyword tables used for description matching. The data is fixed,
// ordered reference material; everything else refers to it by id.
package catalog

import "github.com/OmMTelrandhe/Paisa-Controller/internal/model"

// Well-known category ids used by heuristics and fallback rules.
const (
	FoodDiningID     = "1"
	TransportationID = "2"
	HousingID        = "3"
	EntertainmentID  = "4"
	OtherExpenseID   = "10"
	SalaryID         = "11"
)

// ExpenseCategories is the ordered expense catalog.
var ExpenseCategories = []model.Category{
	{ID: "1", Name: "Food & Dining", Icon: "utensils", ColorTag: "orange", Type: model.CategoryTypeExpense},
	{ID: "2", Name: "Transportation", Icon: "car", ColorTag: "blue", Type: model.CategoryTypeExpense},
	{ID: "3", Name: "Housing", Icon: "home", ColorTag: "green", Type: model.CategoryTypeExpense},
	{ID: "4", Name: "Entertainment", Icon: "tv", ColorTag: "purple", Type: model.CategoryTypeExpense},
	{ID: "5", Name: "Shopping", Icon: "shopping-bag", ColorTag: "pink", Type: model.CategoryTypeExpense},
	{ID: "6", Name: "Utilities", Icon: "zap", ColorTag: "yellow", Type: model.CategoryTypeExpense},
	{ID: "7", Name: "Health", Icon: "heart", ColorTag: "red", Type: model.CategoryTypeExpense},
	{ID: "8", Name: "Education", Icon: "book", ColorTag: "indigo", Type: model.CategoryTypeExpense},
	{ID: "9", Name: "Travel", Icon: "plane", ColorTag: "teal", Type: model.CategoryTypeExpense},
	{ID: "10", Name: "Other", Icon: "more-horizontal", ColorTag: "gray", Type: model.CategoryTypeExpense},
}

// IncomeCategories is the ordered income catalog.
var IncomeCategories = []model.Category{
	{ID: "11", Name: "Salary", Icon: "briefcase", ColorTag: "green", Type: model.CategoryTypeIncome},
	{ID: "12", Name: "Freelance", Icon: "code", ColorTag: "blue", Type: model.CategoryTypeIncome},
	{ID: "13", Name: "Investments", Icon: "trending-up", ColorTag: "purple", Type: model.CategoryTypeIncome},
	{ID: "14", Name: "Gifts", Icon: "gift", ColorTag: "pink", Type: model.CategoryTypeIncome},
	{ID: "15", Name: "Other", Icon: "more-horizontal", ColorTag: "gray", Type: model.CategoryTypeIncome},
}

// All returns the expense catalog followed by the income catalog.
func All() []model.Category {
	all := make([]model.Category, 0, len(ExpenseCategories)+len(IncomeCategories))
	all = append(all, ExpenseCategories...)
	all = append(all, IncomeCategories...)
	return all
}

// ByID looks a category up by its catalog id. The second return value is
// false for unknown ids.
func ByID(id string) (model.Category, bool) {
	for _, cat := range All() {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}

// ExpenseByID looks up an expense category only; budgets reference these.
func ExpenseByID(id string) (model.Category, bool) {
	for _, cat := range ExpenseCategories {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}
