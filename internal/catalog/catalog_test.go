package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range All() {
		require.NotEmpty(t, cat.ID)
		prev, dup := seen[cat.ID]
		assert.False(t, dup, "id %s used by both %q and %q", cat.ID, prev, cat.Name)
		seen[cat.ID] = cat.Name
	}
	assert.Len(t, seen, len(ExpenseCategories)+len(IncomeCategories))
}

func TestCatalog_ByID(t *testing.T) {
	food, ok := ByID(FoodDiningID)
	require.True(t, ok)
	assert.Equal(t, "Food & Dining", food.Name)
	assert.Equal(t, model.CategoryTypeExpense, food.Type)

	salary, ok := ByID(SalaryID)
	require.True(t, ok)
	assert.Equal(t, "Salary", salary.Name)
	assert.Equal(t, model.CategoryTypeIncome, salary.Type)

	_, ok = ByID("999")
	assert.False(t, ok)
}

func TestCatalog_ExpenseByID(t *testing.T) {
	_, ok := ExpenseByID(HousingID)
	assert.True(t, ok)

	_, ok = ExpenseByID(SalaryID)
	assert.False(t, ok, "income categories are not budgetable")
}

func TestCatalog_OtherIsLastExpense(t *testing.T) {
	last := ExpenseCategories[len(ExpenseCategories)-1]
	assert.Equal(t, OtherExpenseID, last.ID)
	assert.Equal(t, "Other", last.Name)
}

func TestCatalog_KeywordsReferenceKnownCategories(t *testing.T) {
	for id, words := range Keywords {
		_, ok := ByID(id)
		assert.True(t, ok, "keyword table references unknown category %s", id)
		assert.NotEmpty(t, words)
	}
}
