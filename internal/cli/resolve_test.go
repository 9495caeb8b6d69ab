package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
)

func TestResolveCategory(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		got, err := ResolveCategory(catalog.TransportationID, catalog.ExpenseCategories)
		require.NoError(t, err)
		assert.Equal(t, "Transportation", got.Name)
	})

	t.Run("by name case-insensitively", func(t *testing.T) {
		got, err := ResolveCategory("food & dining", catalog.ExpenseCategories)
		require.NoError(t, err)
		assert.Equal(t, catalog.FoodDiningID, got.ID)
	})

	t.Run("leading and trailing space ignored", func(t *testing.T) {
		got, err := ResolveCategory("  Housing  ", catalog.ExpenseCategories)
		require.NoError(t, err)
		assert.Equal(t, catalog.HousingID, got.ID)
	})

	t.Run("typo suggests closest name", func(t *testing.T) {
		_, err := ResolveCategory("Transportaton", catalog.ExpenseCategories)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `did you mean "Transportation"?`)
	})

	t.Run("far-off input gets no suggestion", func(t *testing.T) {
		_, err := ResolveCategory("xxxxxxxxxxxxxxxxxxxx", catalog.ExpenseCategories)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "did you mean")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ResolveCategory("   ", catalog.ExpenseCategories)
		assert.Error(t, err)
	})

	t.Run("income names resolve against income catalog", func(t *testing.T) {
		got, err := ResolveCategory("Salary", catalog.IncomeCategories)
		require.NoError(t, err)
		assert.Equal(t, catalog.SalaryID, got.ID)
	})
}
