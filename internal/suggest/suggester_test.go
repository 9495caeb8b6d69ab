package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
)

func TestSuggester_KeywordMatching(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantID      string
	}{
		{
			name:        "uber ride maps to transportation",
			description: "Uber ride to airport",
			wantID:      catalog.TransportationID,
		},
		{
			name:        "grocery run maps to food and dining",
			description: "Weekly groceries at the supermarket",
			wantID:      catalog.FoodDiningID,
		},
		{
			name:        "netflix maps to entertainment",
			description: "Netflix monthly streaming",
			wantID:      catalog.EntertainmentID,
		},
		{
			name:        "tuition maps to education",
			description: "University tuition payment",
			wantID:      "8",
		},
		{
			name:        "paycheck maps to salary",
			description: "Monthly paycheck from employer",
			wantID:      catalog.SalaryID,
		},
		{
			name:        "gibberish falls back to other",
			description: "xyzzy qwerty",
			wantID:      catalog.OtherExpenseID,
		},
		{
			name:        "empty string falls back to other",
			description: "",
			wantID:      catalog.OtherExpenseID,
		},
		{
			name:        "short string still answers",
			description: "ab",
			wantID:      catalog.OtherExpenseID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSuggester()
			got := s.Suggest(tt.description)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSuggester_Deterministic(t *testing.T) {
	s := NewSuggester()

	first := s.Suggest("Dinner at the italian restaurant")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.ID, s.Suggest("Dinner at the italian restaurant").ID)
	}
}

func TestSuggester_AmountHeuristics(t *testing.T) {
	t.Run("large round amount leans housing", func(t *testing.T) {
		s := NewSuggester()
		// No keywords at all; only the $800 heuristic scores, but 0.5 does
		// not beat the winning threshold, so the default applies.
		got := s.Suggest("payment of $800")
		assert.Equal(t, catalog.OtherExpenseID, got.ID)
	})

	t.Run("round amount breaks tie toward housing", func(t *testing.T) {
		s := NewSuggester()
		// "lease" scores Housing 1 keyword point, heuristic adds 0.5.
		got := s.Suggest("lease payment $1200")
		assert.Equal(t, catalog.HousingID, got.ID)
	})

	t.Run("small amount nudges food", func(t *testing.T) {
		s := NewSuggester()
		got := s.Suggest("coffee 4.50")
		assert.Equal(t, catalog.FoodDiningID, got.ID)
	})
}

func TestSuggester_HistoryLearning(t *testing.T) {
	const description = "Acme Widgets monthly invoice"

	fresh := NewSuggester()
	before := fresh.Suggest(description)
	require.Equal(t, catalog.OtherExpenseID, before.ID, "no keywords should match the invoice text")

	trained := NewSuggester()
	trained.Record(description, "5")

	after := trained.Suggest("Acme Widgets invoice")
	assert.Equal(t, "5", after.ID, "history entry should dominate once similarity exceeds 0.7")
}

func TestSuggester_HistoryRequiresHighSimilarity(t *testing.T) {
	s := NewSuggester()
	s.Record("completely unrelated text about plumbing", "7")

	got := s.Suggest("Uber ride downtown")
	assert.Equal(t, catalog.TransportationID, got.ID,
		"a dissimilar history entry must not hijack keyword matches")
}

func TestSuggester_TieBreaksInCatalogOrder(t *testing.T) {
	tests := []struct {
		description string
		wantID      string
	}{
		// One keyword hit each for two categories; the earlier catalog
		// entry wins.
		{"food uber", catalog.FoodDiningID},
		{"netflix doctor", catalog.EntertainmentID},
	}

	for _, tt := range tests {
		s := NewSuggester()
		got := s.Suggest(tt.description)
		assert.Equal(t, tt.wantID, got.ID, "description %q", tt.description)
	}
}

func TestSuggester_ConfidenceBounds(t *testing.T) {
	s := NewSuggester()

	_, low := s.SuggestWithConfidence("xyzzy")
	assert.Equal(t, 0.5, low, "fallback answers carry the floor confidence")

	_, high := s.SuggestWithConfidence("groceries from the grocery supermarket")
	assert.GreaterOrEqual(t, high, 0.7)
	assert.LessOrEqual(t, high, 1.0)

	// Identical input always yields identical confidence.
	_, again := s.SuggestWithConfidence("groceries from the grocery supermarket")
	assert.Equal(t, high, again)
}

func TestSuggester_HistoryCap(t *testing.T) {
	s := NewSuggester()
	for i := 0; i < defaultMaxHistory+50; i++ {
		s.Record("some confirmed description", "1")
	}
	assert.Equal(t, defaultMaxHistory, s.HistorySize())
}
