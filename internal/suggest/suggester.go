// Package suggest implements the category suggestion engine. Given a
// free-text transaction description it proposes the most likely category
// using keyword tables, amount heuristics, and a history of confirmed
// description→category pairs.
package suggest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

const (
	// historySimilarityThreshold is the minimum similarity for a history
	// entry to contribute to scoring.
	historySimilarityThreshold = 0.7
	// historyWeight doubles the contribution of history matches relative
	// to keyword hits.
	historyWeight = 2.0
	// winningScoreThreshold is the minimum score a category must reach
	// before the scored result is preferred over the fallback rules.
	winningScoreThreshold = 0.5
	// defaultMaxHistory bounds the confirmed-pair history; the oldest
	// entries are dropped once the cap is reached.
	defaultMaxHistory = 1000
)

// amountPattern matches a decimal numeral, optionally preceded by $.
var amountPattern = regexp.MustCompile(`\$?\d+(\.\d{2})?`)

// Suggester proposes categories for transaction descriptions. Each user
// session owns one instance; the confirmed-pair history lives on the
// instance, not in package state.
type Suggester struct {
	history []model.HistoryEntry
	max     int
	mu      sync.RWMutex
}

// NewSuggester creates a suggester with an empty history.
func NewSuggester() *Suggester {
	return &Suggester{max: defaultMaxHistory}
}

// Record appends a confirmed description→category pair. Callers invoke this
// once the user accepts a suggestion (or submits an override), building the
// learning signal for future calls.
func (s *Suggester) Record(description, categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, model.HistoryEntry{
		Description: description,
		CategoryID:  categoryID,
	})
	if len(s.history) > s.max {
		s.history = s.history[len(s.history)-s.max:]
	}
}

// HistorySize reports how many confirmed pairs are currently retained.
func (s *Suggester) HistorySize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// Suggest returns the most likely category for a description. It never
// fails: descriptions that match nothing fall through to the "Other"
// expense category.
func (s *Suggester) Suggest(description string) model.Category {
	cat, _ := s.SuggestWithConfidence(description)
	return cat
}

// SuggestWithConfidence returns the suggested category together with a
// confidence value in [0.5, 1]. The confidence is a deterministic function
// of the winning score margin, not a statistical estimate.
func (s *Suggester) SuggestWithConfidence(description string) (model.Category, float64) {
	lowerDesc := strings.ToLower(description)
	scores := make(map[string]float64)

	// History similarity, weighted double.
	s.mu.RLock()
	for _, entry := range s.history {
		similarity := calculateSimilarity(entry.Description, description)
		if similarity > historySimilarityThreshold {
			scores[entry.CategoryID] += similarity * historyWeight
		}
	}
	s.mu.RUnlock()

	// Keyword substring hits accumulate per category.
	for categoryID, keywords := range catalog.Keywords {
		for _, keyword := range keywords {
			if strings.Contains(lowerDesc, keyword) {
				scores[categoryID]++
			}
		}
	}

	// Amount heuristics: large round amounts lean Housing, small amounts
	// lean Food & Dining.
	if match := amountPattern.FindString(lowerDesc); match != "" {
		amount, err := strconv.ParseFloat(strings.TrimPrefix(match, "$"), 64)
		if err == nil {
			if amount > 500 && math.Mod(amount, 100) == 0 {
				scores[catalog.HousingID] += 0.5
			}
			if amount < 20 {
				scores[catalog.FoodDiningID] += 0.3
			}
		}
	}

	// Pick the strictly highest score, walking the catalog so ties resolve
	// deterministically in catalog order.
	var highestScore, runnerUp float64
	var bestCategoryID string
	for _, cat := range catalog.All() {
		score, ok := scores[cat.ID]
		if !ok {
			continue
		}
		switch {
		case score > highestScore:
			runnerUp = highestScore
			highestScore = score
			bestCategoryID = cat.ID
		case score > runnerUp:
			runnerUp = score
		}
	}

	if highestScore > winningScoreThreshold {
		if cat, ok := catalog.ByID(bestCategoryID); ok {
			return cat, confidenceFromMargin(highestScore - runnerUp)
		}
	}

	// Fallback rules for common cases; first matching rule wins.
	if cat, ok := matchFallback(lowerDesc); ok {
		return cat, 0.5
	}

	return catalog.ExpenseCategories[len(catalog.ExpenseCategories)-1], 0.5
}

// fallbackRule pairs a set of high-signal keywords with a fixed category.
type fallbackRule struct {
	categoryID string
	keywords   []string
}

var fallbackRules = []fallbackRule{
	{catalog.FoodDiningID, []string{"food", "restaurant", "lunch", "dinner"}},
	{catalog.TransportationID, []string{"uber", "lyft", "taxi", "gas", "fuel"}},
	{catalog.HousingID, []string{"rent", "mortgage", "home"}},
	{catalog.EntertainmentID, []string{"movie", "netflix", "spotify", "entertainment"}},
	{catalog.SalaryID, []string{"salary", "paycheck", "wage"}},
}

func matchFallback(lowerDesc string) (model.Category, bool) {
	for _, rule := range fallbackRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowerDesc, keyword) {
				cat, ok := catalog.ByID(rule.categoryID)
				return cat, ok
			}
		}
	}
	return model.Category{}, false
}

// confidenceFromMargin maps the gap between the winning and runner-up
// scores onto [0.7, 1].
func confidenceFromMargin(margin float64) float64 {
	c := 0.7 + 0.3*margin
	if c > 1 {
		c = 1
	}
	return c
}
