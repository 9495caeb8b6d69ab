package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// maxSuggestDistance caps how far a typo can be from a category name before
// we stop offering it as a correction.
const maxSuggestDistance = 5

// ResolveCategory matches user input against a catalog slice by id or by
// case-insensitive name. Unrecognized input produces an error carrying the
// closest category name when one is plausibly a typo.
func ResolveCategory(input string, categories []model.Category) (model.Category, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return model.Category{}, fmt.Errorf("category is required")
	}

	for _, cat := range categories {
		if cat.ID == needle || strings.ToLower(cat.Name) == needle {
			return cat, nil
		}
	}

	if closest := closestCategoryName(needle, categories); closest != "" {
		return model.Category{}, fmt.Errorf("unknown category %q (did you mean %q?)", input, closest)
	}
	return model.Category{}, fmt.Errorf("unknown category %q", input)
}

func closestCategoryName(needle string, categories []model.Category) string {
	best := maxSuggestDistance + 1
	var name string
	for _, cat := range categories {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(cat.Name))
		if dist < best {
			best = dist
			name = cat.Name
		}
	}
	if best > maxSuggestDistance {
		return ""
	}
	return name
}
