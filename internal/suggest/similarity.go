package suggest

import "strings"

// minTokenLength filters out short tokens before overlap matching.
const minTokenLength = 3

// calculateSimilarity scores how alike two descriptions are, in [0, 1].
// Identical strings score 1, full containment scores 0.8, and everything
// else scores by token overlap: tokens shorter than three characters are
// skipped, a token from the first string matches the first equal-or-
// containing token from the second, and the match count is divided by the
// larger of the two token totals.
func calculateSimilarity(str1, str2 string) float64 {
	s1 := strings.ToLower(str1)
	s2 := strings.ToLower(str2)

	if s1 == s2 {
		return 1
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.8
	}

	words1 := strings.Fields(s1)
	words2 := strings.Fields(s2)

	matchCount := 0
	for _, word1 := range words1 {
		if len(word1) < minTokenLength {
			continue
		}
		for _, word2 := range words2 {
			if len(word2) < minTokenLength {
				continue
			}
			if word1 == word2 || strings.Contains(word1, word2) || strings.Contains(word2, word1) {
				matchCount++
				break
			}
		}
	}

	larger := len(words1)
	if len(words2) > larger {
		larger = len(words2)
	}
	if larger == 0 {
		return 0
	}

	return float64(matchCount) / float64(larger)
}
