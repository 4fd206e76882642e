package categorizer

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// bestSimilarity scores the transaction pattern against every available
// budget category and returns the best one, provided its score clears the
// plausibility gate. Categories are scanned in input order so ties resolve
// deterministically.
func bestSimilarity(pattern models.TransactionPattern, categories []models.Category) (models.Category, float64, bool) {
	var best models.Category
	bestScore := 0.0

	for _, category := range categories {
		score := categorySimilarity(pattern, category)
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	if bestScore < fallbackMinimumScore {
		return models.Category{}, 0, false
	}
	return best, bestScore, true
}

// categorySimilarity returns the best token-level similarity between the
// pattern and the category name, in [0,1].
func categorySimilarity(pattern models.TransactionPattern, category models.Category) float64 {
	best := 0.0
	for _, categoryToken := range strings.Fields(strings.ToLower(category.Name())) {
		for _, token := range pattern.Tokens() {
			if score := tokenSimilarity(token, categoryToken); score > best {
				best = score
			}
		}
	}
	return best
}

// tokenSimilarity compares two lower-cased tokens: identical tokens score
// 1.0, substring containment 0.75, anything else a normalized levenshtein
// ratio.
func tokenSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.75
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}

	distance := levenshtein.ComputeDistance(a, b)
	similarity := 1.0 - float64(distance)/float64(longest)
	if similarity < 0 {
		return 0
	}
	return similarity
}
