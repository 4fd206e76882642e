// Package categorizer implements category inference for bank transactions
// using two methods:
// 1. Learned-mapping lookup, ranking mappings whose pattern overlaps the
// transaction's pattern by confidence and occurrence count
// 2. Similarity scoring against the available budget categories as a
// lower-trust fallback
package categorizer

import (
	"fmt"
	"sort"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

const (
	// fallbackDiscount scales fallback-similarity confidence relative to
	// what an equivalent learned-mapping match would have yielded.
	fallbackDiscount = 0.8

	// fallbackMinimumScore is the plausibility gate applied before the
	// discount. Below it the fallback yields no category.
	fallbackMinimumScore = 0.5
)

// Engine infers spending categories for bank transactions. It holds no
// state between invocations; every call receives its full working set as
// input.
type Engine struct {
	log logging.Logger
}

// NewEngine creates a new inference engine
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{log: logger}
}

// Infer produces the best-guess category for one transaction, given the
// categories available in the budget and the learned mappings whose pattern
// overlaps the transaction's pattern.
//
// Transactions that already carry a category skip analysis entirely and
// come back with confidence 1.0; cooperating use cases are expected to
// filter already-categorized transactions rather than rely on this
// short-circuit for bulk work.
func (e *Engine) Infer(tx models.BankTransaction, categories []models.Category, mappings []models.CategoryMapping) models.CategoryInferenceResult {
	if tx.Category.HasMatch() {
		return models.CategoryInferenceResult{
			TransactionID: tx.ID,
			Category:      tx.Category,
			Confidence:    1.0,
			Reasoning:     "Previously inferred.",
		}
	}

	pattern := models.ExtractPattern(tx)

	if best, ok := bestMapping(pattern, mappings); ok {
		e.log.Debug("Learned mapping matched",
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
			logging.Field{Key: logging.FieldCategory, Value: best.Category.Name()},
			logging.Field{Key: logging.FieldConfidence, Value: best.Confidence},
		)
		return models.CategoryInferenceResult{
			TransactionID: tx.ID,
			Category:      best.Category,
			Confidence:    best.Confidence,
			Reasoning: fmt.Sprintf("Exact pattern match from learned mapping (confidence %.2f, confirmed %d times)",
				best.Confidence, best.OccurrenceCount),
		}
	}

	if category, score, ok := bestSimilarity(pattern, categories); ok {
		e.log.Debug("Fallback similarity matched",
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
			logging.Field{Key: logging.FieldCategory, Value: category.Name()},
			logging.Field{Key: logging.FieldConfidence, Value: score * fallbackDiscount},
		)
		return models.CategoryInferenceResult{
			TransactionID: tx.ID,
			Category:      category,
			Confidence:    score * fallbackDiscount,
			Reasoning: fmt.Sprintf("Fallback similarity match against budget category '%s' (similarity %.2f)",
				category.Name(), score),
		}
	}

	return models.CategoryInferenceResult{
		TransactionID: tx.ID,
		Category:      models.UnknownCategory(),
		Confidence:    0.0,
		Reasoning:     "No learned mapping matched and no budget category was similar enough",
	}
}

// bestMapping ranks the applicable mappings by (confidence, occurrence
// count) descending and returns the winner. The sort is stable so equal
// mappings resolve by input order, keeping inference deterministic.
func bestMapping(pattern models.TransactionPattern, mappings []models.CategoryMapping) (models.CategoryMapping, bool) {
	applicable := make([]models.CategoryMapping, 0, len(mappings))
	for _, m := range mappings {
		if m.MatchesPattern(pattern) {
			applicable = append(applicable, m)
		}
	}
	if len(applicable) == 0 {
		return models.CategoryMapping{}, false
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		if applicable[i].Confidence != applicable[j].Confidence {
			return applicable[i].Confidence > applicable[j].Confidence
		}
		return applicable[i].OccurrenceCount > applicable[j].OccurrenceCount
	})

	return applicable[0], true
}
