package models

import (
	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
)

// CategorizationStats tracks statistics for a batch categorization run
type CategorizationStats struct {
	Total         int // Total number of transactions processed
	Successful    int // Number of transactions with a non-Unknown category
	Uncategorized int // Number of transactions left with the Unknown category
}

// NewCategorizationStats creates a new CategorizationStats instance
func NewCategorizationStats() *CategorizationStats {
	return &CategorizationStats{}
}

// Record updates the counters for one inference result
func (cs *CategorizationStats) Record(result CategoryInferenceResult) {
	cs.Total++
	if result.IsSuccessful() {
		cs.Successful++
	} else {
		cs.Uncategorized++
	}
}

// GetSuccessRate calculates the success rate as a percentage
func (cs CategorizationStats) GetSuccessRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Successful) / float64(cs.Total) * 100.0
}

// LogSummary logs a summary of categorization statistics
func (cs CategorizationStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: "source", Value: source},
		logging.Field{Key: "total_transactions", Value: cs.Total},
		logging.Field{Key: "successful", Value: cs.Successful},
		logging.Field{Key: "uncategorized", Value: cs.Uncategorized},
		logging.Field{Key: "success_rate", Value: cs.GetSuccessRate()},
	)
}
