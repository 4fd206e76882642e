package models

const (
	highConfidenceThreshold   = 0.8
	highConfidenceOccurrences = 2
)

// CategoryMapping is a previously confirmed association between a
// transaction pattern and a category. Mappings are maintained by the
// mapping store; this application only reads and ranks them.
type CategoryMapping struct {
	ID              string
	Category        Category
	Tokens          TransactionPattern
	Confidence      float64
	OccurrenceCount int
}

// IsHighConfidence reports whether the mapping has a confidence of at least
// 0.8 AND at least two confirmed occurrences. Both conditions are required;
// neither alone suffices.
func (m CategoryMapping) IsHighConfidence() bool {
	return m.Confidence >= highConfidenceThreshold && m.OccurrenceCount >= highConfidenceOccurrences
}

// MatchesPattern reports whether this mapping applies to the given pattern
func (m CategoryMapping) MatchesPattern(pattern TransactionPattern) bool {
	return m.Tokens.Matches(pattern)
}
