package models

// CategoryInferenceResult is the outcome of inferring a category for one
// transaction: the chosen category, a confidence score in [0,1], and a
// human-readable reasoning string kept for audit and debugging. The
// reasoning is never machine-parsed.
type CategoryInferenceResult struct {
	TransactionID string
	Category      Category
	Confidence    float64
	Reasoning     string
}

// IsSuccessful reports whether the inference produced a usable category.
// Success is decided solely by the category variant; the confidence value
// is deliberately not thresholded, so even low-confidence guesses surface
// for human review instead of being silently dropped.
func (r CategoryInferenceResult) IsSuccessful() bool {
	return r.Category.HasMatch()
}
