package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

func newEngine() *Engine {
	return NewEngine(&logging.MockLogger{})
}

func groceriesMapping(confidence float64, occurrences int) models.CategoryMapping {
	return models.CategoryMapping{
		ID:              "map-groceries",
		Category:        models.NewBudgetCategory("cat-1", "Groceries"),
		Tokens:          models.NewTransactionPattern("migros", "coop"),
		Confidence:      confidence,
		OccurrenceCount: occurrences,
	}
}

func migrosTransaction() models.BankTransaction {
	return models.BankTransaction{
		ID:          "tx-1",
		Merchant:    "Migros",
		Description: "MIGROS ZURICH HB",
		Category:    models.UnknownCategory(),
	}
}

func TestInferShortCircuitsCategorizedTransaction(t *testing.T) {
	tx := migrosTransaction().WithCategory(models.NewBudgetCategory("cat-9", "Transport"))

	// Mappings that would otherwise win must be ignored entirely.
	result := newEngine().Infer(tx, nil, []models.CategoryMapping{groceriesMapping(0.99, 10)})

	assert.Equal(t, "tx-1", result.TransactionID)
	assert.Equal(t, "Transport", result.Category.Name())
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, "Previously inferred.", result.Reasoning)
	assert.True(t, result.IsSuccessful())
}

func TestInferShortCircuitIsIdempotent(t *testing.T) {
	engine := newEngine()
	tx := migrosTransaction()

	first := engine.Infer(tx, nil, []models.CategoryMapping{groceriesMapping(0.9, 3)})
	require.True(t, first.IsSuccessful())

	second := engine.Infer(tx.WithCategory(first.Category), nil, nil)
	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, 1.0, second.Confidence)
	assert.Equal(t, "Previously inferred.", second.Reasoning)
}

func TestInferPrefersLearnedMapping(t *testing.T) {
	result := newEngine().Infer(migrosTransaction(),
		[]models.Category{models.NewBudgetCategory("cat-2", "Migros Shopping")},
		[]models.CategoryMapping{groceriesMapping(0.9, 3)})

	assert.Equal(t, "Groceries", result.Category.Name())
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, "Exact pattern match from learned mapping (confidence 0.90, confirmed 3 times)", result.Reasoning)
}

func TestInferRanksMappingsByConfidenceThenOccurrences(t *testing.T) {
	low := groceriesMapping(0.6, 50)
	high := groceriesMapping(0.9, 2)
	high.ID = "map-high"
	high.Category = models.NewBudgetCategory("cat-3", "Food")

	sameConfidence := groceriesMapping(0.9, 8)
	sameConfidence.ID = "map-often"
	sameConfidence.Category = models.NewBudgetCategory("cat-4", "Eating Out")

	result := newEngine().Infer(migrosTransaction(), nil,
		[]models.CategoryMapping{low, high, sameConfidence})

	assert.Equal(t, "Eating Out", result.Category.Name(), "equal confidence resolves by occurrence count")
	assert.Equal(t, 0.9, result.Confidence)
}

func TestInferIgnoresNonMatchingMappings(t *testing.T) {
	unrelated := models.CategoryMapping{
		Category:        models.NewBudgetCategory("cat-5", "Fuel"),
		Tokens:          models.NewTransactionPattern("shell", "esso"),
		Confidence:      0.99,
		OccurrenceCount: 20,
	}

	result := newEngine().Infer(migrosTransaction(), nil, []models.CategoryMapping{unrelated})

	assert.False(t, result.IsSuccessful())
	assert.True(t, result.Category.IsUnknown())
}

func TestInferFallsBackToSimilarity(t *testing.T) {
	categories := []models.Category{
		models.NewBudgetCategory("cat-1", "Insurance"),
		models.NewBudgetCategory("cat-2", "Migros Groceries"),
	}

	result := newEngine().Infer(migrosTransaction(), categories, nil)

	require.True(t, result.IsSuccessful())
	assert.Equal(t, "Migros Groceries", result.Category.Name())
	// Exact token match scores 1.0, discounted to 0.8.
	assert.InDelta(t, 0.8, result.Confidence, 0.0001)
	assert.Equal(t, "Fallback similarity match against budget category 'Migros Groceries' (similarity 1.00)", result.Reasoning)
}

func TestInferFallbackSubstringScore(t *testing.T) {
	tx := models.BankTransaction{
		ID:          "tx-2",
		Merchant:    "Migrolino",
		Description: "MIGROLINO AG",
		Category:    models.UnknownCategory(),
	}
	categories := []models.Category{models.NewBudgetCategory("cat-1", "Migro")}

	result := newEngine().Infer(tx, categories, nil)

	require.True(t, result.IsSuccessful())
	// "migro" is contained in "migrolino": substring containment scores
	// 0.75, discounted to 0.6.
	assert.InDelta(t, 0.6, result.Confidence, 0.0001)
}

func TestInferNoMatchAtAll(t *testing.T) {
	tx := models.BankTransaction{
		ID:          "tx-3",
		Merchant:    "zzzqqq",
		Description: "zzzqqq",
		Category:    models.UnknownCategory(),
	}
	categories := []models.Category{models.NewBudgetCategory("cat-1", "Insurance")}

	result := newEngine().Infer(tx, categories, nil)

	assert.False(t, result.IsSuccessful())
	assert.True(t, result.Category.IsUnknown())
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "No learned mapping matched and no budget category was similar enough", result.Reasoning)
}

func TestInferNoCategoriesNoMappings(t *testing.T) {
	result := newEngine().Infer(migrosTransaction(), nil, nil)
	assert.False(t, result.IsSuccessful())
}

func TestTokenSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"Identical", "migros", "migros", 1.0},
		{"Substring", "migros", "migro", 0.75},
		{"CloseSpelling", "coop", "coap", 0.75}, // distance 1 over 4 runes
		{"Unrelated", "zz", "qq", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tokenSimilarity(tt.a, tt.b), 0.0001)
		})
	}
}
