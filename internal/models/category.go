package models

type categoryKind int

const (
	categoryKindUnknown categoryKind = iota
	categoryKindBudget
	categoryKindInferred
)

// Category is a closed tagged variant describing the spending category
// assigned to a transaction. A category is either Unknown, a category that
// exists in the budget (with its budget-service id), or a category name
// inferred from bank data alone and not yet tied to a budget category.
type Category struct {
	kind categoryKind
	id   string
	name string
}

// UnknownCategory returns the Unknown category variant
func UnknownCategory() Category {
	return Category{kind: categoryKindUnknown}
}

// NewBudgetCategory creates a category backed by an existing budget category
func NewBudgetCategory(id, name string) Category {
	return Category{kind: categoryKindBudget, id: id, name: name}
}

// NewInferredCategory creates a category inferred from bank data alone
func NewInferredCategory(name string) Category {
	return Category{kind: categoryKindInferred, name: name}
}

// HasMatch returns true for budget and inferred categories, false for Unknown
func (c Category) HasMatch() bool {
	return c.kind != categoryKindUnknown
}

// IsUnknown returns true if no category has been assigned
func (c Category) IsUnknown() bool {
	return c.kind == categoryKindUnknown
}

// IsBudgetCategory returns true if the category exists in the budget service
func (c Category) IsBudgetCategory() bool {
	return c.kind == categoryKindBudget
}

// IsInferred returns true if the category was inferred from bank data alone
func (c Category) IsInferred() bool {
	return c.kind == categoryKindInferred
}

// ID returns the budget category id, or the empty string for Unknown and
// inferred categories
func (c Category) ID() string {
	return c.id
}

// Name returns the category name, or the empty string for Unknown
func (c Category) Name() string {
	return c.name
}

// String returns a display name for the category
func (c Category) String() string {
	if c.kind == categoryKindUnknown {
		return "unknown"
	}
	return c.name
}
