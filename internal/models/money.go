// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an exact decimal monetary amount.
// The budget operates in a single currency, so no currency code travels with
// the value. Equality and comparison are exact-value, never float-tolerant.
type Money struct {
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// NewMoney creates a new Money instance from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount}
}

// NewMoneyFromString creates a new Money instance from a string amount.
// The full decimal precision of the input is preserved.
func NewMoneyFromString(amount string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return Money{Amount: dec}, nil
}

// ZeroMoney returns a Money instance with a zero amount
func ZeroMoney() Money {
	return Money{Amount: decimal.Zero}
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Abs returns the absolute value of the money amount
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs()}
}

// Neg returns the negated money amount
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg()}
}

// Add adds another Money value to this one
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount)}
}

// Sub subtracts another Money value from this one
func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount)}
}

// Equal returns true if two Money values carry exactly the same amount
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount)
}

// Cmp compares two Money values.
// Returns -1 if m < other, 0 if m == other, 1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.Amount.Cmp(other.Amount)
}

// Milliunits returns the amount in YNAB milliunits (amount * 1000)
func (m Money) Milliunits() int64 {
	return m.Amount.Mul(decimal.NewFromInt(1000)).IntPart()
}

// String returns the amount in decimal notation without trailing zeros,
// so "100.50" renders as "100.5". The stored value keeps the full input
// precision; use StringFixed for a fixed-scale rendering.
func (m Money) String() string {
	return m.Amount.String()
}

// StringFixed returns a string representation with fixed decimal places
func (m Money) StringFixed(places int32) string {
	return m.Amount.StringFixed(places)
}
