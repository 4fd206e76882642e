package models

import (
	"fmt"
	"time"
)

// ReconciliationStrategy selects the date-tolerance predicate used when
// matching bank transactions against budget transactions. Amount comparison
// is always exact-equality regardless of strategy.
type ReconciliationStrategy string

const (
	// StrategyStrict requires identical dates.
	StrategyStrict ReconciliationStrategy = "strict"
	// StrategyRange allows dates to differ by up to RangeToleranceDays in
	// either direction.
	StrategyRange ReconciliationStrategy = "range"
)

// RangeToleranceDays is the inclusive day tolerance of StrategyRange.
const RangeToleranceDays = 3

// ParseReconciliationStrategy parses a strategy name
func ParseReconciliationStrategy(s string) (ReconciliationStrategy, error) {
	switch ReconciliationStrategy(s) {
	case StrategyStrict:
		return StrategyStrict, nil
	case StrategyRange:
		return StrategyRange, nil
	default:
		return "", fmt.Errorf("unknown reconciliation strategy '%s' (must be 'strict' or 'range')", s)
	}
}

// DatesMatch applies the strategy's date tolerance to two calendar dates
func (s ReconciliationStrategy) DatesMatch(a, b time.Time) bool {
	if s == StrategyRange {
		return DaysBetween(a, b) <= RangeToleranceDays
	}
	return DaysBetween(a, b) == 0
}

// DaysBetween returns the absolute difference between two dates in whole
// calendar days, ignoring any time-of-day component.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	days := int(ad.Sub(bd).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// ReconciliationSummary carries the headline numbers of one reconciliation
// run
type ReconciliationSummary struct {
	Strategy                ReconciliationStrategy `json:"strategy"`
	AccountID               string                 `json:"account_id"`
	From                    time.Time              `json:"from"`
	To                      time.Time              `json:"to"`
	TotalBankTransactions   int                    `json:"total_bank_transactions"`
	TotalBudgetTransactions int                    `json:"total_budget_transactions"`
	MatchedCount            int                    `json:"matched_count"`
	MissingCount            int                    `json:"missing_count"`
}

// IsFullyReconciled returns true if no bank transaction is missing from the
// budget
func (s ReconciliationSummary) IsFullyReconciled() bool {
	return s.MissingCount == 0
}

// ReconciliationResult partitions the bank transactions of an account and
// date range into those already present in the budget and those missing
// from it. Both lists preserve bank-transaction input order.
type ReconciliationResult struct {
	Matched []BankTransaction
	Missing []BankTransaction
	Summary ReconciliationSummary
}
