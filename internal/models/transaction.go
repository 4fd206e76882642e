package models

import (
	"time"
)

// TransactionDirection represents the direction of a transaction
type TransactionDirection string

const (
	DirectionDebit  TransactionDirection = "debit"
	DirectionCredit TransactionDirection = "credit"
)

// MerchantNameMaxLength is the maximum stored length of a merchant name.
// Longer names are truncated on import.
const MerchantNameMaxLength = 50

// BankTransaction represents a normalized transaction imported from a raw
// bank feed. Instances are immutable once constructed; WithCategory returns
// a new value rather than mutating in place.
//
// Memo and Reference are reserved for feeds that supply them; the CSV
// import path carries neither, so both stay empty there.
type BankTransaction struct {
	ID          string               `json:"id" yaml:"id"`
	AccountID   string               `json:"account_id" yaml:"account_id"`
	Date        time.Time            `json:"date" yaml:"date"`
	Amount      Money                `json:"amount" yaml:"amount"`
	Description string               `json:"description" yaml:"description"`
	Merchant    string               `json:"merchant" yaml:"merchant"`
	Memo        string               `json:"memo,omitempty" yaml:"memo,omitempty"`
	Direction   TransactionDirection `json:"direction" yaml:"direction"`
	Reference   string               `json:"reference,omitempty" yaml:"reference,omitempty"`
	Category    Category             `json:"-" yaml:"-"`
}

// IsDebit returns true if the transaction is a debit (outgoing money)
func (t BankTransaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is a credit (incoming money)
func (t BankTransaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// WithCategory returns a copy of the transaction carrying the given category
func (t BankTransaction) WithCategory(category Category) BankTransaction {
	t.Category = category
	return t
}

// DirectionForAmount derives the debit/credit indicator from an amount's
// sign. Zero counts as credit.
func DirectionForAmount(amount Money) TransactionDirection {
	if amount.IsNegative() {
		return DirectionDebit
	}
	return DirectionCredit
}

// TruncateMerchant truncates a merchant name to MerchantNameMaxLength
// characters
func TruncateMerchant(name string) string {
	runes := []rune(name)
	if len(runes) <= MerchantNameMaxLength {
		return name
	}
	return string(runes[:MerchantNameMaxLength])
}
