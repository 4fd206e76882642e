package models

import (
	"time"
)

// ClearedStatus represents the cleared state of a budget transaction
type ClearedStatus string

const (
	ClearedStatusCleared    ClearedStatus = "cleared"
	ClearedStatusUncleared  ClearedStatus = "uncleared"
	ClearedStatusReconciled ClearedStatus = "reconciled"
)

// YnabTransaction represents a transaction as the budget service knows it.
// Instances are produced and owned by the budget service; this application
// treats them as read-only inputs plus one creation operation.
type YnabTransaction struct {
	ID        string        `json:"id" yaml:"id"`
	AccountID string        `json:"account_id" yaml:"account_id"`
	Date      time.Time     `json:"date" yaml:"date"`
	Amount    Money         `json:"amount" yaml:"amount"`
	PayeeName string        `json:"payee_name" yaml:"payee_name"`
	Memo      string        `json:"memo,omitempty" yaml:"memo,omitempty"`
	Category  Category      `json:"-" yaml:"-"`
	Cleared   ClearedStatus `json:"cleared" yaml:"cleared"`
	Approved  bool          `json:"approved" yaml:"approved"`
	FlagColor string        `json:"flag_color,omitempty" yaml:"flag_color,omitempty"`
}
