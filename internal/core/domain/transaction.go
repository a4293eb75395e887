package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a unified transaction.
type TransactionType string

const (
	TxnIncome  TransactionType = "INCOME"
	TxnExpense TransactionType = "EXPENSE"
)

// RawTransaction is an income/expense record from the separate transaction
// feed. The feed carries no due dates and only loosely-typed authorship
// (names, no stable user ID).
type RawTransaction struct {
	TransactionID     string          `json:"transactionID"`
	Type              TransactionType `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          Currency        `json:"currency"`
	Category          string          `json:"category,omitempty"`
	Description       string          `json:"description,omitempty"`
	TransactionDate   time.Time       `json:"transactionDate"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedByName     string          `json:"createdByName,omitempty"`
	CreatedByUsername string          `json:"createdByUsername,omitempty"`
}

// Authored exposes authorship for visibility filtering.
func (t RawTransaction) Authored() Authorship {
	return Authorship{Name: t.CreatedByName, Username: t.CreatedByUsername}
}

// UnifiedTransaction is the normalized shape both sources merge into for
// reporting and export. Downstream consumers never need to know whether a
// record originated from the ledger or from the raw feed.
type UnifiedTransaction struct {
	TransactionID   string          `json:"transactionID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        Currency        `json:"currency"`
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	CreatedByRef    Authorship      `json:"createdByRef"`
}

// Authored exposes authorship for visibility filtering.
func (t UnifiedTransaction) Authored() Authorship {
	return t.CreatedByRef
}

// EffectiveDate is the sort key of the merged view: the transaction date,
// falling back to the creation instant when the primary date is absent.
func (t UnifiedTransaction) EffectiveDate() time.Time {
	if !t.TransactionDate.IsZero() {
		return t.TransactionDate
	}
	return t.CreatedAt
}
