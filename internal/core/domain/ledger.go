package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger entry by the direction money moves.
// Receivable and income increase the net balance; payable and expense decrease it.
type MovementType string

const (
	Receivable MovementType = "receivable"
	Payable    MovementType = "payable"
	Income     MovementType = "income"
	Expense    MovementType = "expense"
)

// IsInflow reports whether the movement increases the net balance.
func (m MovementType) IsInflow() bool {
	return m == Receivable || m == Income
}

// EntryStatus is the settlement state of a ledger entry.
type EntryStatus string

const (
	StatusPlanned EntryStatus = "planned"
	StatusPending EntryStatus = "pending"
	StatusPaid    EntryStatus = "paid"
	StatusOverdue EntryStatus = "overdue"
)

// Currency is an ISO code restricted to the currencies the agency operates in.
type Currency string

const (
	TRY Currency = "TRY"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// NormalizeCurrency coerces unknown or empty currency codes to TRY.
// The upstream automation feed cannot be schema-validated at the source, so
// aggregation degrades to the house currency instead of failing.
func NormalizeCurrency(c Currency) (Currency, bool) {
	switch c {
	case TRY, USD, EUR:
		return c, true
	default:
		return TRY, false
	}
}

// Authorship identifies who created a record. The ledger write path always
// carries a stable user ID; the raw transaction feed only carries names, so
// ID may be empty for merged data.
type Authorship struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
}

// LedgerEntry is an immutable fact about money owed or paid, tied to a
// counterparty entity. Entries are append-only: after creation only the
// paid transition and the metadata fields (reference, description, due date,
// operation ID) may change. Authorship never changes.
type LedgerEntry struct {
	EntryID      string          `json:"entryID"`
	EntityID     string          `json:"entityID"`
	EntityName   string          `json:"entityName"` // denormalized for display, may lag the directory
	MovementType MovementType    `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"` // non-negative magnitude, sign derived from MovementType
	Currency     Currency        `json:"currency"`
	Status       EntryStatus     `json:"status"`
	Date         time.Time       `json:"date"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	OperationID  string          `json:"operationID,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatedByRef Authorship      `json:"createdByRef"`
	AuditFields
}

// Authored exposes authorship for visibility filtering.
func (e LedgerEntry) Authored() Authorship {
	return e.CreatedByRef
}

// HasDueDate reports whether the entry carries a usable due date.
func (e LedgerEntry) HasDueDate() bool {
	return e.DueDate != nil && !e.DueDate.IsZero()
}

// Validate checks the invariants that hold for every ledger entry.
func (e LedgerEntry) Validate() error {
	switch e.MovementType {
	case Receivable, Payable, Income, Expense:
	default:
		return fmt.Errorf("invalid movement type %q", e.MovementType)
	}
	switch e.Status {
	case StatusPlanned, StatusPending, StatusPaid, StatusOverdue:
	default:
		return fmt.Errorf("invalid entry status %q", e.Status)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", e.Amount.String())
	}
	if e.EntityID == "" {
		return fmt.Errorf("entity ID is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}
