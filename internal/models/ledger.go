package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database row shape for a ledger entry.
// Authorship is denormalized into created_by_* columns because the raw feed
// the rows are merged with only carries names.
type LedgerEntry struct {
	EntryID           string          `db:"entry_id"`
	EntityID          string          `db:"entity_id"`
	EntityName        string          `db:"entity_name"`
	MovementType      string          `db:"movement_type"`
	Amount            decimal.Decimal `db:"amount"`
	Currency          string          `db:"currency"`
	Status            string          `db:"status"`
	Date              time.Time       `db:"txn_date"`
	DueDate           *time.Time      `db:"due_date"`
	Reference         string          `db:"reference"`
	OperationID       string          `db:"operation_id"`
	Description       string          `db:"description"`
	CreatedByID       string          `db:"created_by_id"`
	CreatedByName     string          `db:"created_by_name"`
	CreatedByUsername string          `db:"created_by_username"`
	AuditFields
}

// AuditFields holds standard audit columns shared by all rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
