package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransaction is the row shape of the externally-fed income/expense table.
// The feed carries loosely-typed authorship columns and no due dates.
type RawTransaction struct {
	TransactionID     string          `db:"transaction_id"`
	Type              string          `db:"txn_type"`
	Amount            decimal.Decimal `db:"amount"`
	Currency          string          `db:"currency"`
	Category          *string         `db:"category"`
	Description       *string         `db:"description"`
	TransactionDate   *time.Time      `db:"transaction_date"`
	CreatedAt         time.Time       `db:"created_at"`
	CreatedByName     *string         `db:"created_by_name"`
	CreatedByUsername *string         `db:"created_by_username"`
}
