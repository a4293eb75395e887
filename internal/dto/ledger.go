package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// CreateLedgerEntryRequest defines the data needed to record a new ledger entry.
type CreateLedgerEntryRequest struct {
	EntityID     string          `json:"entityID" binding:"required"`
	MovementType string          `json:"movementType" binding:"required,oneof=receivable payable income expense"`
	Amount       decimal.Decimal `json:"amount" binding:"nonnegativedecimal"`
	Currency     string          `json:"currency" binding:"omitempty,oneof=TRY USD EUR"`
	Status       string          `json:"status" binding:"omitempty,oneof=planned pending paid overdue"`
	Date         time.Time       `json:"date" binding:"required"`
	DueDate      *time.Time      `json:"dueDate"`
	Reference    string          `json:"reference"`
	OperationID  string          `json:"operationID"`
	Description  string          `json:"description"`
}

// UpdateLedgerEntryRequest defines the metadata fields an entry may change
// after creation. Use pointers to distinguish "unset" from zero values.
type UpdateLedgerEntryRequest struct {
	Reference   *string    `json:"reference"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	OperationID *string    `json:"operationID"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID      string          `json:"entryID"`
	EntityID     string          `json:"entityID"`
	EntityName   string          `json:"entityName,omitempty"`
	MovementType string          `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
	Date         time.Time       `json:"date"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	OperationID  string          `json:"operationID,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:      e.EntryID,
		EntityID:     e.EntityID,
		EntityName:   e.EntityName,
		MovementType: string(e.MovementType),
		Amount:       e.Amount,
		Currency:     string(e.Currency),
		Status:       string(e.Status),
		Date:         e.Date,
		DueDate:      e.DueDate,
		Reference:    e.Reference,
		OperationID:  e.OperationID,
		Description:  e.Description,
		CreatedBy:    e.CreatedByRef.ID,
		CreatedAt:    e.CreatedAt,
	}
}

// ToListLedgerEntryResponse converts a slice of entries to response DTOs.
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}
