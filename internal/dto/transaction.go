package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// UnifiedTransactionResponse is one row of the merged transaction view.
type UnifiedTransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	CreatedBy       string          `json:"createdBy,omitempty"`
}

// ListTransactionsResponse wraps the merged transaction list.
type ListTransactionsResponse struct {
	Transactions []UnifiedTransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts merged transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.UnifiedTransaction) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]UnifiedTransactionResponse, len(txns)),
	}
	for i, t := range txns {
		createdBy := t.CreatedByRef.Name
		if createdBy == "" {
			createdBy = t.CreatedByRef.Username
		}
		res.Transactions[i] = UnifiedTransactionResponse{
			TransactionID:   t.TransactionID,
			Type:            string(t.Type),
			Amount:          t.Amount,
			Currency:        string(t.Currency),
			Category:        t.Category,
			Description:     t.Description,
			TransactionDate: t.EffectiveDate(),
			DueDate:         t.DueDate,
			CreatedBy:       createdBy,
		}
	}
	return res
}
