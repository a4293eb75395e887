package mapping

import (
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/models"
)

// ToDomainRawTransaction converts a raw feed row to its domain shape,
// flattening nullable columns.
func ToDomainRawTransaction(m models.RawTransaction) domain.RawTransaction {
	t := domain.RawTransaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Currency:      domain.Currency(m.Currency),
		CreatedAt:     m.CreatedAt,
	}
	if m.Category != nil {
		t.Category = *m.Category
	}
	if m.Description != nil {
		t.Description = *m.Description
	}
	if m.TransactionDate != nil {
		t.TransactionDate = *m.TransactionDate
	}
	if m.CreatedByName != nil {
		t.CreatedByName = *m.CreatedByName
	}
	if m.CreatedByUsername != nil {
		t.CreatedByUsername = *m.CreatedByUsername
	}
	return t
}

// ToDomainRawTransactionSlice converts a slice of raw feed rows.
func ToDomainRawTransactionSlice(ms []models.RawTransaction) []domain.RawTransaction {
	ds := make([]domain.RawTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRawTransaction(m)
	}
	return ds
}
