package mapping

import (
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:           d.EntryID,
		EntityID:          d.EntityID,
		EntityName:        d.EntityName,
		MovementType:      string(d.MovementType),
		Amount:            d.Amount,
		Currency:          string(d.Currency),
		Status:            string(d.Status),
		Date:              d.Date,
		DueDate:           d.DueDate,
		Reference:         d.Reference,
		OperationID:       d.OperationID,
		Description:       d.Description,
		CreatedByID:       d.CreatedByRef.ID,
		CreatedByName:     d.CreatedByRef.Name,
		CreatedByUsername: d.CreatedByRef.Username,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		EntityID:     m.EntityID,
		EntityName:   m.EntityName,
		MovementType: domain.MovementType(m.MovementType),
		Amount:       m.Amount,
		Currency:     domain.Currency(m.Currency),
		Status:       domain.EntryStatus(m.Status),
		Date:         m.Date,
		DueDate:      m.DueDate,
		Reference:    m.Reference,
		OperationID:  m.OperationID,
		Description:  m.Description,
		CreatedByRef: domain.Authorship{
			ID:       m.CreatedByID,
			Name:     m.CreatedByName,
			Username: m.CreatedByUsername,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
