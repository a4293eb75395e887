package mapping

import (
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/models"
)

// ToModelEntity converts a domain Entity to a model Entity.
func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		EntityID: d.EntityID,
		Name:     d.Name,
		Type:     string(d.Type),
		Code:     d.Code,
		Phone:    d.Phone,
		Email:    d.Email,
		Notes:    d.Notes,
		IsActive: d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainEntity converts a model Entity to a domain Entity.
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID: m.EntityID,
		Name:     m.Name,
		Type:     domain.EntityType(m.Type),
		Code:     m.Code,
		Phone:    m.Phone,
		Email:    m.Email,
		Notes:    m.Notes,
		IsActive: m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainEntitySlice converts a slice of model entities to domain entities.
func ToDomainEntitySlice(ms []models.Entity) []domain.Entity {
	ds := make([]domain.Entity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntity(m)
	}
	return ds
}
