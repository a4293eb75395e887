package repositories

import (
	"context"
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// EntityRepositoryFacade defines persistence operations for counterparty entities.
type EntityRepositoryFacade interface {
	SaveEntity(ctx context.Context, entity domain.Entity) error
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)
	FindEntities(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]domain.Entity, error)
	UpdateEntity(ctx context.Context, entity domain.Entity) error
	SetEntityActive(ctx context.Context, entityID string, active bool, updatedBy string, now time.Time) error
	DeleteEntity(ctx context.Context, entityID string) error
}
