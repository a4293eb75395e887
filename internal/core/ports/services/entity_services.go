package services

import (
	"context"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/dto"
)

// EntitySvcFacade defines operations on the counterparty directory.
type EntitySvcFacade interface {
	CreateEntity(ctx context.Context, req dto.CreateEntityRequest, principal domain.Principal) (*domain.Entity, error)
	GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)
	ListEntities(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]domain.Entity, error)
	UpdateEntity(ctx context.Context, entityID string, req dto.UpdateEntityRequest, principal domain.Principal) (*domain.Entity, error)
	ToggleEntityActive(ctx context.Context, entityID string, principal domain.Principal) (*domain.Entity, error)
	DeleteEntity(ctx context.Context, entityID string, principal domain.Principal) error
}

// EntityDirectory is the narrow lookup collaborator the due partitioner
// consumes for display enrichment.
type EntityDirectory interface {
	LookupRefs(ctx context.Context) (map[string]domain.EntityRef, error)
}
