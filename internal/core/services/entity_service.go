package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/dto"
)

// entityService manages the counterparty directory.
type entityService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntityService creates a new entity service.
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntitySvcFacade {
	return &entityService{entityRepo: entityRepo}
}

var (
	_ portssvc.EntitySvcFacade = (*entityService)(nil)
	_ portssvc.EntityDirectory = (*entityService)(nil)
)

func (s *entityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, principal domain.Principal) (*domain.Entity, error) {
	now := time.Now().UTC()
	entity := domain.Entity{
		EntityID: uuid.NewString(),
		Name:     req.Name,
		Type:     domain.EntityType(req.Type),
		Code:     req.Code,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	if entity.Code == "" {
		entity.Code = generateEntityCode(entity.Type, entity.EntityID)
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		s.LogError(ctx, err, "Failed to save entity", slog.String("name", entity.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Entity created",
		slog.String("entity_id", entity.EntityID),
		slog.String("type", string(entity.Type)))
	return &entity, nil
}

func (s *entityService) GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	return s.entityRepo.FindEntityByID(ctx, entityID)
}

func (s *entityService) ListEntities(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]domain.Entity, error) {
	return s.entityRepo.FindEntities(ctx, entityType, includeInactive)
}

func (s *entityService) UpdateEntity(ctx context.Context, entityID string, req dto.UpdateEntityRequest, principal domain.Principal) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Code != nil {
		entity.Code = *req.Code
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.Email != nil {
		entity.Email = *req.Email
	}
	if req.Notes != nil {
		entity.Notes = *req.Notes
	}
	entity.LastUpdatedAt = time.Now().UTC()
	entity.LastUpdatedBy = principal.UserID

	if err := s.entityRepo.UpdateEntity(ctx, *entity); err != nil {
		s.LogError(ctx, err, "Failed to update entity", slog.String("entity_id", entityID))
		return nil, err
	}
	return entity, nil
}

func (s *entityService) ToggleEntityActive(ctx context.Context, entityID string, principal domain.Principal) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.entityRepo.SetEntityActive(ctx, entityID, !entity.IsActive, principal.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to toggle entity", slog.String("entity_id", entityID))
		return nil, err
	}
	entity.IsActive = !entity.IsActive
	entity.LastUpdatedAt = now
	entity.LastUpdatedBy = principal.UserID

	s.LogInfo(ctx, "Entity toggled",
		slog.String("entity_id", entityID),
		slog.Bool("is_active", entity.IsActive))
	return entity, nil
}

func (s *entityService) DeleteEntity(ctx context.Context, entityID string, principal domain.Principal) error {
	if err := s.entityRepo.DeleteEntity(ctx, entityID); err != nil {
		s.LogError(ctx, err, "Failed to delete entity", slog.String("entity_id", entityID))
		return err
	}
	s.LogInfo(ctx, "Entity deleted",
		slog.String("entity_id", entityID),
		slog.String("deleted_by", principal.UserID))
	return nil
}

// LookupRefs builds the display lookup the due partitioner consumes.
// Inactive entities are included: old ledger entries may still reference them.
func (s *entityService) LookupRefs(ctx context.Context) (map[string]domain.EntityRef, error) {
	entities, err := s.entityRepo.FindEntities(ctx, "", true)
	if err != nil {
		return nil, err
	}
	refs := make(map[string]domain.EntityRef, len(entities))
	for _, e := range entities {
		refs[e.EntityID] = domain.EntityRef{Name: e.Name, Type: e.Type, Code: e.Code}
	}
	return refs, nil
}

// generateEntityCode derives a short display code like CUS-1A2B3C4D from the
// entity type and the head of its ID.
func generateEntityCode(entityType domain.EntityType, entityID string) string {
	prefix := "ENT"
	switch entityType {
	case domain.EntityCustomer:
		prefix = "CUS"
	case domain.EntityHotel:
		prefix = "HTL"
	case domain.EntityVehicleOwner:
		prefix = "VHC"
	case domain.EntitySubAgency:
		prefix = "AGY"
	}
	head := strings.ToUpper(strings.ReplaceAll(entityID, "-", ""))
	if len(head) > 8 {
		head = head[:8]
	}
	return fmt.Sprintf("%s-%s", prefix, head)
}
