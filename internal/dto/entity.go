package dto

import (
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// CreateEntityRequest defines the data needed to create a counterparty entity.
type CreateEntityRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=customer hotel vehicle_owner sub_agency"`
	Code  string `json:"code"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

// UpdateEntityRequest defines the fields allowed when updating an entity.
type UpdateEntityRequest struct {
	Name  *string `json:"name"`
	Code  *string `json:"code"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
	Notes *string `json:"notes"`
}

// EntityResponse defines the data returned for an entity.
type EntityResponse struct {
	EntityID  string    `json:"entityID"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Code      string    `json:"code"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToEntityResponse converts a domain.Entity to its response DTO.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		EntityID:  e.EntityID,
		Name:      e.Name,
		Type:      string(e.Type),
		Code:      e.Code,
		Phone:     e.Phone,
		Email:     e.Email,
		Notes:     e.Notes,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

// ToListEntityResponse converts a slice of entities to response DTOs.
func ToListEntityResponse(entities []domain.Entity) []EntityResponse {
	res := make([]EntityResponse, len(entities))
	for i := range entities {
		res[i] = ToEntityResponse(&entities[i])
	}
	return res
}
