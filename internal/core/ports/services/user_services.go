package services

import (
	"context"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/dto"
)

// UserSvcFacade defines user management and credential operations.
// CRUD is admin-gated; Authenticate backs the login endpoint.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, principal domain.Principal) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int, principal domain.Principal) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, principal domain.Principal) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, principal domain.Principal) error
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
