package dto

import (
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// LoginRequest defines the credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest defines the data needed to create a user (admin only).
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=admin finance_admin finance_user"`
}

// UpdateUserRequest defines the fields allowed when updating a user.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin finance_admin finance_user"`
	IsActive    *bool   `json:"isActive"`
}

// UserResponse defines the data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of users to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
