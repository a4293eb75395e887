package models

import "time"

// User is the database row shape for a user.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	DisplayName  string `db:"display_name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"` // soft delete
}
