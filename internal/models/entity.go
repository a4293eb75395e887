package models

// Entity is the database row shape for a counterparty entity.
type Entity struct {
	EntityID string `db:"entity_id"`
	Name     string `db:"name"`
	Type     string `db:"entity_type"`
	Code     string `db:"code"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	Notes    string `db:"notes"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
