package domain

// EntityType classifies a counterparty in the agency's books.
type EntityType string

const (
	EntityCustomer     EntityType = "customer"
	EntityHotel        EntityType = "hotel"
	EntityVehicleOwner EntityType = "vehicle_owner"
	EntitySubAgency    EntityType = "sub_agency"
)

// Entity is a counterparty record: customer, hotel, vehicle owner or
// sub-agency. Entities are lifecycle-managed independently of the ledger;
// ledger entries reference them by ID only.
type Entity struct {
	EntityID string     `json:"entityID"`
	Name     string     `json:"name"`
	Type     EntityType `json:"type"`
	Code     string     `json:"code"`
	Phone    string     `json:"phone,omitempty"`
	Email    string     `json:"email,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	IsActive bool       `json:"isActive"`
	AuditFields
}

// EntityRef is the display projection of an entity used to enrich due items.
type EntityRef struct {
	Name string     `json:"name"`
	Type EntityType `json:"type"`
	Code string     `json:"code"`
}
