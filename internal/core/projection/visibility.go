package projection

import (
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// Authored is anything carrying authorship information: ledger entries, raw
// feed transactions and merged unified transactions all qualify.
type Authored interface {
	Authored() domain.Authorship
}

// FilterVisible restricts items to those the principal is authorized to see.
// admin and finance_admin see the full set unchanged; finance_user sees only
// items it created. Items the principal cannot be matched to are excluded:
// under-sharing is the safe default for a financial ledger.
func FilterVisible[T Authored](items []T, principal domain.Principal) []T {
	if principal.Role.CanViewAll() {
		return items
	}
	visible := make([]T, 0, len(items))
	for _, item := range items {
		if createdByPrincipal(item.Authored(), principal) {
			visible = append(visible, item)
		}
	}
	return visible
}

// createdByPrincipal matches an item's authorship against the principal.
// The ID match is authoritative. The name fallback exists because the raw
// transaction feed does not carry a stable user ID; it is a deliberate,
// imperfect compatibility shim and only applies when no ID is present.
func createdByPrincipal(a domain.Authorship, p domain.Principal) bool {
	if a.ID != "" {
		return a.ID == p.UserID
	}
	if a.Username != "" && a.Username == p.Username {
		return true
	}
	if a.Name != "" && (a.Name == p.Username || a.Name == p.DisplayName) {
		return true
	}
	return false
}
