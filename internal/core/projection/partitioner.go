package projection

import (
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// Placeholder display values for due items whose entity is missing from the
// directory. A failed lookup never fails the partition.
const (
	unknownEntityName = "Unknown Entity"
	unknownEntityCode = "N/A"
)

// EntityLookup resolves an entity ID to its display fields. A nil return
// means the entity is not known to the directory.
type EntityLookup func(entityID string) *domain.EntityRef

// DueFilters are the optional post-filters a caller may apply to the
// partition result. DaysWindow truncates the upcoming list only; overdue
// entries are never windowed away.
type DueFilters struct {
	DaysWindow *int
	EntityType domain.EntityType
	EntityID   string
}

// DaysUntil computes the signed whole-day distance from now to due on UTC
// calendar days. Comparing calendar days rather than truncating the raw
// difference keeps an entry due later today at 0 instead of -1.
func DaysUntil(now, due time.Time) int {
	nowDay := utcMidnight(now)
	dueDay := utcMidnight(due)
	return int(dueDay.Sub(nowDay) / (24 * time.Hour))
}

func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// PartitionDue splits the entries with a due date into upcoming
// (daysUntilDue >= 0) and overdue (daysUntilDue < 0) lists, relative to the
// supplied instant. Paid entries and entries without a due date are excluded
// entirely. Each surviving item is enriched with entity display fields via
// the supplied lookup; lookup misses fall back to placeholder values.
// For a fixed now and input the output is fully deterministic.
func PartitionDue(entries []domain.LedgerEntry, now time.Time, filters DueFilters, lookup EntityLookup) (upcoming, overdue []domain.DueItem) {
	upcoming = []domain.DueItem{}
	overdue = []domain.DueItem{}

	for _, entry := range entries {
		if entry.Status == domain.StatusPaid || !entry.HasDueDate() {
			continue
		}
		if filters.EntityID != "" && entry.EntityID != filters.EntityID {
			continue
		}

		item := domain.DueItem{
			LedgerEntry:  entry,
			DaysUntilDue: DaysUntil(now, *entry.DueDate),
			EntityName:   unknownEntityName,
			EntityCode:   unknownEntityCode,
		}
		if lookup != nil {
			if ref := lookup(entry.EntityID); ref != nil {
				item.EntityName = ref.Name
				item.EntityType = ref.Type
				item.EntityCode = ref.Code
			}
		}
		if filters.EntityType != "" && item.EntityType != filters.EntityType {
			continue
		}

		if item.DaysUntilDue < 0 {
			overdue = append(overdue, item)
			continue
		}
		if filters.DaysWindow != nil && item.DaysUntilDue > *filters.DaysWindow {
			continue
		}
		upcoming = append(upcoming, item)
	}
	return upcoming, overdue
}
