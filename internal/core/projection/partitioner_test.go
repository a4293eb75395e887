package projection_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
)

func dueEntry(id string, status domain.EntryStatus, due time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      id,
		EntityID:     "ent-1",
		MovementType: domain.Receivable,
		Amount:       decimal.NewFromInt(100),
		Currency:     domain.TRY,
		Status:       status,
		Date:         due.AddDate(0, 0, -30),
		DueDate:      &due,
	}
}

func intPtr(v int) *int { return &v }

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 12, 24, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"nine days overdue", time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), -9},
		{"due earlier today", time.Date(2024, 12, 24, 8, 0, 0, 0, time.UTC), 0},
		{"due later today", time.Date(2024, 12, 24, 23, 59, 0, 0, time.UTC), 0},
		{"due tomorrow", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), 1},
		{"due next week", time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projection.DaysUntil(now, tt.due))
		})
	}
}

func TestPartitionDue_OverdueScenario(t *testing.T) {
	now := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	e := dueEntry("e1", domain.StatusPending, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
	e.Amount = decimal.NewFromInt(22000)

	upcoming, overdue := projection.PartitionDue([]domain.LedgerEntry{e}, now, projection.DueFilters{}, nil)

	assert.Empty(t, upcoming)
	require.Len(t, overdue, 1)
	assert.Equal(t, -9, overdue[0].DaysUntilDue)
}

func TestPartitionDue_PaidExcluded(t *testing.T) {
	now := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		dueEntry("paid-past", domain.StatusPaid, now.AddDate(0, 0, -5)),
		dueEntry("paid-future", domain.StatusPaid, now.AddDate(0, 0, 5)),
	}

	upcoming, overdue := projection.PartitionDue(entries, now, projection.DueFilters{}, nil)

	assert.Empty(t, upcoming)
	assert.Empty(t, overdue)
}

func TestPartitionDue_NoDueDateExcluded(t *testing.T) {
	now := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	e := dueEntry("e1", domain.StatusPending, now)
	e.DueDate = nil
	zero := time.Time{}
	malformed := dueEntry("e2", domain.StatusPending, now)
	malformed.DueDate = &zero // unparseable upstream dates arrive as zero values

	upcoming, overdue := projection.PartitionDue([]domain.LedgerEntry{e, malformed}, now, projection.DueFilters{}, nil)

	assert.Empty(t, upcoming)
	assert.Empty(t, overdue)
}

func TestPartitionDue_DueNowIsUpcoming(t *testing.T) {
	now := time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC)
	e := dueEntry("e1", domain.StatusPending, time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC))

	upcoming, overdue := projection.PartitionDue([]domain.LedgerEntry{e}, now, projection.DueFilters{}, nil)

	require.Len(t, upcoming, 1)
	assert.Empty(t, overdue)
	assert.Equal(t, 0, upcoming[0].DaysUntilDue)
}

func TestPartitionDue_DaysWindow(t *testing.T) {
	now := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	nineDaysOut := dueEntry("e1", domain.StatusPending, now.AddDate(0, 0, 9))
	longOverdue := dueEntry("e2", domain.StatusPending, now.AddDate(0, 0, -40))

	upcoming, overdue := projection.PartitionDue(
		[]domain.LedgerEntry{nineDaysOut, longOverdue}, now,
		projection.DueFilters{DaysWindow: intPtr(7)}, nil)
	assert.Empty(t, upcoming, "entry 9 days out excluded by a 7-day window")
	require.Len(t, overdue, 1, "overdue entries are never truncated by the window")

	upcoming, _ = projection.PartitionDue(
		[]domain.LedgerEntry{nineDaysOut}, now,
		projection.DueFilters{DaysWindow: intPtr(14)}, nil)
	assert.Len(t, upcoming, 1)
}

func TestPartitionDue_EntityFilters(t *testing.T) {
	now := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	hotelEntry := dueEntry("e1", domain.StatusPending, now.AddDate(0, 0, 3))
	hotelEntry.EntityID = "hotel-1"
	customerEntry := dueEntry("e2", domain.StatusPending, now.AddDate(0, 0, 3))
	customerEntry.EntityID = "cust-1"

	lookup := func(entityID string) *domain.EntityRef {
		switch entityID {
		case "hotel-1":
			return &domain.EntityRef{Name: "Grand Hotel", Type: domain.EntityHotel, Code: "HTL-001"}
		case "cust-1":
			return &domain.EntityRef{Name: "Ayşe Yılmaz", Type: domain.EntityCustomer, Code: "CUS-001"}
		}
		return nil
	}

	entries := []domain.LedgerEntry{hotelEntry, customerEntry}

	upcoming, _ := projection.PartitionDue(entries, now,
		projection.DueFilters{EntityType: domain.EntityHotel}, lookup)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Grand Hotel", upcoming[0].EntityName)
	assert.Equal(t, "HTL-001", upcoming[0].EntityCode)

	upcoming, _ = projection.PartitionDue(entries, now,
		projection.DueFilters{EntityID: "cust-1"}, lookup)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "e2", upcoming[0].EntryID)
}

func TestPartitionDue_MissingEntityLookup(t *testing.T) {
	now := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	e := dueEntry("e1", domain.StatusPending, now.AddDate(0, 0, 2))

	upcoming, _ := projection.PartitionDue([]domain.LedgerEntry{e}, now,
		projection.DueFilters{}, func(string) *domain.EntityRef { return nil })

	require.Len(t, upcoming, 1)
	assert.Equal(t, "Unknown Entity", upcoming[0].EntityName)
	assert.Equal(t, "N/A", upcoming[0].EntityCode)
}
