package repositories

import (
	"context"
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// LedgerEntryPatch carries the only metadata fields an existing entry may
// change. Nil means "leave as is". Authorship and amounts are immutable.
type LedgerEntryPatch struct {
	Reference   *string
	Description *string
	DueDate     *time.Time
	OperationID *string
}

// LedgerRepositoryFacade defines persistence operations for ledger entries.
type LedgerRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	// FindEntries returns all entries, or only one entity's when entityID is non-empty.
	FindEntries(ctx context.Context, entityID string) ([]domain.LedgerEntry, error)
	UpdateEntryMetadata(ctx context.Context, entryID string, patch LedgerEntryPatch, updatedBy string, now time.Time) error
	MarkEntryPaid(ctx context.Context, entryID string, updatedBy string, now time.Time) error
}
