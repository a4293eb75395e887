package services

import (
	"context"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/dto"
)

// LedgerSvcFacade defines the write-side operations on the append-only ledger.
// Entries are never deleted; the only mutations are the paid transition and
// the metadata patch.
type LedgerSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, principal domain.Principal) (*domain.LedgerEntry, error)
	GetEntryByID(ctx context.Context, entryID string, principal domain.Principal) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, entityID string, principal domain.Principal) ([]domain.LedgerEntry, error)
	UpdateEntryMetadata(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, principal domain.Principal) (*domain.LedgerEntry, error)
	MarkEntryPaid(ctx context.Context, entryID string, principal domain.Principal) (*domain.LedgerEntry, error)
}
