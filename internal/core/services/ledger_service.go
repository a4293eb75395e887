package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tripofis/travel_ledger_app/internal/apperrors"
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
	"github.com/tripofis/travel_ledger_app/internal/dto"
)

// ledgerService implements the write side of the append-only ledger.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, entityRepo portsrepo.EntityRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		entityRepo: entityRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, principal domain.Principal) (*domain.LedgerEntry, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, req.EntityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entity %s", apperrors.ErrValidation, req.EntityID)
		}
		return nil, fmt.Errorf("failed to resolve entity %s: %w", req.EntityID, err)
	}
	if !entity.IsActive {
		return nil, fmt.Errorf("%w: entity %s is inactive", apperrors.ErrValidation, req.EntityID)
	}

	currency, known := domain.NormalizeCurrency(domain.Currency(req.Currency))
	if !known && req.Currency != "" {
		// Best-effort feed data; coerce rather than reject.
		s.LogWarn(ctx, "Unknown currency coerced to TRY", slog.String("currency", req.Currency))
	}

	status := domain.EntryStatus(req.Status)
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		EntryID:      uuid.NewString(),
		EntityID:     entity.EntityID,
		EntityName:   entity.Name,
		MovementType: domain.MovementType(req.MovementType),
		Amount:       req.Amount,
		Currency:     currency,
		Status:       status,
		Date:         req.Date,
		DueDate:      req.DueDate,
		Reference:    req.Reference,
		OperationID:  req.OperationID,
		Description:  req.Description,
		CreatedByRef: domain.Authorship{
			ID:       principal.UserID,
			Name:     principal.DisplayName,
			Username: principal.Username,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("entity_id", entry.EntityID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entity_id", entry.EntityID),
		slog.String("movement_type", string(entry.MovementType)))
	return &entry, nil
}

func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string, principal domain.Principal) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(*entry, principal) {
		// Report not-found rather than forbidden to avoid leaking entry existence.
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, entityID string, principal domain.Principal) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntries(ctx, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("entity_id", entityID))
		return nil, err
	}
	return projection.FilterVisible(entries, principal), nil
}

func (s *ledgerService) UpdateEntryMetadata(ctx context.Context, entryID string, req dto.UpdateLedgerEntryRequest, principal domain.Principal) (*domain.LedgerEntry, error) {
	entry, err := s.GetEntryByID(ctx, entryID, principal)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patch := portsrepo.LedgerEntryPatch{
		Reference:   req.Reference,
		Description: req.Description,
		DueDate:     req.DueDate,
		OperationID: req.OperationID,
	}
	if err := s.ledgerRepo.UpdateEntryMetadata(ctx, entry.EntryID, patch, principal.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update ledger entry metadata", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry metadata updated", slog.String("entry_id", entryID))
	return s.ledgerRepo.FindEntryByID(ctx, entryID)
}

func (s *ledgerService) MarkEntryPaid(ctx context.Context, entryID string, principal domain.Principal) (*domain.LedgerEntry, error) {
	entry, err := s.GetEntryByID(ctx, entryID, principal)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.StatusPaid {
		return nil, fmt.Errorf("%w: entry %s is already paid", apperrors.ErrDuplicate, entryID)
	}

	if err := s.ledgerRepo.MarkEntryPaid(ctx, entryID, principal.UserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to mark ledger entry paid", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry marked paid", slog.String("entry_id", entryID))
	return s.ledgerRepo.FindEntryByID(ctx, entryID)
}

// canAccess applies the same visibility rule the read projections use.
func (s *ledgerService) canAccess(entry domain.LedgerEntry, principal domain.Principal) bool {
	return len(projection.FilterVisible([]domain.LedgerEntry{entry}, principal)) == 1
}
