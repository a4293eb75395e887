package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripofis/travel_ledger_app/internal/apperrors"
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripofis/travel_ledger_app/internal/models"
	"github.com/tripofis/travel_ledger_app/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `
	entry_id, entity_id, entity_name, movement_type, amount, currency, status,
	txn_date, due_date, reference, operation_id, description,
	created_by_id, created_by_name, created_by_username,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.EntityID, m.EntityName, m.MovementType, m.Amount, m.Currency, m.Status,
		m.Date, m.DueDate, m.Reference, m.OperationID, m.Description,
		m.CreatedByID, m.CreatedByName, m.CreatedByUsername,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainLedgerEntry(*m)
	return &entry, nil
}

func (r *PgxLedgerRepository) FindEntries(ctx context.Context, entityID string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries`
	args := []any{}
	if entityID != "" {
		query += ` WHERE entity_id = $1`
		args = append(args, entityID)
	}
	query += ` ORDER BY txn_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

func (r *PgxLedgerRepository) UpdateEntryMetadata(ctx context.Context, entryID string, patch portsrepo.LedgerEntryPatch, updatedBy string, now time.Time) error {
	query := `
		UPDATE ledger_entries SET
			reference = COALESCE($2, reference),
			description = COALESCE($3, description),
			due_date = COALESCE($4, due_date),
			operation_id = COALESCE($5, operation_id),
			last_updated_at = $6,
			last_updated_by = $7
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entryID, patch.Reference, patch.Description, patch.DueDate, patch.OperationID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) MarkEntryPaid(ctx context.Context, entryID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE ledger_entries SET
			status = 'paid',
			last_updated_at = $2,
			last_updated_by = $3
		WHERE entry_id = $1 AND status <> 'paid';
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark ledger entry %s paid: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already paid; distinguish for the caller.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ledger_entries WHERE entry_id = $1)`, entryID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check ledger entry %s: %w", entryID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrDuplicate
	}
	return nil
}

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.EntityID, &m.EntityName, &m.MovementType, &m.Amount, &m.Currency, &m.Status,
		&m.Date, &m.DueDate, &m.Reference, &m.OperationID, &m.Description,
		&m.CreatedByID, &m.CreatedByName, &m.CreatedByUsername,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
