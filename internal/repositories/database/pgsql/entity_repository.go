package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripofis/travel_ledger_app/internal/apperrors"
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripofis/travel_ledger_app/internal/models"
	"github.com/tripofis/travel_ledger_app/internal/utils/mapping"
)

type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(db *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

const entityColumns = `
	entity_id, name, entity_type, code, phone, email, notes, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntityID, m.Name, m.Type, m.Code, m.Phone, m.Email, m.Notes, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save entity: %w", err)
	}
	return nil
}

func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_id = $1;`
	m, err := scanEntity(r.Pool.QueryRow(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entity %s: %w", entityID, err)
	}
	entity := mapping.ToDomainEntity(*m)
	return &entity, nil
}

func (r *PgxEntityRepository) FindEntities(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE 1=1`
	args := []any{}
	if entityType != "" {
		args = append(args, string(entityType))
		query += fmt.Sprintf(` AND entity_type = $%d`, len(args))
	}
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	entities := []models.Entity{}
	for rows.Next() {
		m, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		entities = append(entities, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entities: %w", err)
	}
	return mapping.ToDomainEntitySlice(entities), nil
}

func (r *PgxEntityRepository) UpdateEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		UPDATE entities SET
			name = $2, code = $3, phone = $4, email = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE entity_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntityID, m.Name, m.Code, m.Phone, m.Email, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update entity %s: %w", entity.EntityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntityRepository) SetEntityActive(ctx context.Context, entityID string, active bool, updatedBy string, now time.Time) error {
	query := `
		UPDATE entities SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entity_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, entityID, active, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set entity %s active=%t: %w", entityID, active, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntityRepository) DeleteEntity(ctx context.Context, entityID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entities WHERE entity_id = $1;`, entityID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Referenced by ledger entries; the directory record must stay.
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to delete entity %s: %w", entityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanEntity(row pgx.Row) (*models.Entity, error) {
	var m models.Entity
	err := row.Scan(
		&m.EntityID, &m.Name, &m.Type, &m.Code, &m.Phone, &m.Email, &m.Notes, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
