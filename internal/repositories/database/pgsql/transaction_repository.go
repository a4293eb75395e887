package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripofis/travel_ledger_app/internal/models"
	"github.com/tripofis/travel_ledger_app/internal/utils/mapping"
)

// PgxTransactionFeedRepository reads the raw_transactions table, which is
// written by the external automation pipeline. This side never writes to it.
type PgxTransactionFeedRepository struct {
	BaseRepository
}

func newPgxTransactionFeedRepository(db *pgxpool.Pool) portsrepo.TransactionFeedRepositoryFacade {
	return &PgxTransactionFeedRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionFeedRepositoryFacade = (*PgxTransactionFeedRepository)(nil)

func (r *PgxTransactionFeedRepository) FindRawTransactions(ctx context.Context) ([]domain.RawTransaction, error) {
	query := `
		SELECT transaction_id, txn_type, amount, currency, category, description,
			transaction_date, created_at, created_by_name, created_by_username
		FROM raw_transactions
		ORDER BY COALESCE(transaction_date, created_at) DESC, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.RawTransaction{}
	for rows.Next() {
		var m models.RawTransaction
		if err := rows.Scan(
			&m.TransactionID, &m.Type, &m.Amount, &m.Currency, &m.Category, &m.Description,
			&m.TransactionDate, &m.CreatedAt, &m.CreatedByName, &m.CreatedByUsername,
		); err != nil {
			return nil, fmt.Errorf("failed to scan raw transaction: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating raw transactions: %w", err)
	}
	return mapping.ToDomainRawTransactionSlice(txns), nil
}
