package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:          newPgxLedgerRepository(dbPool),
		EntityRepo:          newPgxEntityRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
		TransactionFeedRepo: newPgxTransactionFeedRepository(dbPool),
	}
}
