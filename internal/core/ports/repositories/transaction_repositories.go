package repositories

import (
	"context"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// TransactionFeedRepositoryFacade reads the raw income/expense feed. The feed
// is written by an external automation pipeline; this side only consumes it.
type TransactionFeedRepositoryFacade interface {
	FindRawTransactions(ctx context.Context) ([]domain.RawTransaction, error)
}
