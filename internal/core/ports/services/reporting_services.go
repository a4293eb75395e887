package services

import (
	"context"
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
)

// ReportingSvcFacade exposes the read-side projections: balance summaries,
// due partitions, the merged transaction view and the dashboard aggregate.
// The reference instant is always supplied by the caller so the projections
// stay deterministic under test.
type ReportingSvcFacade interface {
	BalanceSummary(ctx context.Context, entityID string, principal domain.Principal, now time.Time) (*domain.BalanceSummary, error)
	DueItems(ctx context.Context, filters projection.DueFilters, principal domain.Principal, now time.Time) (upcoming, overdue []domain.DueItem, err error)
	UnifiedTransactions(ctx context.Context, principal domain.Principal) ([]domain.UnifiedTransaction, error)
	Dashboard(ctx context.Context, principal domain.Principal, now time.Time) (*domain.DashboardSummary, error)
}
