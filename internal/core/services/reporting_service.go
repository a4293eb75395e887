package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
)

// weeklyStatsDays is the trailing window of the dashboard's weekly totals,
// inclusive of today.
const weeklyStatsDays = 7

// reportingService runs the read-side projections over the ledger and the
// raw transaction feed. All computation is delegated to the pure projection
// package; this layer only fetches inputs and applies visibility.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	feedRepo   portsrepo.TransactionFeedRepositoryFacade
	directory  portssvc.EntityDirectory
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	feedRepo portsrepo.TransactionFeedRepositoryFacade,
	directory portssvc.EntityDirectory,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo: ledgerRepo,
		feedRepo:   feedRepo,
		directory:  directory,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) BalanceSummary(ctx context.Context, entityID string, principal domain.Principal, now time.Time) (*domain.BalanceSummary, error) {
	entries, err := s.visibleEntries(ctx, entityID, principal)
	if err != nil {
		return nil, err
	}

	summary := projection.AggregateBalances(entries, now)
	s.LogInfo(ctx, "Balance summary computed",
		slog.String("entity_id", entityID),
		slog.Int("entry_count", len(entries)),
		slog.Int("currency_count", len(summary.Balances)))
	return &summary, nil
}

func (s *reportingService) DueItems(ctx context.Context, filters projection.DueFilters, principal domain.Principal, now time.Time) (upcoming, overdue []domain.DueItem, err error) {
	entries, err := s.visibleEntries(ctx, "", principal)
	if err != nil {
		return nil, nil, err
	}

	refs, err := s.directory.LookupRefs(ctx)
	if err != nil {
		// Placeholder enrichment still produces a usable partition.
		s.LogWarn(ctx, "Entity directory unavailable, due items use placeholders", slog.String("error", err.Error()))
		refs = map[string]domain.EntityRef{}
	}
	lookup := func(entityID string) *domain.EntityRef {
		if ref, ok := refs[entityID]; ok {
			return &ref
		}
		return nil
	}

	upcoming, overdue = projection.PartitionDue(entries, now, filters, lookup)
	s.LogInfo(ctx, "Due items partitioned",
		slog.Int("upcoming", len(upcoming)),
		slog.Int("overdue", len(overdue)))
	return upcoming, overdue, nil
}

func (s *reportingService) UnifiedTransactions(ctx context.Context, principal domain.Principal) ([]domain.UnifiedTransaction, error) {
	raw, err := s.feedRepo.FindRawTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch raw transaction feed")
		return nil, fmt.Errorf("failed to fetch raw transactions: %w", err)
	}
	entries, err := s.ledgerRepo.FindEntries(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger entries for merge")
		return nil, err
	}

	// Normalize both sources before any filtering touches them, so the
	// visibility rule never special-cases origin.
	merged := projection.MergeTransactions(raw, entries)
	return projection.FilterVisible(merged, principal), nil
}

func (s *reportingService) Dashboard(ctx context.Context, principal domain.Principal, now time.Time) (*domain.DashboardSummary, error) {
	entries, err := s.visibleEntries(ctx, "", principal)
	if err != nil {
		return nil, err
	}
	txns, err := s.UnifiedTransactions(ctx, principal)
	if err != nil {
		return nil, err
	}

	balances := projection.AggregateBalances(entries, now)
	dashboard := domain.DashboardSummary{
		Balances:         balances.Balances,
		OverdueCount:     balances.OverdueCount,
		UpcomingDueCount: balances.UpcomingDueCount,
		WeeklyTotals:     weeklyTotals(txns, now),
		ExpenseBreakdown: expenseBreakdown(txns),
		TransactionCount: len(txns),
	}
	return &dashboard, nil
}

func (s *reportingService) visibleEntries(ctx context.Context, entityID string, principal domain.Principal) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntries(ctx, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger entries", slog.String("entity_id", entityID))
		return nil, err
	}
	return projection.FilterVisible(entries, principal), nil
}

// weeklyTotals sums income and expense per currency over the trailing week,
// inclusive of today, on UTC calendar days. Currencies appear in the order
// they are first seen in the merged list.
func weeklyTotals(txns []domain.UnifiedTransaction, now time.Time) []domain.PeriodTotal {
	totals := []domain.PeriodTotal{}
	index := map[domain.Currency]int{}

	for _, t := range txns {
		age := -projection.DaysUntil(now, t.EffectiveDate())
		if age < 0 || age >= weeklyStatsDays {
			continue
		}
		i, seen := index[t.Currency]
		if !seen {
			i = len(totals)
			index[t.Currency] = i
			totals = append(totals, domain.PeriodTotal{
				Currency: t.Currency,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			})
		}
		if t.Type == domain.TxnIncome {
			totals[i].Income = totals[i].Income.Add(t.Amount)
		} else {
			totals[i].Expense = totals[i].Expense.Add(t.Amount)
		}
	}
	return totals
}

// expenseBreakdown groups expense amounts by category and currency, in
// first-seen order. Uncategorized records fall under "other".
func expenseBreakdown(txns []domain.UnifiedTransaction) []domain.CategoryTotal {
	breakdown := []domain.CategoryTotal{}
	type key struct {
		category string
		currency domain.Currency
	}
	index := map[key]int{}

	for _, t := range txns {
		if t.Type != domain.TxnExpense {
			continue
		}
		category := t.Category
		if category == "" {
			category = "other"
		}
		k := key{category, t.Currency}
		i, seen := index[k]
		if !seen {
			i = len(breakdown)
			index[k] = i
			breakdown = append(breakdown, domain.CategoryTotal{
				Category: category,
				Currency: t.Currency,
				Total:    decimal.Zero,
			})
		}
		breakdown[i].Total = breakdown[i].Total.Add(t.Amount)
	}
	return breakdown
}
