// Package projection is the read-side engine over the append-only ledger:
// balance aggregation, due-date partitioning, visibility filtering and the
// two-source transaction merge. Everything here is pure computation; callers
// supply the data and the reference instant, and nothing is mutated.
package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// upcomingWindowDays is the inclusive window used for the summary's
// upcoming-due count.
const upcomingWindowDays = 7

// AggregateBalances reduces a set of ledger entries into per-currency
// receivable/payable/net rows plus overdue and upcoming-due counts.
// Currency rows appear in first-seen order. Entries with an unknown or
// missing currency are coerced to TRY. An empty input yields an empty
// summary, not an error.
func AggregateBalances(entries []domain.LedgerEntry, now time.Time) domain.BalanceSummary {
	summary := domain.BalanceSummary{Balances: []domain.CurrencyBalance{}}
	index := make(map[domain.Currency]int)

	for _, entry := range entries {
		currency, _ := domain.NormalizeCurrency(entry.Currency)

		i, seen := index[currency]
		if !seen {
			i = len(summary.Balances)
			index[currency] = i
			summary.Balances = append(summary.Balances, domain.CurrencyBalance{
				Currency:   currency,
				Receivable: decimal.Zero,
				Payable:    decimal.Zero,
			})
		}

		if entry.MovementType.IsInflow() {
			summary.Balances[i].Receivable = summary.Balances[i].Receivable.Add(entry.Amount)
		} else {
			summary.Balances[i].Payable = summary.Balances[i].Payable.Add(entry.Amount)
		}

		if entry.Status == domain.StatusOverdue {
			summary.OverdueCount++
		}
		if entry.Status == domain.StatusPending && entry.HasDueDate() {
			days := DaysUntil(now, *entry.DueDate)
			if days >= 0 && days <= upcomingWindowDays {
				summary.UpcomingDueCount++
			}
		}
	}

	for i := range summary.Balances {
		summary.Balances[i].Net = summary.Balances[i].Receivable.Sub(summary.Balances[i].Payable)
	}
	return summary
}
