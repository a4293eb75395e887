package projection_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
)

func entry(movement domain.MovementType, currency domain.Currency, amount int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      "e-" + string(movement) + "-" + string(currency),
		EntityID:     "ent-1",
		MovementType: movement,
		Amount:       decimal.NewFromInt(amount),
		Currency:     currency,
		Status:       domain.StatusPending,
		Date:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregateBalances_PerCurrencyRows(t *testing.T) {
	now := time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		entry(domain.Receivable, domain.TRY, 15000),
		entry(domain.Payable, domain.TRY, 5000),
		entry(domain.Receivable, domain.USD, 500),
	}

	summary := projection.AggregateBalances(entries, now)

	require.Len(t, summary.Balances, 2)
	try := summary.Balances[0]
	assert.Equal(t, domain.TRY, try.Currency)
	assert.True(t, try.Receivable.Equal(decimal.NewFromInt(15000)))
	assert.True(t, try.Payable.Equal(decimal.NewFromInt(5000)))
	assert.True(t, try.Net.Equal(decimal.NewFromInt(10000)))

	usd := summary.Balances[1]
	assert.Equal(t, domain.USD, usd.Currency)
	assert.True(t, usd.Receivable.Equal(decimal.NewFromInt(500)))
	assert.True(t, usd.Payable.IsZero())
	assert.True(t, usd.Net.Equal(decimal.NewFromInt(500)))
}

func TestAggregateBalances_NetIsReceivableMinusPayable(t *testing.T) {
	now := time.Now().UTC()
	entries := []domain.LedgerEntry{
		entry(domain.Income, domain.EUR, 1200),
		entry(domain.Expense, domain.EUR, 700),
		entry(domain.Payable, domain.EUR, 300),
	}

	summary := projection.AggregateBalances(entries, now)

	require.Len(t, summary.Balances, 1)
	row := summary.Balances[0]
	assert.True(t, row.Net.Equal(row.Receivable.Sub(row.Payable)))
	assert.True(t, row.Net.Equal(decimal.NewFromInt(200)))
}

func TestAggregateBalances_EmptyInput(t *testing.T) {
	summary := projection.AggregateBalances(nil, time.Now().UTC())

	assert.Empty(t, summary.Balances)
	assert.Zero(t, summary.OverdueCount)
	assert.Zero(t, summary.UpcomingDueCount)
}

func TestAggregateBalances_MissingCurrencyDefaultsToTRY(t *testing.T) {
	e := entry(domain.Receivable, "", 100)
	summary := projection.AggregateBalances([]domain.LedgerEntry{e}, time.Now().UTC())

	require.Len(t, summary.Balances, 1)
	assert.Equal(t, domain.TRY, summary.Balances[0].Currency)
}

func TestAggregateBalances_CurrencyIsolation(t *testing.T) {
	now := time.Now().UTC()
	entries := []domain.LedgerEntry{
		entry(domain.Receivable, domain.TRY, 1000),
		entry(domain.Receivable, domain.USD, 1000),
		entry(domain.Receivable, domain.EUR, 1000),
	}

	summary := projection.AggregateBalances(entries, now)

	require.Len(t, summary.Balances, 3)
	for _, row := range summary.Balances {
		assert.True(t, row.Receivable.Equal(decimal.NewFromInt(1000)),
			"currency %s must only contain its own amounts", row.Currency)
	}
}

func TestAggregateBalances_DueCounts(t *testing.T) {
	now := time.Date(2024, 12, 24, 9, 0, 0, 0, time.UTC)
	dueIn := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	overdue := entry(domain.Receivable, domain.TRY, 1)
	overdue.Status = domain.StatusOverdue

	withinWindow := entry(domain.Receivable, domain.TRY, 2)
	withinWindow.DueDate = dueIn(7) // inclusive upper bound

	dueToday := entry(domain.Receivable, domain.TRY, 3)
	dueToday.DueDate = dueIn(0) // inclusive lower bound

	beyondWindow := entry(domain.Receivable, domain.TRY, 4)
	beyondWindow.DueDate = dueIn(8)

	paid := entry(domain.Receivable, domain.TRY, 5)
	paid.Status = domain.StatusPaid
	paid.DueDate = dueIn(1)

	summary := projection.AggregateBalances(
		[]domain.LedgerEntry{overdue, withinWindow, dueToday, beyondWindow, paid}, now)

	assert.Equal(t, 1, summary.OverdueCount)
	assert.Equal(t, 2, summary.UpcomingDueCount)
}
