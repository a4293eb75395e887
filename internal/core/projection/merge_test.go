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

func day(d int) time.Time {
	return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeTransactions_LedgerMapping(t *testing.T) {
	due := day(20)
	entries := []domain.LedgerEntry{
		{
			EntryID:      "l1",
			EntityName:   "Grand Hotel",
			MovementType: domain.Payable,
			Amount:       decimal.NewFromInt(4000),
			Currency:     domain.EUR,
			Status:       domain.StatusPending,
			Date:         day(10),
			DueDate:      &due,
			Reference:    "REF-42",
		},
		{
			EntryID:      "l2",
			MovementType: domain.Income,
			Amount:       decimal.NewFromInt(900),
			Currency:     domain.TRY,
			Status:       domain.StatusPaid,
			Date:         day(11),
			DueDate:      &due,
			Description:  "Tour deposit",
		},
	}

	merged := projection.MergeTransactions(nil, entries)

	require.Len(t, merged, 2)
	// Sorted descending by date: l2 (day 11) first.
	income := merged[0]
	assert.Equal(t, domain.TxnIncome, income.Type)
	assert.Equal(t, "Tour deposit", income.Description)
	assert.Nil(t, income.DueDate, "paid entries never expose a due date")

	expense := merged[1]
	assert.Equal(t, domain.TxnExpense, expense.Type)
	assert.Equal(t, "Grand Hotel - REF-42", expense.Description)
	require.NotNil(t, expense.DueDate)
	assert.True(t, expense.DueDate.Equal(due))
}

func TestMergeTransactions_SortedDescendingWithFallback(t *testing.T) {
	raw := []domain.RawTransaction{
		{TransactionID: "r1", Type: domain.TxnExpense, TransactionDate: day(5), CreatedAt: day(1)},
		{TransactionID: "r2", Type: domain.TxnIncome, CreatedAt: day(15)}, // no transaction date
	}
	entries := []domain.LedgerEntry{
		{EntryID: "l1", MovementType: domain.Receivable, Status: domain.StatusPending, Date: day(9)},
	}

	merged := projection.MergeTransactions(raw, entries)

	require.Len(t, merged, 3)
	assert.Equal(t, "r2", merged[0].TransactionID) // created-at fallback, day 15
	assert.Equal(t, "l1", merged[1].TransactionID) // day 9
	assert.Equal(t, "r1", merged[2].TransactionID) // day 5
}

func TestMergeTransactions_StableTieBreak(t *testing.T) {
	raw := []domain.RawTransaction{
		{TransactionID: "r1", TransactionDate: day(7)},
		{TransactionID: "r2", TransactionDate: day(7)},
	}
	entries := []domain.LedgerEntry{
		{EntryID: "l1", MovementType: domain.Income, Status: domain.StatusPending, Date: day(7)},
	}

	merged := projection.MergeTransactions(raw, entries)

	require.Len(t, merged, 3)
	assert.Equal(t, "r1", merged[0].TransactionID)
	assert.Equal(t, "r2", merged[1].TransactionID)
	assert.Equal(t, "l1", merged[2].TransactionID)
}

func TestMergeTransactions_Idempotent(t *testing.T) {
	raw := []domain.RawTransaction{
		{TransactionID: "r1", Type: domain.TxnIncome, Amount: decimal.NewFromInt(10), TransactionDate: day(3)},
		{TransactionID: "r2", Type: domain.TxnExpense, Amount: decimal.NewFromInt(20), TransactionDate: day(3)},
	}
	entries := []domain.LedgerEntry{
		{EntryID: "l1", MovementType: domain.Expense, Amount: decimal.NewFromInt(30), Status: domain.StatusPending, Date: day(4)},
	}

	first := projection.MergeTransactions(raw, entries)
	second := projection.MergeTransactions(raw, entries)

	assert.Equal(t, first, second)
}

func TestMergeTransactions_RawAuthorshipCarriedOver(t *testing.T) {
	raw := []domain.RawTransaction{
		{TransactionID: "r1", CreatedByName: "Fatma Demir", CreatedByUsername: "fatma", TransactionDate: day(2)},
	}

	merged := projection.MergeTransactions(raw, nil)

	require.Len(t, merged, 1)
	assert.Equal(t, "Fatma Demir", merged[0].CreatedByRef.Name)
	assert.Equal(t, "fatma", merged[0].CreatedByRef.Username)
	assert.Empty(t, merged[0].CreatedByRef.ID)
}
