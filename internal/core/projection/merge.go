package projection

import (
	"sort"
	"strings"
	"time"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// MergeTransactions unifies the raw transaction feed with ledger-derived
// pseudo-transactions into one chronologically sorted list for reporting and
// export. The result is ordered descending by transaction date, falling back
// to the creation instant, with ties broken by input order (stable sort), so
// re-running the merge on the same inputs yields an identical list.
func MergeTransactions(raw []domain.RawTransaction, entries []domain.LedgerEntry) []domain.UnifiedTransaction {
	merged := make([]domain.UnifiedTransaction, 0, len(raw)+len(entries))
	for _, t := range raw {
		merged = append(merged, fromRaw(t))
	}
	for _, e := range entries {
		merged = append(merged, fromLedger(e))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EffectiveDate().After(merged[j].EffectiveDate())
	})
	return merged
}

func fromRaw(t domain.RawTransaction) domain.UnifiedTransaction {
	currency, _ := domain.NormalizeCurrency(t.Currency)
	return domain.UnifiedTransaction{
		TransactionID:   t.TransactionID,
		Type:            t.Type,
		Amount:          t.Amount,
		Currency:        currency,
		Category:        t.Category,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		CreatedByRef:    t.Authored(),
	}
}

func fromLedger(e domain.LedgerEntry) domain.UnifiedTransaction {
	txnType := domain.TxnExpense
	if e.MovementType.IsInflow() {
		txnType = domain.TxnIncome
	}

	// Paid entries never show a due date downstream, even if one was
	// recorded historically.
	var due *time.Time
	if e.Status != domain.StatusPaid && e.HasDueDate() {
		d := *e.DueDate
		due = &d
	}

	currency, _ := domain.NormalizeCurrency(e.Currency)
	return domain.UnifiedTransaction{
		TransactionID:   e.EntryID,
		Type:            txnType,
		Amount:          e.Amount,
		Currency:        currency,
		Category:        string(e.MovementType),
		Description:     ledgerDescription(e),
		TransactionDate: e.Date,
		CreatedAt:       e.CreatedAt,
		DueDate:         due,
		CreatedByRef:    e.CreatedByRef,
	}
}

// ledgerDescription falls back to a synthesized entity-name/reference string
// when the entry carries no description of its own.
func ledgerDescription(e domain.LedgerEntry) string {
	if e.Description != "" {
		return e.Description
	}
	parts := make([]string, 0, 2)
	if e.EntityName != "" {
		parts = append(parts, e.EntityName)
	}
	if e.Reference != "" {
		parts = append(parts, e.Reference)
	}
	if len(parts) == 0 {
		return string(e.MovementType)
	}
	return strings.Join(parts, " - ")
}
