package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyBalance is one per-currency row of a balance summary.
// Amounts of different currencies are never summed together.
type CurrencyBalance struct {
	Currency   Currency        `json:"currency"`
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
	Net        decimal.Decimal `json:"net"` // receivable - payable
}

// BalanceSummary is a derived, never-persisted aggregate over a set of
// ledger entries, computed fresh on every query.
type BalanceSummary struct {
	Balances         []CurrencyBalance `json:"balances"`
	OverdueCount     int               `json:"overdueCount"`
	UpcomingDueCount int               `json:"upcomingDueCount"`
}

// DueItem is a ledger entry enriched with day-count arithmetic and entity
// display fields. Negative DaysUntilDue means overdue.
type DueItem struct {
	LedgerEntry
	DaysUntilDue int        `json:"daysUntilDue"`
	EntityName   string     `json:"entityName"`
	EntityType   EntityType `json:"entityType"`
	EntityCode   string     `json:"entityCode"`
}

// PeriodTotal is an income/expense total for one currency over a reporting
// period (dashboard weekly stats).
type PeriodTotal struct {
	Currency Currency        `json:"currency"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}

// CategoryTotal is an expense total for one category and currency
// (dashboard expense distribution).
type CategoryTotal struct {
	Category string          `json:"category"`
	Currency Currency        `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardSummary is the aggregate backing the role-gated dashboard.
type DashboardSummary struct {
	Balances          []CurrencyBalance `json:"balances"`
	OverdueCount      int               `json:"overdueCount"`
	UpcomingDueCount  int               `json:"upcomingDueCount"`
	WeeklyTotals      []PeriodTotal     `json:"weeklyTotals"`
	ExpenseBreakdown  []CategoryTotal   `json:"expenseBreakdown"`
	TransactionCount  int               `json:"transactionCount"`
}
