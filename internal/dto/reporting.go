package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// CurrencyBalanceResponse is one per-currency row of a balance summary.
type CurrencyBalanceResponse struct {
	Currency   string          `json:"currency"`
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
	Net        decimal.Decimal `json:"net"`
}

// BalanceSummaryResponse is the balance report for one entity or the whole book.
type BalanceSummaryResponse struct {
	Balances         []CurrencyBalanceResponse `json:"balances"`
	OverdueCount     int                       `json:"overdueCount"`
	UpcomingDueCount int                       `json:"upcomingDueCount"`
}

// DueItemResponse is one upcoming or overdue item with day-count arithmetic
// and entity display fields.
type DueItemResponse struct {
	EntryID      string          `json:"entryID"`
	EntityID     string          `json:"entityID"`
	EntityName   string          `json:"entityName"`
	EntityType   string          `json:"entityType"`
	EntityCode   string          `json:"entityCode"`
	MovementType string          `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	DaysUntilDue int             `json:"daysUntilDue"`
	Reference    string          `json:"reference,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// DueReportResponse partitions due items into upcoming and overdue lists.
type DueReportResponse struct {
	Upcoming []DueItemResponse `json:"upcoming"`
	Overdue  []DueItemResponse `json:"overdue"`
}

// PeriodTotalResponse is a per-currency income/expense total for a period.
type PeriodTotalResponse struct {
	Currency string          `json:"currency"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}

// CategoryTotalResponse is an expense total for one category and currency.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardResponse is the role-gated dashboard aggregate.
type DashboardResponse struct {
	Balances         []CurrencyBalanceResponse `json:"balances"`
	OverdueCount     int                       `json:"overdueCount"`
	UpcomingDueCount int                       `json:"upcomingDueCount"`
	WeeklyTotals     []PeriodTotalResponse     `json:"weeklyTotals"`
	ExpenseBreakdown []CategoryTotalResponse   `json:"expenseBreakdown"`
	TransactionCount int                       `json:"transactionCount"`
}

// ToBalanceSummaryResponse converts a domain balance summary to its DTO.
func ToBalanceSummaryResponse(s *domain.BalanceSummary) BalanceSummaryResponse {
	res := BalanceSummaryResponse{
		Balances:         make([]CurrencyBalanceResponse, len(s.Balances)),
		OverdueCount:     s.OverdueCount,
		UpcomingDueCount: s.UpcomingDueCount,
	}
	for i, b := range s.Balances {
		res.Balances[i] = toCurrencyBalanceResponse(b)
	}
	return res
}

func toCurrencyBalanceResponse(b domain.CurrencyBalance) CurrencyBalanceResponse {
	return CurrencyBalanceResponse{
		Currency:   string(b.Currency),
		Receivable: b.Receivable,
		Payable:    b.Payable,
		Net:        b.Net,
	}
}

// ToDueReportResponse converts partitioned due items to the report DTO.
func ToDueReportResponse(upcoming, overdue []domain.DueItem) DueReportResponse {
	return DueReportResponse{
		Upcoming: toDueItemResponses(upcoming),
		Overdue:  toDueItemResponses(overdue),
	}
}

func toDueItemResponses(items []domain.DueItem) []DueItemResponse {
	res := make([]DueItemResponse, len(items))
	for i, item := range items {
		res[i] = DueItemResponse{
			EntryID:      item.EntryID,
			EntityID:     item.EntityID,
			EntityName:   item.EntityName,
			EntityType:   string(item.EntityType),
			EntityCode:   item.EntityCode,
			MovementType: string(item.MovementType),
			Amount:       item.Amount,
			Currency:     string(item.Currency),
			Status:       string(item.Status),
			DueDate:      item.DueDate,
			DaysUntilDue: item.DaysUntilDue,
			Reference:    item.Reference,
			Description:  item.Description,
		}
	}
	return res
}

// ToDashboardResponse converts the dashboard aggregate to its DTO.
func ToDashboardResponse(d *domain.DashboardSummary) DashboardResponse {
	res := DashboardResponse{
		Balances:         make([]CurrencyBalanceResponse, len(d.Balances)),
		OverdueCount:     d.OverdueCount,
		UpcomingDueCount: d.UpcomingDueCount,
		WeeklyTotals:     make([]PeriodTotalResponse, len(d.WeeklyTotals)),
		ExpenseBreakdown: make([]CategoryTotalResponse, len(d.ExpenseBreakdown)),
		TransactionCount: d.TransactionCount,
	}
	for i, b := range d.Balances {
		res.Balances[i] = toCurrencyBalanceResponse(b)
	}
	for i, w := range d.WeeklyTotals {
		res.WeeklyTotals[i] = PeriodTotalResponse{
			Currency: string(w.Currency),
			Income:   w.Income,
			Expense:  w.Expense,
		}
	}
	for i, c := range d.ExpenseBreakdown {
		res.ExpenseBreakdown[i] = CategoryTotalResponse{
			Category: c.Category,
			Currency: string(c.Currency),
			Total:    c.Total,
		}
	}
	return res
}
