package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/core/projection"
	"github.com/tripofis/travel_ledger_app/internal/core/services"
)

// --- Mock TransactionFeedRepository ---
type MockTransactionFeedRepository struct {
	mock.Mock
}

func (m *MockTransactionFeedRepository) FindRawTransactions(ctx context.Context) ([]domain.RawTransaction, error) {
	args := m.Called(ctx)
	var txns []domain.RawTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.RawTransaction)
	}
	return txns, args.Error(1)
}

// --- Mock EntityDirectory ---
type MockEntityDirectory struct {
	mock.Mock
}

func (m *MockEntityDirectory) LookupRefs(ctx context.Context) (map[string]domain.EntityRef, error) {
	args := m.Called(ctx)
	var refs map[string]domain.EntityRef
	if args.Get(0) != nil {
		refs = args.Get(0).(map[string]domain.EntityRef)
	}
	return refs, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockFeedRepo   *MockTransactionFeedRepository
	mockDirectory  *MockEntityDirectory
	service        portssvc.ReportingSvcFacade

	admin   domain.Principal
	regular domain.Principal
	now     time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockFeedRepo = new(MockTransactionFeedRepository)
	suite.mockDirectory = new(MockEntityDirectory)
	suite.service = services.NewReportingService(suite.mockLedgerRepo, suite.mockFeedRepo, suite.mockDirectory)

	suite.admin = domain.Principal{UserID: "admin-1", Username: "admin", DisplayName: "Admin", Role: domain.RoleAdmin}
	suite.regular = domain.Principal{UserID: "user-1", Username: "ayse", DisplayName: "Ayşe Yılmaz", Role: domain.RoleFinanceUser}
	suite.now = time.Date(2024, 12, 24, 14, 30, 0, 0, time.UTC)
}

func ownedEntry(id string, mt domain.MovementType, amount int64, currency domain.Currency, owner string) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      id,
		EntityID:     "ent-1",
		MovementType: mt,
		Amount:       decimal.NewFromInt(amount),
		Currency:     currency,
		Status:       domain.StatusPending,
		Date:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		CreatedByRef: domain.Authorship{ID: owner},
	}
}

// --- BalanceSummary Tests ---
func (suite *ReportingServiceTestSuite) TestBalanceSummary_PerCurrency() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		ownedEntry("e1", domain.Receivable, 1000, domain.TRY, "admin-1"),
		ownedEntry("e2", domain.Payable, 400, domain.TRY, "admin-1"),
		ownedEntry("e3", domain.Receivable, 250, domain.USD, "admin-1"),
	}

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return(entries, nil).Once()

	summary, err := suite.service.BalanceSummary(ctx, "", suite.admin, suite.now)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Balances, 2)
	suite.Equal(domain.TRY, summary.Balances[0].Currency)
	suite.True(summary.Balances[0].Net.Equal(decimal.NewFromInt(600)))
	suite.Equal(domain.USD, summary.Balances[1].Currency)
	suite.True(summary.Balances[1].Net.Equal(decimal.NewFromInt(250)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSummary_VisibilityApplied() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		ownedEntry("e1", domain.Receivable, 1000, domain.TRY, suite.regular.UserID),
		ownedEntry("e2", domain.Receivable, 9000, domain.TRY, "someone-else"),
	}

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return(entries, nil).Once()

	summary, err := suite.service.BalanceSummary(ctx, "", suite.regular, suite.now)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Balances, 1)
	suite.True(summary.Balances[0].Receivable.Equal(decimal.NewFromInt(1000)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSummary_RepoError() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return(nil, assert.AnError).Once()

	summary, err := suite.service.BalanceSummary(ctx, "", suite.admin, suite.now)

	suite.Require().Error(err)
	suite.Nil(summary)
}

// --- DueItems Tests ---
func (suite *ReportingServiceTestSuite) TestDueItems_EnrichedFromDirectory() {
	ctx := context.Background()
	due := time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	e1 := ownedEntry("e1", domain.Receivable, 100, domain.TRY, "admin-1")
	e1.DueDate = &due
	e2 := ownedEntry("e2", domain.Payable, 200, domain.TRY, "admin-1")
	e2.DueDate = &past

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return([]domain.LedgerEntry{e1, e2}, nil).Once()
	suite.mockDirectory.On("LookupRefs", ctx).Return(map[string]domain.EntityRef{
		"ent-1": {Name: "Hotel Mavi", Type: domain.EntityHotel, Code: "HTL-01"},
	}, nil).Once()

	upcoming, overdue, err := suite.service.DueItems(ctx, projection.DueFilters{}, suite.admin, suite.now)

	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 1)
	suite.Require().Len(overdue, 1)
	suite.Equal(3, upcoming[0].DaysUntilDue)
	suite.Equal("Hotel Mavi", upcoming[0].EntityName)
	suite.Equal(-9, overdue[0].DaysUntilDue)
	suite.Equal("HTL-01", overdue[0].EntityCode)
}

func (suite *ReportingServiceTestSuite) TestDueItems_DirectoryFailureUsesPlaceholders() {
	ctx := context.Background()
	due := time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC)
	e1 := ownedEntry("e1", domain.Receivable, 100, domain.TRY, "admin-1")
	e1.DueDate = &due

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return([]domain.LedgerEntry{e1}, nil).Once()
	suite.mockDirectory.On("LookupRefs", ctx).Return(nil, assert.AnError).Once()

	upcoming, overdue, err := suite.service.DueItems(ctx, projection.DueFilters{}, suite.admin, suite.now)

	suite.Require().NoError(err)
	suite.Empty(overdue)
	suite.Require().Len(upcoming, 1)
	suite.Equal("Unknown Entity", upcoming[0].EntityName)
	suite.Equal("N/A", upcoming[0].EntityCode)
}

// --- UnifiedTransactions Tests ---
func (suite *ReportingServiceTestSuite) TestUnifiedTransactions_MergesBothSources() {
	ctx := context.Background()
	raw := []domain.RawTransaction{{
		TransactionID:   "raw-1",
		Type:            domain.TxnIncome,
		Amount:          decimal.NewFromInt(500),
		Currency:        domain.TRY,
		TransactionDate: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		CreatedByName:   "Ayşe Yılmaz",
	}}
	entries := []domain.LedgerEntry{
		ownedEntry("led-1", domain.Expense, 300, domain.TRY, "admin-1"),
	}

	suite.mockFeedRepo.On("FindRawTransactions", ctx).Return(raw, nil).Once()
	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return(entries, nil).Once()

	txns, err := suite.service.UnifiedTransactions(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	// Descending by effective date: raw (Dec 20) before ledger (Dec 1).
	suite.Equal("raw-1", txns[0].TransactionID)
	suite.Equal("led-1", txns[1].TransactionID)
}

func (suite *ReportingServiceTestSuite) TestUnifiedTransactions_VisibilityAfterMerge() {
	ctx := context.Background()
	raw := []domain.RawTransaction{{
		TransactionID:     "raw-1",
		Type:              domain.TxnIncome,
		Amount:            decimal.NewFromInt(500),
		Currency:          domain.TRY,
		TransactionDate:   time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		CreatedByUsername: "ayse",
	}}
	entries := []domain.LedgerEntry{
		ownedEntry("led-1", domain.Expense, 300, domain.TRY, "someone-else"),
		ownedEntry("led-2", domain.Income, 700, domain.TRY, suite.regular.UserID),
	}

	suite.mockFeedRepo.On("FindRawTransactions", ctx).Return(raw, nil).Once()
	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return(entries, nil).Once()

	txns, err := suite.service.UnifiedTransactions(ctx, suite.regular)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	for _, t := range txns {
		suite.NotEqual("led-1", t.TransactionID)
	}
}

func (suite *ReportingServiceTestSuite) TestUnifiedTransactions_FeedError() {
	ctx := context.Background()

	suite.mockFeedRepo.On("FindRawTransactions", ctx).Return(nil, assert.AnError).Once()

	txns, err := suite.service.UnifiedTransactions(ctx, suite.admin)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindEntries", mock.Anything, mock.Anything)
}

// --- Dashboard Tests ---
func (suite *ReportingServiceTestSuite) TestDashboard_WeeklyTotalsAndBreakdown() {
	ctx := context.Background()
	raw := []domain.RawTransaction{
		{
			TransactionID:   "raw-1",
			Type:            domain.TxnIncome,
			Amount:          decimal.NewFromInt(500),
			Currency:        domain.TRY,
			Category:        "tour_sale",
			TransactionDate: suite.now.AddDate(0, 0, -2),
		},
		{
			TransactionID:   "raw-2",
			Type:            domain.TxnExpense,
			Amount:          decimal.NewFromInt(120),
			Currency:        domain.TRY,
			Category:        "fuel",
			TransactionDate: suite.now.AddDate(0, 0, -3),
		},
		{
			// Outside the trailing week, excluded from weekly totals.
			TransactionID:   "raw-3",
			Type:            domain.TxnIncome,
			Amount:          decimal.NewFromInt(9999),
			Currency:        domain.TRY,
			TransactionDate: suite.now.AddDate(0, 0, -10),
		},
	}

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return([]domain.LedgerEntry{}, nil).Twice()
	suite.mockFeedRepo.On("FindRawTransactions", ctx).Return(raw, nil).Once()

	dashboard, err := suite.service.Dashboard(ctx, suite.admin, suite.now)

	suite.Require().NoError(err)
	suite.Equal(3, dashboard.TransactionCount)
	suite.Require().Len(dashboard.WeeklyTotals, 1)
	suite.True(dashboard.WeeklyTotals[0].Income.Equal(decimal.NewFromInt(500)))
	suite.True(dashboard.WeeklyTotals[0].Expense.Equal(decimal.NewFromInt(120)))
	suite.Require().Len(dashboard.ExpenseBreakdown, 1)
	suite.Equal("fuel", dashboard.ExpenseBreakdown[0].Category)
	suite.True(dashboard.ExpenseBreakdown[0].Total.Equal(decimal.NewFromInt(120)))
}

func (suite *ReportingServiceTestSuite) TestDashboard_ExpenseBreakdownGroupsByCategoryAndCurrency() {
	ctx := context.Background()
	raw := []domain.RawTransaction{
		{TransactionID: "r1", Type: domain.TxnExpense, Amount: decimal.NewFromInt(100), Currency: domain.TRY, Category: "fuel", TransactionDate: suite.now},
		{TransactionID: "r2", Type: domain.TxnExpense, Amount: decimal.NewFromInt(50), Currency: domain.TRY, Category: "fuel", TransactionDate: suite.now},
		{TransactionID: "r3", Type: domain.TxnExpense, Amount: decimal.NewFromInt(80), Currency: domain.USD, Category: "fuel", TransactionDate: suite.now},
		{TransactionID: "r4", Type: domain.TxnExpense, Amount: decimal.NewFromInt(30), Currency: domain.TRY, TransactionDate: suite.now},
	}

	suite.mockLedgerRepo.On("FindEntries", ctx, "").Return([]domain.LedgerEntry{}, nil).Twice()
	suite.mockFeedRepo.On("FindRawTransactions", ctx).Return(raw, nil).Once()

	dashboard, err := suite.service.Dashboard(ctx, suite.admin, suite.now)

	suite.Require().NoError(err)
	suite.Require().Len(dashboard.ExpenseBreakdown, 3)
	suite.Equal("fuel", dashboard.ExpenseBreakdown[0].Category)
	suite.Equal(domain.TRY, dashboard.ExpenseBreakdown[0].Currency)
	suite.True(dashboard.ExpenseBreakdown[0].Total.Equal(decimal.NewFromInt(150)))
	suite.Equal(domain.USD, dashboard.ExpenseBreakdown[1].Currency)
	suite.Equal("other", dashboard.ExpenseBreakdown[2].Category)
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
