package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/core/services"
	"github.com/chaikhata/shop_ledger_app/internal/repositories/database/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	repo    *memory.Repository
	service portssvc.ReportingSvcFacade
	now     time.Time
	ctx     context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.repo = memory.NewRepository()
	suite.now = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	suite.service = services.NewReportingService(suite.repo, services.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
}

func (suite *ReportingServiceTestSuite) addTransaction(txnType domain.TransactionType, method domain.PaymentMethod, amount int64, date time.Time) {
	err := suite.repo.SaveTransaction(suite.ctx, domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Amount:        decimal.NewFromInt(amount),
		Category:      "Sales",
		Type:          txnType,
		PaymentMethod: method,
	})
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestComputeTotals_EmptyLedger() {
	totals, err := suite.service.ComputeTotals(suite.ctx)

	suite.Require().NoError(err)
	suite.True(totals.Income.IsZero())
	suite.True(totals.Expenses.IsZero())
	suite.True(totals.Profit.IsZero())
}

func (suite *ReportingServiceTestSuite) TestComputeTotals_ProfitIsIncomeMinusExpenses() {
	suite.addTransaction(domain.Income, domain.Cash, 1000, suite.now)
	suite.addTransaction(domain.Income, domain.GPay, 500, suite.now)
	suite.addTransaction(domain.Expense, domain.Cash, 700, suite.now)

	totals, err := suite.service.ComputeTotals(suite.ctx)

	suite.Require().NoError(err)
	suite.True(totals.Income.Equal(decimal.NewFromInt(1500)))
	suite.True(totals.Expenses.Equal(decimal.NewFromInt(700)))
	suite.True(totals.Profit.Equal(decimal.NewFromInt(800)))
}

func (suite *ReportingServiceTestSuite) TestComputePaymentBreakdown_IncomeOnly() {
	suite.addTransaction(domain.Income, domain.Cash, 300, suite.now)
	suite.addTransaction(domain.Income, domain.Cash, 200, suite.now)
	suite.addTransaction(domain.Income, domain.GPay, 150, suite.now)
	suite.addTransaction(domain.Expense, domain.PhonePe, 999, suite.now)

	breakdown, err := suite.service.ComputePaymentBreakdown(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(breakdown, 2)
	suite.True(breakdown[domain.Cash].Equal(decimal.NewFromInt(500)))
	suite.True(breakdown[domain.GPay].Equal(decimal.NewFromInt(150)))
	// Methods with no income never appear, even with expense activity.
	suite.NotContains(breakdown, domain.PhonePe)
}

func (suite *ReportingServiceTestSuite) TestComputeDailyTrend_AlwaysSevenDaysOldestFirst() {
	suite.addTransaction(domain.Income, domain.Cash, 500, suite.now)

	points, err := suite.service.ComputeDailyTrend(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(points, 7)

	for i, p := range points {
		expectedDay := time.Date(2025, time.March, 9+i, 0, 0, 0, 0, time.UTC)
		suite.True(p.Date.Equal(expectedDay), "point %d should be %s, got %s", i, expectedDay, p.Date)
	}

	// Only today carries the income; all earlier days stay at zero.
	last := points[6]
	suite.True(last.Income.Equal(decimal.NewFromInt(500)))
	suite.True(last.Expense.IsZero())
	for _, p := range points[:6] {
		suite.True(p.Income.IsZero())
		suite.True(p.Expense.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestComputeDailyTrend_ExcludesOlderTransactions() {
	suite.addTransaction(domain.Income, domain.Cash, 100, suite.now.AddDate(0, 0, -6))
	suite.addTransaction(domain.Income, domain.Cash, 999, suite.now.AddDate(0, 0, -7))
	suite.addTransaction(domain.Expense, domain.Cash, 40, suite.now)

	points, err := suite.service.ComputeDailyTrend(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(points, 7)
	suite.True(points[0].Income.Equal(decimal.NewFromInt(100)))
	suite.True(points[6].Expense.Equal(decimal.NewFromInt(40)))

	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Income)
	}
	suite.True(total.Equal(decimal.NewFromInt(100)), "the 8-day-old transaction must not be bucketed")
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
