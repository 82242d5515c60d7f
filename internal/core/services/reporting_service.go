package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"
)

// trendDays is the length of the daily trend window, today inclusive.
const trendDays = 7

// reportingService computes derived figures over a ledger snapshot. Every
// call recomputes from scratch; transaction volumes for a single shop make
// incremental caching pointless.
type reportingService struct {
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithClock overrides the time source, used by tests to pin the trend window.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options.
func NewReportingService(transactionRepo portsrepo.TransactionRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ComputeTotals sums income and expenses over every present transaction.
func (s *reportingService) ComputeTotals(ctx context.Context) (*domain.Totals, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expenses = expenses.Add(txn.Amount)
		}
	}

	return &domain.Totals{
		Income:   income,
		Expenses: expenses,
		Profit:   income.Sub(expenses),
	}, nil
}

// ComputePaymentBreakdown groups INCOME transactions by payment method.
// Methods with no income are absent from the result.
func (s *reportingService) ComputePaymentBreakdown(ctx context.Context) (map[domain.PaymentMethod]decimal.Decimal, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[domain.PaymentMethod]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != domain.Income {
			continue
		}
		breakdown[txn.PaymentMethod] = breakdown[txn.PaymentMethod].Add(txn.Amount)
	}
	return breakdown, nil
}

// ComputeDailyTrend buckets transactions into the 7 UTC calendar days ending
// today, oldest first. Days with no transactions yield zero points, never
// omission: the series is always exactly 7 long.
func (s *reportingService) ComputeDailyTrend(ctx context.Context) ([]domain.TrendPoint, error) {
	txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := truncateToUTCDay(s.now())

	points := make([]domain.TrendPoint, trendDays)
	index := make(map[time.Time]int, trendDays)
	for i := 0; i < trendDays; i++ {
		day := today.AddDate(0, 0, i-(trendDays-1))
		points[i] = domain.TrendPoint{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
		index[day] = i
	}

	for _, txn := range txns {
		day := truncateToUTCDay(txn.Date)
		i, ok := index[day]
		if !ok {
			continue
		}
		switch txn.Type {
		case domain.Income:
			points[i].Income = points[i].Income.Add(txn.Amount)
		case domain.Expense:
			points[i].Expense = points[i].Expense.Add(txn.Amount)
		}
	}

	return points, nil
}

func (s *reportingService) snapshot(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load ledger snapshot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}
	return txns, nil
}

func truncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
