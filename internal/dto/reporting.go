package dto

import (
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalsResponse carries the all-time income, expense and profit figures.
type TotalsResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// PaymentBreakdownResponse maps payment methods to their income sums.
// Methods with no income are omitted.
type PaymentBreakdownResponse struct {
	Breakdown map[domain.PaymentMethod]decimal.Decimal `json:"breakdown"`
}

// TrendPointResponse is one calendar day of the trend series.
type TrendPointResponse struct {
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DailyTrendResponse is the 7-day series, oldest day first.
type DailyTrendResponse struct {
	Points []TrendPointResponse `json:"points"`
}

// ToTotalsResponse converts domain totals.
func ToTotalsResponse(t *domain.Totals) TotalsResponse {
	return TotalsResponse{Income: t.Income, Expenses: t.Expenses, Profit: t.Profit}
}

// ToDailyTrendResponse converts the domain trend series.
func ToDailyTrendResponse(points []domain.TrendPoint) DailyTrendResponse {
	responses := make([]TrendPointResponse, len(points))
	for i, p := range points {
		responses[i] = TrendPointResponse{Date: p.Date, Income: p.Income, Expense: p.Expense}
	}
	return DailyTrendResponse{Points: responses}
}
