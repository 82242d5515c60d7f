package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals are the all-time figures over every present transaction.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"` // Income - Expenses
}

// TrendPoint is one UTC calendar day's aggregated income and expense.
type TrendPoint struct {
	Date    time.Time       `json:"date"` // Midnight UTC of the bucketed day
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
