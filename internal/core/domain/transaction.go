package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction records money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// PaymentMethod is the channel the money moved through.
type PaymentMethod string

const (
	Cash    PaymentMethod = "CASH"
	GPay    PaymentMethod = "GPAY"
	PhonePe PaymentMethod = "PHONEPE"
	Other   PaymentMethod = "OTHER"
)

// Payroll transaction categories. The payroll service is the only writer of
// transactions carrying these categories together with a StaffID.
const (
	CategoryStaffWeekly   = "Staff - Weekly"
	CategoryStaffMonthEnd = "Staff - Month End"
)

// Transaction is a single monetary event in the shop ledger.
// Amount is always non-negative; the direction is carried by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID), never reused
	Date          time.Time       `json:"date"`          // Occurrence timestamp (UTC)
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; precise decimal type
	Category      string          `json:"category"`      // Free-form label, disjoint per Type
	Type          TransactionType `json:"type"`          // INCOME or EXPENSE
	PaymentMethod PaymentMethod   `json:"paymentMethod"` // CASH, GPAY, PHONEPE or OTHER
	Notes         string          `json:"notes"`         // Optional free text
	StaffID       string          `json:"staffID,omitempty"` // Set only on payroll-generated records
}

// ValidPaymentMethod reports whether m is one of the supported payment channels.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case Cash, GPay, PhonePe, Other:
		return true
	}
	return false
}

// ValidTransactionType reports whether t is INCOME or EXPENSE.
func ValidTransactionType(t TransactionType) bool {
	return t == Income || t == Expense
}
