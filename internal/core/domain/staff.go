package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EscrowState is the derived payroll state of a staff member. The held balance
// stays the source of truth; the state only makes it legible for tests and UI gating.
type EscrowState string

const (
	NoEscrow  EscrowState = "NO_ESCROW"
	HasEscrow EscrowState = "HAS_ESCROW"
)

// StaffMember is an employee on the shop's payroll.
// TotalHeldBalance is mutated only by payroll operations, never edited directly.
type StaffMember struct {
	StaffID          string          `json:"staffID"` // Primary Key (UUID)
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Aadhaar          string          `json:"aadhaar"`
	WeeklyBasePay    decimal.Decimal `json:"weeklyBasePay"`    // Non-negative fixed base salary
	TotalHeldBalance decimal.Decimal `json:"totalHeldBalance"` // Running escrow, never negative
	JoinedDate       time.Time       `json:"joinedDate"`
}

// EscrowState derives the payroll state from the held balance.
func (s StaffMember) EscrowState() EscrowState {
	if s.TotalHeldBalance.IsPositive() {
		return HasEscrow
	}
	return NoEscrow
}

// PayrollRun is the outcome of a payroll operation: the appended ledger
// transaction plus the staff record after its balance mutation.
// Settled is false when a settlement found nothing to pay out; in that case
// Transaction is nil and the staff record is unchanged.
type PayrollRun struct {
	Transaction *Transaction `json:"transaction,omitempty"`
	Staff       StaffMember  `json:"staff"`
	Settled     bool         `json:"settled"`
}
