package dto

import (
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterStaffRequest defines the payload for staff registration.
type RegisterStaffRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	Address       string          `json:"address"`
	Aadhaar       string          `json:"aadhaar"`
	WeeklyBasePay decimal.Decimal `json:"weeklyBasePay" binding:"required"`
}

// UpdateStaffRequest corrects identity fields on an existing staff record.
// Pointers differentiate omitted fields from zero-value fields. The held
// balance is deliberately absent; only payroll operations may touch it.
type UpdateStaffRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Aadhaar *string `json:"aadhaar"`
}

// StaffResponse is the API representation of a staff member.
type StaffResponse struct {
	StaffID          string             `json:"staffID"`
	Name             string             `json:"name"`
	Phone            string             `json:"phone"`
	Address          string             `json:"address"`
	Aadhaar          string             `json:"aadhaar"`
	WeeklyBasePay    decimal.Decimal    `json:"weeklyBasePay"`
	TotalHeldBalance decimal.Decimal    `json:"totalHeldBalance"`
	EscrowState      domain.EscrowState `json:"escrowState"`
	JoinedDate       time.Time          `json:"joinedDate"`
}

// ListStaffResponse wraps the staff collection.
type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// PayrollRunResponse reports a payroll operation's outcome. Settled is false
// when a settlement had nothing to pay out, in which case Transaction is nil.
type PayrollRunResponse struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Staff       StaffResponse        `json:"staff"`
	Settled     bool                 `json:"settled"`
}

// EscrowLiabilityResponse carries the total escrow owed across all staff.
type EscrowLiabilityResponse struct {
	TotalEscrowLiability decimal.Decimal `json:"totalEscrowLiability"`
}

// ToStaffResponse converts a domain.StaffMember to its response DTO.
func ToStaffResponse(s *domain.StaffMember) StaffResponse {
	return StaffResponse{
		StaffID:          s.StaffID,
		Name:             s.Name,
		Phone:            s.Phone,
		Address:          s.Address,
		Aadhaar:          s.Aadhaar,
		WeeklyBasePay:    s.WeeklyBasePay,
		TotalHeldBalance: s.TotalHeldBalance,
		EscrowState:      s.EscrowState(),
		JoinedDate:       s.JoinedDate,
	}
}

// ToListStaffResponse converts a slice of domain staff members.
func ToListStaffResponse(staff []domain.StaffMember) ListStaffResponse {
	responses := make([]StaffResponse, len(staff))
	for i := range staff {
		responses[i] = ToStaffResponse(&staff[i])
	}
	return ListStaffResponse{Staff: responses}
}

// ToPayrollRunResponse converts a domain.PayrollRun to its response DTO.
func ToPayrollRunResponse(run *domain.PayrollRun) PayrollRunResponse {
	resp := PayrollRunResponse{
		Staff:   ToStaffResponse(&run.Staff),
		Settled: run.Settled,
	}
	if run.Transaction != nil {
		txnResp := ToTransactionResponse(run.Transaction)
		resp.Transaction = &txnResp
	}
	return resp
}
