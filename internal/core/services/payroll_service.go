package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"
)

// payNowRatio is the fraction of the fixed weekly base pay paid out
// immediately; the remainder goes into the month-end escrow.
var payNowRatio = decimal.NewFromFloat(0.40)

// payrollService holds the staff collection and the payroll state machine.
// There is no cooldown on weekly payouts: running the weekly pay twice in the
// same week double-counts. That matches the product's manual, trust-based
// control and is documented in the tests rather than silently prevented.
type payrollService struct {
	payrollRepo portsrepo.PayrollRepository
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(payrollRepo portsrepo.PayrollRepository) portssvc.PayrollSvcFacade {
	return &payrollService{payrollRepo: payrollRepo}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// RegisterStaff creates a staff record with a zero escrow balance.
func (s *payrollService) RegisterStaff(ctx context.Context, req dto.RegisterStaffRequest) (*domain.StaffMember, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if req.Phone == "" {
		return nil, apperrors.NewValidationError("phone is required")
	}
	if !req.WeeklyBasePay.IsPositive() {
		return nil, apperrors.NewValidationError("weekly base pay must be positive")
	}

	staff := domain.StaffMember{
		StaffID:          uuid.NewString(),
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		Aadhaar:          req.Aadhaar,
		WeeklyBasePay:    req.WeeklyBasePay,
		TotalHeldBalance: decimal.Zero,
		JoinedDate:       time.Now().UTC(),
	}

	if err := s.payrollRepo.SaveStaff(ctx, staff); err != nil {
		logger.Error("Failed to save staff record", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save staff record: %w", err)
	}

	logger.Info("Staff registered",
		slog.String("staff_id", staff.StaffID),
		slog.String("base_pay", staff.WeeklyBasePay.String()))
	return &staff, nil
}

// UpdateStaffDetails corrects identity fields on an existing record. The
// escrow balance and base pay are untouchable through this path.
func (s *payrollService) UpdateStaffDetails(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.StaffMember, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	staff, err := s.payrollRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}

	updated := false
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("name must not be empty")
		}
		staff.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			return nil, apperrors.NewValidationError("phone must not be empty")
		}
		staff.Phone = *req.Phone
		updated = true
	}
	if req.Address != nil {
		staff.Address = *req.Address
		updated = true
	}
	if req.Aadhaar != nil {
		staff.Aadhaar = *req.Aadhaar
		updated = true
	}

	if !updated {
		logger.Debug("No fields provided for staff update", slog.String("staff_id", staffID))
		return staff, nil
	}

	if err := s.payrollRepo.UpdateStaff(ctx, *staff); err != nil {
		logger.Error("Failed to save staff update", slog.String("staff_id", staffID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save staff update: %w", err)
	}

	logger.Info("Staff details updated", slog.String("staff_id", staffID))
	return staff, nil
}

// GetStaffByID retrieves a single staff record.
func (s *payrollService) GetStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	staff, err := s.payrollRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}
	return staff, nil
}

// ListStaff retrieves the full staff collection.
func (s *payrollService) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	staff, err := s.payrollRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// ProcessWeeklyPay pays out 40% of the fixed base pay as a CASH expense and
// escrows the remaining 60%. The split always uses the base pay, never the
// accumulated balance. Transaction append and balance increment land in one
// repository write: both happen or neither does.
func (s *payrollService) ProcessWeeklyPay(ctx context.Context, staffID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	staff, err := s.payrollRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}

	paidNow := staff.WeeklyBasePay.Mul(payNowRatio).Round(2)
	// The held share is the exact remainder so paid + held always equals base pay.
	held := staff.WeeklyBasePay.Sub(paidNow)

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          now,
		Amount:        paidNow,
		Category:      domain.CategoryStaffWeekly,
		Type:          domain.Expense,
		PaymentMethod: domain.Cash,
		Notes:         fmt.Sprintf("Weekly pay for %s (held: %s)", staff.Name, held.String()),
		StaffID:       staff.StaffID,
	}

	staff.TotalHeldBalance = staff.TotalHeldBalance.Add(held)

	if err := s.payrollRepo.SavePayrollRun(ctx, txn, *staff); err != nil {
		logger.Error("Failed to save weekly payroll run",
			slog.String("staff_id", staffID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save weekly payroll run: %w", err)
	}

	logger.Info("Weekly pay processed",
		slog.String("staff_id", staff.StaffID),
		slog.String("paid_now", paidNow.String()),
		slog.String("held", held.String()),
		slog.String("total_held", staff.TotalHeldBalance.String()))

	return &domain.PayrollRun{Transaction: &txn, Staff: *staff, Settled: true}, nil
}

// SettleMonthlyHold pays out the full held balance as a CASH expense and
// resets the escrow to zero. With nothing held it is a defined no-effect
// outcome: no transaction is appended and Settled is false.
func (s *payrollService) SettleMonthlyHold(ctx context.Context, staffID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	staff, err := s.payrollRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}

	if !staff.TotalHeldBalance.IsPositive() {
		logger.Info("Settlement skipped, no held balance", slog.String("staff_id", staffID))
		return &domain.PayrollRun{Staff: *staff, Settled: false}, nil
	}

	settleAmount := staff.TotalHeldBalance
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          now,
		Amount:        settleAmount,
		Category:      domain.CategoryStaffMonthEnd,
		Type:          domain.Expense,
		PaymentMethod: domain.Cash,
		Notes:         fmt.Sprintf("Month-end settlement for %s", staff.Name),
		StaffID:       staff.StaffID,
	}

	staff.TotalHeldBalance = decimal.Zero

	if err := s.payrollRepo.SavePayrollRun(ctx, txn, *staff); err != nil {
		logger.Error("Failed to save settlement run",
			slog.String("staff_id", staffID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save settlement run: %w", err)
	}

	logger.Info("Monthly hold settled",
		slog.String("staff_id", staff.StaffID),
		slog.String("amount", settleAmount.String()))

	return &domain.PayrollRun{Transaction: &txn, Staff: *staff, Settled: true}, nil
}

// TotalEscrowLiability sums the held balances over all staff.
func (s *payrollService) TotalEscrowLiability(ctx context.Context) (decimal.Decimal, error) {
	staff, err := s.payrollRepo.ListStaff(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list staff: %w", err)
	}

	total := decimal.Zero
	for _, member := range staff {
		total = total.Add(member.TotalHeldBalance)
	}
	return total, nil
}
