package services_test

import (
	"context"
	"testing"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/core/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/repositories/database/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	repo    *memory.Repository
	service portssvc.PayrollSvcFacade
	ctx     context.Context
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.repo = memory.NewRepository()
	suite.service = services.NewPayrollService(suite.repo)
	suite.ctx = context.Background()
}

func (suite *PayrollServiceTestSuite) registerStaff(basePay decimal.Decimal) *domain.StaffMember {
	staff, err := suite.service.RegisterStaff(suite.ctx, dto.RegisterStaffRequest{
		Name:          "Ravi",
		Phone:         "9876543210",
		WeeklyBasePay: basePay,
	})
	suite.Require().NoError(err)
	return staff
}

func (suite *PayrollServiceTestSuite) TestRegisterStaff_Success() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))

	suite.NotEmpty(staff.StaffID)
	suite.True(staff.TotalHeldBalance.IsZero())
	suite.Equal(domain.NoEscrow, staff.EscrowState())
}

func (suite *PayrollServiceTestSuite) TestRegisterStaff_MissingName() {
	staff, err := suite.service.RegisterStaff(suite.ctx, dto.RegisterStaffRequest{
		Phone:         "9876543210",
		WeeklyBasePay: decimal.NewFromInt(1000),
	})

	suite.Nil(staff)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestRegisterStaff_NonPositiveBasePay() {
	staff, err := suite.service.RegisterStaff(suite.ctx, dto.RegisterStaffRequest{
		Name:          "Ravi",
		Phone:         "9876543210",
		WeeklyBasePay: decimal.Zero,
	})

	suite.Nil(staff)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestProcessWeeklyPay_SplitsBasePay() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))

	run, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)

	suite.Require().NoError(err)
	suite.True(run.Settled)
	suite.Require().NotNil(run.Transaction)
	suite.True(run.Transaction.Amount.Equal(decimal.NewFromInt(400)))
	suite.Equal(domain.Expense, run.Transaction.Type)
	suite.Equal(domain.Cash, run.Transaction.PaymentMethod)
	suite.Equal(domain.CategoryStaffWeekly, run.Transaction.Category)
	suite.Equal(staff.StaffID, run.Transaction.StaffID)
	suite.True(run.Staff.TotalHeldBalance.Equal(decimal.NewFromInt(600)))
	suite.Equal(domain.HasEscrow, run.Staff.EscrowState())

	txns, err := suite.repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
}

func (suite *PayrollServiceTestSuite) TestProcessWeeklyPay_ConservesBasePay() {
	// 999.99 * 0.40 rounds to 400.00; the held share is the exact remainder.
	staff := suite.registerStaff(decimal.RequireFromString("999.99"))

	run, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)

	suite.Require().NoError(err)
	paid := run.Transaction.Amount
	held := run.Staff.TotalHeldBalance
	suite.True(paid.Add(held).Equal(decimal.RequireFromString("999.99")))
}

func (suite *PayrollServiceTestSuite) TestProcessWeeklyPay_AlwaysSplitsFromBasePay() {
	// There is no cooldown: a second run in the same week pays out again and
	// doubles the held balance. The split uses the fixed base pay both times.
	staff := suite.registerStaff(decimal.NewFromInt(1000))

	_, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)
	run, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)

	suite.True(run.Transaction.Amount.Equal(decimal.NewFromInt(400)))
	suite.True(run.Staff.TotalHeldBalance.Equal(decimal.NewFromInt(1200)))

	txns, err := suite.repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(txns, 2)
}

func (suite *PayrollServiceTestSuite) TestProcessWeeklyPay_StaffNotFound() {
	run, err := suite.service.ProcessWeeklyPay(suite.ctx, uuid.NewString())

	suite.Nil(run)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PayrollServiceTestSuite) TestProcessWeeklyPay_SaveFailureLeavesBalanceUntouched() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))
	suite.repo.FailNextPayrollSave = true

	run, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)

	suite.Nil(run)
	suite.Error(err)

	stored, err := suite.repo.FindStaffByID(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)
	suite.True(stored.TotalHeldBalance.IsZero())

	txns, err := suite.repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(txns)
}

func (suite *PayrollServiceTestSuite) TestSettleMonthlyHold_PaysOutFullBalance() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))
	_, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)
	_, err = suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)

	run, err := suite.service.SettleMonthlyHold(suite.ctx, staff.StaffID)

	suite.Require().NoError(err)
	suite.True(run.Settled)
	suite.Require().NotNil(run.Transaction)
	suite.True(run.Transaction.Amount.Equal(decimal.NewFromInt(1200)))
	suite.Equal(domain.CategoryStaffMonthEnd, run.Transaction.Category)
	suite.Equal(domain.Expense, run.Transaction.Type)
	suite.True(run.Staff.TotalHeldBalance.IsZero())
	suite.Equal(domain.NoEscrow, run.Staff.EscrowState())
}

func (suite *PayrollServiceTestSuite) TestSettleMonthlyHold_NothingHeld() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))

	run, err := suite.service.SettleMonthlyHold(suite.ctx, staff.StaffID)

	suite.Require().NoError(err)
	suite.False(run.Settled)
	suite.Nil(run.Transaction)

	txns, err := suite.repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(txns)
}

func (suite *PayrollServiceTestSuite) TestSettleMonthlyHold_SecondCallIsNoOp() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))
	_, err := suite.service.ProcessWeeklyPay(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)

	first, err := suite.service.SettleMonthlyHold(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)
	suite.True(first.Settled)

	second, err := suite.service.SettleMonthlyHold(suite.ctx, staff.StaffID)
	suite.Require().NoError(err)
	suite.False(second.Settled)
	suite.Nil(second.Transaction)

	txns, err := suite.repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(txns, 2) // one weekly pay, one settlement
}

func (suite *PayrollServiceTestSuite) TestUpdateStaffDetails_Success() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))
	newPhone := "9000000000"

	updated, err := suite.service.UpdateStaffDetails(suite.ctx, staff.StaffID, dto.UpdateStaffRequest{
		Phone: &newPhone,
	})

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
	suite.Equal(staff.Name, updated.Name)
}

func (suite *PayrollServiceTestSuite) TestUpdateStaffDetails_EmptyName() {
	staff := suite.registerStaff(decimal.NewFromInt(1000))
	empty := ""

	updated, err := suite.service.UpdateStaffDetails(suite.ctx, staff.StaffID, dto.UpdateStaffRequest{
		Name: &empty,
	})

	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestTotalEscrowLiability_SumsAllStaff() {
	first := suite.registerStaff(decimal.NewFromInt(1000))
	_, err := suite.service.RegisterStaff(suite.ctx, dto.RegisterStaffRequest{
		Name:          "Meena",
		Phone:         "9123456789",
		WeeklyBasePay: decimal.NewFromInt(500),
	})
	suite.Require().NoError(err)

	_, err = suite.service.ProcessWeeklyPay(suite.ctx, first.StaffID)
	suite.Require().NoError(err)

	// Only the first staff member holds anything; the second contributes zero.
	total, err := suite.service.TotalEscrowLiability(suite.ctx)
	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(600)))
}

func TestPayrollService(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
