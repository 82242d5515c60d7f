package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/core/services"
	"github.com/chaikhata/shop_ledger_app/internal/repositories/database/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAdviceGenerator is a mock type for the AdviceGenerator interface
type MockAdviceGenerator struct {
	mock.Mock
}

func (m *MockAdviceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

var _ services.AdviceGenerator = (*MockAdviceGenerator)(nil)

type AdvisorServiceTestSuite struct {
	suite.Suite
	repo      *memory.Repository
	generator *MockAdviceGenerator
	service   portssvc.AdvisorSvcFacade
	ctx       context.Context
}

func (suite *AdvisorServiceTestSuite) SetupTest() {
	suite.repo = memory.NewRepository()
	suite.generator = new(MockAdviceGenerator)

	ledgerSvc := services.NewLedgerService(suite.repo)
	reportSvc := services.NewReportingService(suite.repo)
	profileSvc := services.NewProfileService(suite.repo)
	suite.service = services.NewAdvisorService(ledgerSvc, reportSvc, profileSvc, suite.generator)
	suite.ctx = context.Background()
}

func (suite *AdvisorServiceTestSuite) seedTransactions(n int) {
	for i := 0; i < n; i++ {
		err := suite.repo.SaveTransaction(suite.ctx, domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          time.Now().UTC(),
			Amount:        decimal.NewFromInt(int64(100 + i)),
			Category:      "Sales",
			Type:          domain.Income,
			PaymentMethod: domain.Cash,
		})
		suite.Require().NoError(err)
	}
}

func (suite *AdvisorServiceTestSuite) TestBusinessAdvice_TooFewTransactions() {
	suite.seedTransactions(2)

	resp, err := suite.service.BusinessAdvice(suite.ctx)

	suite.Require().NoError(err)
	suite.True(resp.Fallback)
	suite.NotEmpty(resp.Advice)
	suite.generator.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything)
}

func (suite *AdvisorServiceTestSuite) TestBusinessAdvice_GeneratorSuccess() {
	suite.seedTransactions(4)
	suite.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return("Stock more of what sold this week.", nil).Once()

	resp, err := suite.service.BusinessAdvice(suite.ctx)

	suite.Require().NoError(err)
	suite.False(resp.Fallback)
	suite.Equal("Stock more of what sold this week.", resp.Advice)
	suite.generator.AssertExpectations(suite.T())
}

func (suite *AdvisorServiceTestSuite) TestBusinessAdvice_GeneratorFailureFallsBack() {
	suite.seedTransactions(3)
	suite.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return("", context.DeadlineExceeded).Once()

	resp, err := suite.service.BusinessAdvice(suite.ctx)

	suite.Require().NoError(err)
	suite.True(resp.Fallback)
	suite.NotEmpty(resp.Advice)
	suite.generator.AssertExpectations(suite.T())
}

func (suite *AdvisorServiceTestSuite) TestBusinessAdvice_PromptUsesShopName() {
	suite.seedTransactions(3)
	err := suite.repo.SaveProfile(suite.ctx, domain.ShopProfile{
		ShopName:      "Lakshmi Stores",
		OwnerName:     "Lakshmi",
		CreatedAt:     time.Now().UTC(),
		LastUpdatedAt: time.Now().UTC(),
	})
	suite.Require().NoError(err)

	suite.generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Lakshmi Stores")
	})).Return("ok", nil).Once()

	_, err = suite.service.BusinessAdvice(suite.ctx)
	suite.Require().NoError(err)
	suite.generator.AssertExpectations(suite.T())
}

func TestAdvisorService(t *testing.T) {
	suite.Run(t, new(AdvisorServiceTestSuite))
}
