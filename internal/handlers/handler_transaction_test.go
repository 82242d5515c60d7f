package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RemoveTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()

	suite.router = gin.New()
	suite.mockLedgerService = new(MockLedgerService)

	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Ledger: suite.mockLedgerService,
	})
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_Success() {
	expected := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Amount:        decimal.NewFromInt(250),
		Category:      "Sales",
		Type:          domain.Income,
		PaymentMethod: domain.GPay,
	}
	suite.mockLedgerService.On("AddTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Category == "Sales" && req.Type == domain.Income
	})).Return(expected, nil).Once()

	body := `{"amount":250,"category":"Sales","type":"INCOME","paymentMethod":"GPAY"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_InvalidPaymentMethodRejectedAtBinding() {
	body := `{"amount":250,"category":"Sales","type":"INCOME","paymentMethod":"BARTER"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_ServiceValidationError() {
	suite.mockLedgerService.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("amount must not be negative")).Once()

	body := `{"amount":-5,"category":"Sales","type":"INCOME","paymentMethod":"CASH"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), Amount: decimal.NewFromInt(100), Type: domain.Income, PaymentMethod: domain.Cash, Category: "Sales"},
		{TransactionID: uuid.NewString(), Amount: decimal.NewFromInt(50), Type: domain.Expense, PaymentMethod: domain.Cash, Category: "Rent"},
	}
	suite.mockLedgerService.On("ListTransactions", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 2)
	suite.Equal(expected[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	transactionID := uuid.NewString()
	suite.mockLedgerService.On("UpdateTransaction", mock.Anything, transactionID, mock.Anything).
		Return(nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, apperrors.ErrNotFound)).Once()

	body := `{"date":"2025-03-15T10:00:00Z","amount":10,"category":"Sales","type":"INCOME","paymentMethod":"CASH"}`
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/transactions/"+transactionID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRemoveTransaction_AlwaysNoContent() {
	transactionID := uuid.NewString()
	suite.mockLedgerService.On("RemoveTransaction", mock.Anything, transactionID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
