package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-engine/internal/dto"
	"ledger-engine/internal/errors"
	"ledger-engine/internal/models"
	"ledger-engine/internal/repositories/repository_mocks"
	"ledger-engine/internal/services"
	"ledger-engine/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler             *TransactionHandler
	echo                *echo.Echo
	userID              uuid.UUID
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockConverter       *service_mocks.MockCurrencyConverterInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockConverter = service_mocks.NewMockCurrencyConverterInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockTransactionRepo, s.mockConverter)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) listContext(query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?"+query, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *TransactionHandlerTestSuite) sampleTransactions() []models.Transaction {
	janFifth := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	return []models.Transaction{
		{ID: 1, UserID: s.userID, StatementID: 1, TxDate: janFifth, Amount: 1350, Currency: "CAD", CategoryID: models.CategoryIDDining, Description: "COFFEE SHOP", Status: models.TransactionStatusActive},
		{ID: 2, UserID: s.userID, StatementID: 1, TxDate: janFifth, Amount: 7200, Currency: "CNY", CategoryID: models.CategoryIDShopping, Description: "TAOBAO", Status: models.TransactionStatusActive},
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Success() {
	transactions := s.sampleTransactions()

	s.mockTransactionRepo.EXPECT().
		GetByUser(s.userID, gomock.Nil(), gomock.Nil(), 0, defaultPageLimit).
		Return(transactions, int64(2), nil)

	c, rec := s.listContext("user_id=" + s.userID.String())

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Transactions, 2)
	s.Equal(int64(1350), resp.Transactions[0].Amount)
	s.Equal("Dining", resp.Transactions[0].CategoryName)
	s.Nil(resp.Transactions[0].ValuedAmount)
	s.Empty(resp.Transactions[0].ValuedCurrency)
	s.Equal(int64(2), resp.Pagination.Total)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_WithDateRange() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	s.mockTransactionRepo.EXPECT().
		GetByUser(s.userID, &start, &end, 0, defaultPageLimit).
		Return([]models.Transaction{}, int64(0), nil)

	c, rec := s.listContext(fmt.Sprintf("user_id=%s&start_date=2024-01-01&end_date=2024-01-31", s.userID))

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidDate() {
	c, rec := s.listContext("user_id=" + s.userID.String() + "&start_date=01/05/2024")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_MissingUserID() {
	c, rec := s.listContext("limit=10")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_002")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_ValuedInDisplayCurrency() {
	transactions := s.sampleTransactions()
	janFifth := transactions[0].TxDate
	rateDate := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	s.mockTransactionRepo.EXPECT().
		GetByUser(s.userID, gomock.Nil(), gomock.Nil(), 0, defaultPageLimit).
		Return(transactions, int64(2), nil)

	expectedItems := []services.ConversionItem{
		{From: "CAD", Date: janFifth, Amount: 1350},
		{From: "CNY", Date: janFifth, Amount: 7200},
	}
	s.mockConverter.EXPECT().
		ConvertBatch(expectedItems, "USD").
		Return([]services.ConversionResult{
			{Amount: 1000, RateDate: rateDate},
			{Amount: 1012, RateDate: rateDate},
		})

	c, rec := s.listContext("user_id=" + s.userID.String() + "&currency=usd")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Transactions, 2)

	s.Require().NotNil(resp.Transactions[0].ValuedAmount)
	s.Equal(int64(1000), *resp.Transactions[0].ValuedAmount)
	s.Equal("USD", resp.Transactions[0].ValuedCurrency)
	s.Require().NotNil(resp.Transactions[0].RateDate)
	s.True(rateDate.Equal(*resp.Transactions[0].RateDate))

	s.Require().NotNil(resp.Transactions[1].ValuedAmount)
	s.Equal(int64(1012), *resp.Transactions[1].ValuedAmount)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_PartialValuationFailure() {
	transactions := s.sampleTransactions()
	rateDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	s.mockTransactionRepo.EXPECT().
		GetByUser(s.userID, gomock.Nil(), gomock.Nil(), 0, defaultPageLimit).
		Return(transactions, int64(2), nil)

	s.mockConverter.EXPECT().
		ConvertBatch(gomock.Any(), "USD").
		Return([]services.ConversionResult{
			{Amount: 1000, RateDate: rateDate},
			{Err: services.ErrRateNotFound},
		})

	c, rec := s.listContext("user_id=" + s.userID.String() + "&currency=USD")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Transactions, 2)

	s.NotNil(resp.Transactions[0].ValuedAmount)
	s.Empty(resp.Transactions[0].ValuationError)

	s.Nil(resp.Transactions[1].ValuedAmount)
	s.Equal(string(errors.RateNotFound), resp.Transactions[1].ValuationError)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_ValuationErrorCodes() {
	transactions := s.sampleTransactions()

	s.mockTransactionRepo.EXPECT().
		GetByUser(s.userID, gomock.Nil(), gomock.Nil(), 0, defaultPageLimit).
		Return(transactions, int64(2), nil)

	s.mockConverter.EXPECT().
		ConvertBatch(gomock.Any(), "USD").
		Return([]services.ConversionResult{
			{Err: fmt.Errorf("resolve: %w", services.ErrRateConsistency)},
			{Err: fmt.Errorf("gateway timeout")},
		})

	c, rec := s.listContext("user_id=" + s.userID.String() + "&currency=USD")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Transactions, 2)

	// Error codes only, never internal error text.
	s.Equal(string(errors.RateInconsistent), resp.Transactions[0].ValuationError)
	s.Equal(string(errors.SystemInternalError), resp.Transactions[1].ValuationError)
	s.NotContains(rec.Body.String(), "gateway timeout")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidDisplayCurrency() {
	c, rec := s.listContext("user_id=" + s.userID.String() + "&currency=DOLLARS")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "RATE_002")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_RepositoryError() {
	s.mockTransactionRepo.EXPECT().
		GetByUser(s.userID, gomock.Nil(), gomock.Nil(), 0, defaultPageLimit).
		Return(nil, int64(0), fmt.Errorf("connection refused"))

	c, rec := s.listContext("user_id=" + s.userID.String())

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}
