package handlers

import (
	goerrors "errors"
	"net/http"
	"strings"
	"time"

	"ledger-engine/internal/dto"
	"ledger-engine/internal/errors"
	"ledger-engine/internal/models"
	"ledger-engine/internal/repositories"
	"ledger-engine/internal/services"

	"github.com/labstack/echo/v4"
)

const dateParamLayout = "2006-01-02"

// TransactionHandler handles transaction listing and valuation requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	converter       services.CurrencyConverterInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	converter services.CurrencyConverterInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		converter:       converter,
	}
}

// ListTransactions retrieves a user's transactions, optionally valued in a display currency
// @Summary List transactions
// @Description Retrieve paginated transactions for a user within an optional date range. When a display currency is given, each transaction also carries its amount valued at the historical rate of its transaction date.
// @Tags Transactions
// @Produce json
// @Param user_id query string true "Owner user ID (UUID)"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param currency query string false "Display currency for valuation (ISO-4217)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 / VALIDATION_005 / RATE_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("user_id is required"))
	}

	startDate, err := parseDateParam(c, "start_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date must be YYYY-MM-DD"))
	}
	endDate, err := parseDateParam(c, "end_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date must be YYYY-MM-DD"))
	}

	displayCurrency := strings.ToUpper(strings.TrimSpace(c.QueryParam("currency")))
	if displayCurrency != "" && !models.IsValidCurrency(displayCurrency) {
		return SendError(c, errors.RateInvalidCurrency,
			errors.WithDetails("currency must be a 3-letter ISO-4217 code"))
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	transactions, total, err := h.transactionRepo.GetByUser(userID, startDate, endDate, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	views := make([]dto.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, transactionView(tx))
	}

	if displayCurrency != "" {
		h.valueInCurrency(views, transactions, displayCurrency)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: views,
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// valueInCurrency attaches display-currency valuations to the views.
// Valuation is best effort per currency-and-date group; a group that
// cannot be valued marks only its own transactions.
func (h *TransactionHandler) valueInCurrency(views []dto.TransactionView, transactions []models.Transaction, displayCurrency string) {
	items := make([]services.ConversionItem, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, services.ConversionItem{
			From:   tx.Currency,
			Date:   tx.TxDate,
			Amount: tx.Amount,
		})
	}

	results := h.converter.ConvertBatch(items, displayCurrency)
	for i := range results {
		if err := results[i].Err; err != nil {
			views[i].ValuationError = string(valuationErrorCode(err))
			continue
		}
		amount := results[i].Amount
		rateDate := results[i].RateDate
		views[i].ValuedAmount = &amount
		views[i].ValuedCurrency = displayCurrency
		views[i].RateDate = &rateDate
	}
}

// valuationErrorCode maps a conversion failure onto the API error code
// taxonomy so responses never carry internal error text.
func valuationErrorCode(err error) errors.ErrorCode {
	switch {
	case goerrors.Is(err, services.ErrRateNotFound):
		return errors.RateNotFound
	case goerrors.Is(err, services.ErrRateConsistency):
		return errors.RateInconsistent
	default:
		return errors.SystemInternalError
	}
}

// parseDateParam reads an optional YYYY-MM-DD query parameter
func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		return nil, err
	}

	parsed = parsed.UTC()
	return &parsed, nil
}
