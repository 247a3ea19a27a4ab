package handlers

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ledger-engine/internal/dto"
	"ledger-engine/internal/errors"
	"ledger-engine/internal/models"
	"ledger-engine/internal/repositories"
	"ledger-engine/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	// parseTimeout bounds one background parse, categorizer retries included.
	parseTimeout = 5 * time.Minute
)

// StatementHandler handles statement upload and listing requests
type StatementHandler struct {
	statementRepo   repositories.StatementRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	parser          services.StatementParserInterface
	tmpDir          string
	logger          *slog.Logger
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(
	statementRepo repositories.StatementRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	parser services.StatementParserInterface,
	tmpDir string,
) *StatementHandler {
	return &StatementHandler{
		statementRepo:   statementRepo,
		transactionRepo: transactionRepo,
		parser:          parser,
		tmpDir:          tmpDir,
		logger:          slog.Default(),
	}
}

// UploadStatement accepts a bank statement CSV for background parsing
// @Summary Upload a bank statement
// @Description Accept a multipart CSV upload, stage it, create the statement record and hand it to the background parser. Parsing is asynchronous; the response does not wait for it.
// @Tags Statements
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement CSV file"
// @Param user_id formData string true "Owner user ID (UUID)"
// @Param bank formData string true "Bank identifier (TD, ROGERS, CMB)"
// @Param currency formData string true "Statement currency (ISO-4217)"
// @Success 202 {object} dto.UploadStatementResponse "Statement accepted for processing"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / STATEMENT_002 / STATEMENT_003 / STATEMENT_005"
// @Failure 422 {object} errors.ErrorResponse "STATEMENT_004 - Staging the uploaded file failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal error"
// @Router /api/v1/statements [post]
func (h *StatementHandler) UploadStatement(c echo.Context) error {
	var req dto.UploadStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("user_id must be a UUID"))
	}

	bank := strings.ToUpper(strings.TrimSpace(req.Bank))
	if !models.IsSupportedBank(bank) {
		return SendError(c, errors.StatementInvalidBank,
			errors.WithDetails(fmt.Sprintf("unsupported bank %q", req.Bank)))
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !models.IsValidCurrency(currency) {
		return SendError(c, errors.StatementInvalidCurrency,
			errors.WithDetails("currency must be a 3-letter ISO-4217 code"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("file is required"))
	}

	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".csv" {
		return SendError(c, errors.StatementInvalidFileType)
	}

	filePath, err := h.stageFile(fileHeader, userID, bank)
	if err != nil {
		h.logger.Error("failed to stage statement file",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return SendError(c, errors.StatementUploadFailed)
	}

	statement := &models.Statement{
		UserID:   userID,
		FilePath: filePath,
		Source:   bank,
		Currency: currency,
	}
	if err := h.statementRepo.Create(statement); err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("statement accepted",
		slog.Int64("statement_id", statement.ID),
		slog.String("user_id", userID.String()),
		slog.String("bank", bank),
		slog.String("ip_address", getClientIP(c)))

	// Fire and forget. The upload response never waits for parsing;
	// failures are logged and leave the statement without transactions.
	parseReq := services.ParseRequest{
		UserID:      userID,
		StatementID: statement.ID,
		Bank:        bank,
		Currency:    currency,
		FilePath:    filePath,
	}
	go h.runParse(parseReq)

	return c.JSON(http.StatusAccepted, dto.UploadStatementResponse{
		Statement: statement,
		Message:   "Statement accepted for processing",
	})
}

// stageFile copies the uploaded file into the per-user staging directory
// under a BANK_YYYYMMDD_HHMMSS.csv name and returns the staged path.
func (h *StatementHandler) stageFile(fileHeader *multipart.FileHeader, userID uuid.UUID, bank string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(h.tmpDir, userID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.csv", bank, time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}

	return path, nil
}

func (h *StatementHandler) runParse(req services.ParseRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
	defer cancel()

	if err := h.parser.Parse(ctx, req); err != nil {
		h.logger.Error("background statement parse failed",
			slog.Int64("statement_id", req.StatementID),
			slog.String("bank", req.Bank),
			slog.String("error", err.Error()))
	}
}

// ListStatements retrieves a user's uploaded statements
// @Summary List statements
// @Description Retrieve paginated statements for a user, newest first
// @Tags Statements
// @Produce json
// @Param user_id query string true "Owner user ID (UUID)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.ListStatementsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing user_id"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /api/v1/statements [get]
func (h *StatementHandler) ListStatements(c echo.Context) error {
	userID, err := getUserIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("user_id is required"))
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

	statements, total, err := h.statementRepo.GetByUser(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListStatementsResponse{
		Statements: statements,
		Pagination: dto.PaginationInfo{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// GetStatementTransactions retrieves the transactions parsed from one statement
// @Summary List statement transactions
// @Description Retrieve all transactions produced by parsing a single statement
// @Tags Statements
// @Produce json
// @Param id path int true "Statement ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "STATEMENT_001 - Invalid statement ID"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 - Statement not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /api/v1/statements/{id}/transactions [get]
func (h *StatementHandler) GetStatementTransactions(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("statement id must be a positive integer"))
	}

	if _, err := h.statementRepo.GetByID(id); err != nil {
		if goerrors.Is(err, repositories.ErrStatementNotFound) {
			return SendError(c, errors.StatementNotFound)
		}
		return SendSystemError(c, err)
	}

	transactions, err := h.transactionRepo.GetByStatementID(id)
	if err != nil {
		return SendSystemError(c, err)
	}

	views := make([]dto.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, transactionView(tx))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: views,
		Pagination: dto.PaginationInfo{
			Offset: 0,
			Limit:  len(views),
			Total:  int64(len(views)),
		},
	})
}

// transactionView maps a stored transaction to its API representation
func transactionView(tx models.Transaction) dto.TransactionView {
	return dto.TransactionView{
		ID:           tx.ID,
		UserID:       tx.UserID,
		StatementID:  tx.StatementID,
		TxDate:       tx.TxDate,
		Amount:       tx.Amount,
		Currency:     tx.Currency,
		CategoryID:   tx.CategoryID,
		CategoryName: models.CategoryNameByID(tx.CategoryID),
		Description:  tx.Description,
		Status:       tx.Status,
	}
}
