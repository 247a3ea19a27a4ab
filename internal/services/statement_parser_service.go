package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"ledger-engine/internal/models"
	"ledger-engine/internal/repositories"

	"github.com/google/uuid"
)

// ParseRequest is the fully-resolved, immutable input of one background
// parse. The statement row and the staged file already exist when the
// request is handed off.
type ParseRequest struct {
	UserID      uuid.UUID
	StatementID int64
	Bank        string
	Currency    string
	FilePath    string
}

// StatementParser turns a staged bank CSV into persisted canonical
// transactions, resolving categories through the rule cache first and
// the remote categorizer for the remainder.
type StatementParser struct {
	extractors      *ExtractorRegistry
	transactionRepo repositories.TransactionRepositoryInterface
	ruleRepo        repositories.CategoryRuleRepositoryInterface
	categorizer     RemoteCategorizerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewStatementParser creates a new statement parser
func NewStatementParser(
	extractors *ExtractorRegistry,
	transactionRepo repositories.TransactionRepositoryInterface,
	ruleRepo repositories.CategoryRuleRepositoryInterface,
	categorizer RemoteCategorizerInterface,
	metrics MetricsRecorderInterface,
) StatementParserInterface {
	return &StatementParser{
		extractors:      extractors,
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
		categorizer:     categorizer,
		metrics:         metrics,
		logger:          slog.Default(),
	}
}

// Parse runs the full pipeline for one statement. A file or storage
// failure aborts the statement; a categorizer failure does not, and the
// rows it could not resolve persist with category id 0.
func (s *StatementParser) Parse(ctx context.Context, req ParseRequest) error {
	extractor, err := s.extractors.ExtractorFor(req.Bank)
	if err != nil {
		return err
	}

	rows, err := loadCSVRows(req.FilePath, extractor.HeaderSpec())
	if err != nil {
		return fmt.Errorf("failed to read statement file: %w", err)
	}

	transactions, skipped := s.extractTransactions(req, extractor, rows)
	s.metrics.RowsParsed(req.Bank, len(transactions))
	s.metrics.RowsSkipped(req.Bank, skipped)

	if len(transactions) == 0 {
		s.logger.Info("statement contained no expense rows",
			slog.Int64("statement_id", req.StatementID),
			slog.String("bank", req.Bank),
		)
		return nil
	}

	pending, err := s.applyRuleCache(transactions)
	if err != nil {
		return err
	}

	if len(pending) > 0 {
		s.classifyPending(ctx, transactions, pending)
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return fmt.Errorf("failed to persist statement transactions: %w", err)
	}

	s.logger.Info("statement parsed",
		slog.Int64("statement_id", req.StatementID),
		slog.String("bank", req.Bank),
		slog.Int("transactions", len(transactions)),
		slog.Int("rows_skipped", skipped),
	)
	return nil
}

// extractTransactions runs the extractor over every row and builds the
// unclassified transactions. Malformed rows and non-expense amounts are
// skipped, never fatal.
func (s *StatementParser) extractTransactions(req ParseRequest, extractor BankRowExtractor, rows []map[string]string) ([]models.Transaction, int) {
	transactions := make([]models.Transaction, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		extracted, ok := extractor.Extract(row)
		if !ok || !extracted.Amount.IsPositive() {
			skipped++
			continue
		}

		transactions = append(transactions, models.Transaction{
			UserID:      req.UserID,
			StatementID: req.StatementID,
			TxDate:      extracted.Date,
			Amount:      ToMinorUnits(extracted.Amount),
			Currency:    req.Currency,
			CategoryID:  models.CategoryIDUncategorized,
			Description: extracted.NormDesc,
			Status:      models.TransactionStatusActive,
		})
	}

	return transactions, skipped
}

// applyRuleCache resolves every transaction the global rule cache already
// knows and returns the indices of the rest, grouped by description
func (s *StatementParser) applyRuleCache(transactions []models.Transaction) (map[string][]int, error) {
	descs := make([]string, 0, len(transactions))
	seen := make(map[string]struct{}, len(transactions))
	for _, tx := range transactions {
		if _, ok := seen[tx.Description]; !ok {
			seen[tx.Description] = struct{}{}
			descs = append(descs, tx.Description)
		}
	}

	rules, err := s.ruleRepo.GetByNormDescs(descs)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule cache: %w", err)
	}

	pending := make(map[string][]int)
	hits := 0
	for i := range transactions {
		if rule, ok := rules[transactions[i].Description]; ok {
			transactions[i].CategoryID = rule.CategoryID
			hits++
			continue
		}
		pending[transactions[i].Description] = append(pending[transactions[i].Description], i)
	}

	s.metrics.RuleCacheHit(hits)
	s.metrics.RuleCacheMiss(len(pending))
	return pending, nil
}

// classifyPending sends the unresolved descriptions to the remote
// categorizer in one batch, back-fills the placeholder transactions and
// learns new rules. Failure here is never fatal to the parse.
func (s *StatementParser) classifyPending(ctx context.Context, transactions []models.Transaction, pending map[string][]int) {
	descs := make([]string, 0, len(pending))
	for desc := range pending {
		descs = append(descs, desc)
	}

	assignments, err := s.categorizer.Categorize(ctx, descs)
	if err != nil {
		s.logger.Error("remote categorization failed, persisting uncategorized",
			slog.Int("descriptions", len(descs)),
			slog.String("error", err.Error()),
		)
		return
	}

	newRules := make([]models.CategoryRule, 0, len(assignments))
	for desc, indices := range pending {
		assignment, ok := assignments[desc]
		if !ok {
			s.logger.Warn("description left uncategorized by classifier",
				slog.String("norm_desc", desc),
			)
			continue
		}

		for _, i := range indices {
			transactions[i].CategoryID = assignment.CategoryID
		}

		newRules = append(newRules, models.CategoryRule{
			NormDesc:     desc,
			CategoryID:   assignment.CategoryID,
			CategoryName: assignment.CategoryName,
			Note:         assignment.Note,
		})
	}

	if len(newRules) == 0 {
		return
	}

	// Rule learning is a cache write: losing it costs a future API call,
	// not correctness, so it does not abort the parse.
	if err := s.ruleRepo.CreateBatch(newRules); err != nil {
		s.logger.Error("failed to persist learned category rules",
			slog.Int("rules", len(newRules)),
			slog.String("error", err.Error()),
		)
	}
}

// loadCSVRows reads a statement file into column-keyed rows. A non-nil
// header spec means the export has no header row of its own.
func loadCSVRows(path string, headerSpec []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := headerSpec
	if header == nil {
		header = records[0]
		records = records[1:]
	}

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
