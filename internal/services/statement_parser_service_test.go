package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ledger-engine/internal/models"
	"ledger-engine/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubCategorizer lets each test script the remote classifier without a
// network round trip
type stubCategorizer struct {
	calls   int
	answers map[string]models.CategoryAssignment
	err     error
}

func (c *stubCategorizer) Categorize(_ context.Context, descriptions []string) (map[string]models.CategoryAssignment, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}

	result := make(map[string]models.CategoryAssignment, len(descriptions))
	for _, d := range descriptions {
		if a, ok := c.answers[d]; ok {
			result[d] = a
		}
	}
	return result, nil
}

type StatementParserTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	ruleRepo        *repository_mocks.MockCategoryRuleRepositoryInterface
	categorizer     *stubCategorizer
	parser          *StatementParser
	userID          uuid.UUID
}

func TestStatementParserSuite(t *testing.T) {
	suite.Run(t, new(StatementParserTestSuite))
}

func (s *StatementParserTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.ruleRepo = repository_mocks.NewMockCategoryRuleRepositoryInterface(s.ctrl)
	s.categorizer = &stubCategorizer{answers: map[string]models.CategoryAssignment{}}
	s.userID = uuid.New()

	s.parser = NewStatementParser(
		NewExtractorRegistry(),
		s.transactionRepo,
		s.ruleRepo,
		s.categorizer,
		NewNoopMetrics(),
	).(*StatementParser)
}

func (s *StatementParserTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatementParserTestSuite) writeStatement(content string) string {
	path := filepath.Join(s.T().TempDir(), "statement.csv")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *StatementParserTestSuite) request(bank, path string) ParseRequest {
	return ParseRequest{
		UserID:      s.userID,
		StatementID: 42,
		Bank:        bank,
		Currency:    "CAD",
		FilePath:    path,
	}
}

func (s *StatementParserTestSuite) TestParse_TDStatement() {
	// TD exports carry no header row
	path := s.writeStatement(
		"01/15/2024,METRO STORE 0452,42.50,,1000.00\n" +
			"01/16/2024,PAYROLL DEPOSIT,,2500.00,3500.00\n" +
			"01/17/2024,UBER TRIP/G3ZGWU1,18.25,,3481.75\n")

	s.categorizer.answers = map[string]models.CategoryAssignment{
		"METRO STORE": {NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries, CategoryName: "Groceries"},
		"UBER TRIP":   {NormDesc: "UBER TRIP", CategoryID: models.CategoryIDTransport, CategoryName: "Transportation"},
	}

	s.ruleRepo.EXPECT().GetByNormDescs(gomock.Any()).Return(map[string]models.CategoryRule{}, nil)
	s.ruleRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rules []models.CategoryRule) error {
		s.Len(rules, 2)
		return nil
	})

	var persisted []models.Transaction
	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		persisted = transactions
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)))

	s.Require().Len(persisted, 2, "the credit row must be skipped")
	s.Equal("METRO STORE", persisted[0].Description)
	s.Equal(int64(4250), persisted[0].Amount)
	s.Equal(models.CategoryIDGroceries, persisted[0].CategoryID)
	s.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), persisted[0].TxDate)
	s.Equal(s.userID, persisted[0].UserID)
	s.Equal(int64(42), persisted[0].StatementID)
	s.Equal("CAD", persisted[0].Currency)
	s.Equal(models.TransactionStatusActive, persisted[0].Status)

	s.Equal("UBER TRIP", persisted[1].Description)
	s.Equal(int64(1825), persisted[1].Amount)
	s.Equal(models.CategoryIDTransport, persisted[1].CategoryID)

	s.Equal(1, s.categorizer.calls)
}

func (s *StatementParserTestSuite) TestParse_RuleCacheHitSkipsCategorizer() {
	path := s.writeStatement("01/15/2024,METRO STORE 0452,42.50,,1000.00\n")

	s.ruleRepo.EXPECT().GetByNormDescs([]string{"METRO STORE"}).Return(map[string]models.CategoryRule{
		"METRO STORE": {NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries},
	}, nil)

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 1)
		s.Equal(models.CategoryIDGroceries, transactions[0].CategoryID)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)))
	s.Equal(0, s.categorizer.calls, "cached descriptions must not reach the remote classifier")
}

func (s *StatementParserTestSuite) TestParse_DuplicateDescriptionsClassifiedOnce() {
	path := s.writeStatement(
		"01/15/2024,METRO STORE 0452,42.50,,1000.00\n" +
			"01/20/2024,METRO STORE 9981,17.00,,983.00\n")

	s.categorizer.answers = map[string]models.CategoryAssignment{
		"METRO STORE": {NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries, CategoryName: "Groceries"},
	}

	s.ruleRepo.EXPECT().GetByNormDescs([]string{"METRO STORE"}).Return(map[string]models.CategoryRule{}, nil)
	s.ruleRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rules []models.CategoryRule) error {
		s.Len(rules, 1)
		return nil
	})

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 2)
		s.Equal(models.CategoryIDGroceries, transactions[0].CategoryID)
		s.Equal(models.CategoryIDGroceries, transactions[1].CategoryID)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)))
	s.Equal(1, s.categorizer.calls)
}

func (s *StatementParserTestSuite) TestParse_CategorizerFailureLeavesUncategorized() {
	path := s.writeStatement("01/15/2024,MYSTERY SHOP,10.00,,990.00\n")

	s.categorizer.err = errors.New("all providers down")

	s.ruleRepo.EXPECT().GetByNormDescs(gomock.Any()).Return(map[string]models.CategoryRule{}, nil)

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 1)
		s.Equal(models.CategoryIDUncategorized, transactions[0].CategoryID)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)),
		"a classifier outage must not fail the parse")
}

func (s *StatementParserTestSuite) TestParse_PartialClassification() {
	path := s.writeStatement(
		"01/15/2024,METRO STORE 0452,42.50,,1000.00\n" +
			"01/16/2024,MYSTERY SHOP,10.00,,990.00\n")

	// the model resolves only one of the two descriptions
	s.categorizer.answers = map[string]models.CategoryAssignment{
		"METRO STORE": {NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries, CategoryName: "Groceries"},
	}

	s.ruleRepo.EXPECT().GetByNormDescs(gomock.Any()).Return(map[string]models.CategoryRule{}, nil)
	s.ruleRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rules []models.CategoryRule) error {
		s.Require().Len(rules, 1)
		s.Equal("METRO STORE", rules[0].NormDesc)
		return nil
	})

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 2)
		s.Equal(models.CategoryIDGroceries, transactions[0].CategoryID)
		s.Equal(models.CategoryIDUncategorized, transactions[1].CategoryID)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)))
}

func (s *StatementParserTestSuite) TestParse_RuleWriteFailureIsNotFatal() {
	path := s.writeStatement("01/15/2024,METRO STORE 0452,42.50,,1000.00\n")

	s.categorizer.answers = map[string]models.CategoryAssignment{
		"METRO STORE": {NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries, CategoryName: "Groceries"},
	}

	s.ruleRepo.EXPECT().GetByNormDescs(gomock.Any()).Return(map[string]models.CategoryRule{}, nil)
	s.ruleRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("unique violation"))

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 1)
		s.Equal(models.CategoryIDGroceries, transactions[0].CategoryID)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)))
}

func (s *StatementParserTestSuite) TestParse_RogersStatementWithHeader() {
	path := s.writeStatement(
		"Date,Merchant Name,Amount\n" +
			"2024-02-03,COSTCO GAS_V,$54.20\n" +
			"2024-02-04,PAYMENT THANK YOU,(100.00)\n")

	s.ruleRepo.EXPECT().GetByNormDescs([]string{"COSTCO GAS"}).Return(map[string]models.CategoryRule{
		"COSTCO GAS": {NormDesc: "COSTCO GAS", CategoryID: models.CategoryIDTransport},
	}, nil)

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 1)
		s.Equal(int64(5420), transactions[0].Amount)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankRogers, path)))
}

func (s *StatementParserTestSuite) TestParse_CMBIncomeRowsDropped() {
	path := s.writeStatement(
		"Date,Type,Counterparty,Amount\n" +
			"2024-03-10,POS,SUPERMARKET,-88.50\n" +
			"2024-03-11,TRANSFER,EMPLOYER,5000.00\n")

	s.ruleRepo.EXPECT().GetByNormDescs([]string{"POS SUPERMARKET"}).Return(map[string]models.CategoryRule{
		"POS SUPERMARKET": {NormDesc: "POS SUPERMARKET", CategoryID: models.CategoryIDGroceries},
	}, nil)

	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Require().Len(transactions, 1)
		s.Equal(int64(8850), transactions[0].Amount)
		return nil
	})

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankCMB, path)))
}

func (s *StatementParserTestSuite) TestParse_EmptyStatement() {
	path := s.writeStatement("01/15/2024,PAYROLL DEPOSIT,,2500.00,3500.00\n")

	s.Require().NoError(s.parser.Parse(context.Background(), s.request(models.BankTD, path)),
		"a statement with no expense rows is not an error")
}

func (s *StatementParserTestSuite) TestParse_UnknownBank() {
	err := s.parser.Parse(context.Background(), s.request("SCOTIABANK", "unused.csv"))
	s.ErrorIs(err, ErrUnknownBank)
}

func (s *StatementParserTestSuite) TestParse_MissingFile() {
	err := s.parser.Parse(context.Background(), s.request(models.BankTD, filepath.Join(s.T().TempDir(), "missing.csv")))
	s.Error(err)
}

func (s *StatementParserTestSuite) TestParse_RuleCacheReadFailureAborts() {
	path := s.writeStatement("01/15/2024,METRO STORE 0452,42.50,,1000.00\n")

	s.ruleRepo.EXPECT().GetByNormDescs(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := s.parser.Parse(context.Background(), s.request(models.BankTD, path))
	s.Error(err)
}

func (s *StatementParserTestSuite) TestParse_TransactionWriteFailureAborts() {
	path := s.writeStatement("01/15/2024,METRO STORE 0452,42.50,,1000.00\n")

	s.ruleRepo.EXPECT().GetByNormDescs(gomock.Any()).Return(map[string]models.CategoryRule{
		"METRO STORE": {NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries},
	}, nil)
	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("connection refused"))

	err := s.parser.Parse(context.Background(), s.request(models.BankTD, path))
	s.Error(err)
}
