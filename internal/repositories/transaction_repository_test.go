package repositories

import (
	"testing"
	"time"

	"ledger-engine/internal/database"
	"ledger-engine/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for transactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db        *database.DB
	repo      TransactionRepositoryInterface
	userID    uuid.UUID
	statement *models.Statement
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()
	s.statement = database.CreateTestStatement(s.T(), s.db, s.userID, models.BankTD, "CAD")
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransaction(day int, amount int64, desc string) models.Transaction {
	return models.Transaction{
		UserID:      s.userID,
		StatementID: s.statement.ID,
		TxDate:      time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Amount:      amount,
		Currency:    "CAD",
		CategoryID:  models.CategoryIDGroceries,
		Description: desc,
		Status:      models.TransactionStatusActive,
	}
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	transactions := []models.Transaction{
		s.newTransaction(5, 1350, "COFFEE SHOP"),
		s.newTransaction(6, 4200, "GROCERY STORE"),
		s.newTransaction(7, 999, "PHARMACY"),
	}

	err := s.repo.CreateBatch(transactions)
	s.NoError(err)

	for _, tx := range transactions {
		s.NotZero(tx.ID)
		s.NotZero(tx.CreatedAt)
	}
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
	s.NoError(s.repo.CreateBatch([]models.Transaction{}))
}

func (s *TransactionRepositorySuite) TestCreateBatch_RollsBackOnInvalidRow() {
	transactions := []models.Transaction{
		s.newTransaction(5, 1350, "COFFEE SHOP"),
		{
			UserID:      s.userID,
			StatementID: s.statement.ID,
			TxDate:      time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			Amount:      100,
			Currency:    "dollars", // fails validation
			Description: "BAD ROW",
		},
	}

	err := s.repo.CreateBatch(transactions)
	s.Error(err)

	// The valid row must not have been committed
	var count int64
	s.NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	transactions := []models.Transaction{s.newTransaction(5, 1350, "COFFEE SHOP")}
	s.Require().NoError(s.repo.CreateBatch(transactions))

	found, err := s.repo.GetByID(transactions[0].ID)
	s.NoError(err)
	s.Equal(int64(1350), found.Amount)
	s.Equal("COFFEE SHOP", found.Description)

	_, err = s.repo.GetByID(99999)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByStatementID_OrderedByDate() {
	transactions := []models.Transaction{
		s.newTransaction(20, 300, "LATE"),
		s.newTransaction(3, 100, "EARLY"),
		s.newTransaction(10, 200, "MIDDLE"),
	}
	s.Require().NoError(s.repo.CreateBatch(transactions))

	found, err := s.repo.GetByStatementID(s.statement.ID)
	s.NoError(err)
	s.Require().Len(found, 3)
	s.Equal("EARLY", found[0].Description)
	s.Equal("MIDDLE", found[1].Description)
	s.Equal("LATE", found[2].Description)
}

func (s *TransactionRepositorySuite) TestGetByStatementID_NoRows() {
	found, err := s.repo.GetByStatementID(s.statement.ID)
	s.NoError(err)
	s.Empty(found)
}

func (s *TransactionRepositorySuite) TestGetByUser_Pagination() {
	database.CreateTestTransactions(s.T(), s.db, s.userID, s.statement.ID, 10, "CAD")

	firstPage, total, err := s.repo.GetByUser(s.userID, nil, nil, 0, 4)
	s.NoError(err)
	s.Equal(int64(10), total)
	s.Len(firstPage, 4)

	secondPage, _, err := s.repo.GetByUser(s.userID, nil, nil, 4, 4)
	s.NoError(err)
	s.Len(secondPage, 4)
	s.NotEqual(firstPage[0].ID, secondPage[0].ID)

	// Newest first
	s.True(firstPage[0].TxDate.After(firstPage[3].TxDate))
}

func (s *TransactionRepositorySuite) TestGetByUser_DateRange() {
	database.CreateTestTransactions(s.T(), s.db, s.userID, s.statement.ID, 10, "CAD")

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	found, total, err := s.repo.GetByUser(s.userID, &start, &end, 0, 50)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(found, 3)
	for _, tx := range found {
		s.False(tx.TxDate.Before(start))
		s.False(tx.TxDate.After(end))
	}
}

func (s *TransactionRepositorySuite) TestGetByUser_ExcludesHidden() {
	transactions := []models.Transaction{s.newTransaction(5, 1350, "VISIBLE")}
	s.Require().NoError(s.repo.CreateBatch(transactions))

	hidden := s.newTransaction(6, 500, "HIDDEN")
	hidden.Status = models.TransactionStatusHidden
	s.Require().NoError(s.db.Create(&hidden).Error)

	found, total, err := s.repo.GetByUser(s.userID, nil, nil, 0, 50)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(found, 1)
	s.Equal("VISIBLE", found[0].Description)
}

func (s *TransactionRepositorySuite) TestGetByUser_OtherUserInvisible() {
	database.CreateTestTransactions(s.T(), s.db, s.userID, s.statement.ID, 3, "CAD")

	found, total, err := s.repo.GetByUser(uuid.New(), nil, nil, 0, 50)
	s.NoError(err)
	s.Zero(total)
	s.Empty(found)
}
