package repositories

import (
	"errors"
	"fmt"
	"time"

	"ledger-engine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch creates all transactions of one parsed statement in a single
// database transaction. Either every row commits or none does.
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByStatementID retrieves all transactions produced from one statement
func (r *transactionRepository) GetByStatementID(statementID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("statement_id = ?", statementID).
		Order("tx_date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by statement: %w", err)
	}
	return transactions, nil
}

// GetByUser retrieves a user's transactions with pagination and an
// optional date-range filter
func (r *transactionRepository) GetByUser(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]models.Transaction, int64, error) {
	query := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND status = ?", userID, models.TransactionStatusActive)

	if startDate != nil {
		query = query.Where("tx_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("tx_date <= ?", *endDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := query.Offset(offset).Limit(limit).
		Order("tx_date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}
