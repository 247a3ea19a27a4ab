package repositories

import (
	"errors"
	"fmt"

	"ledger-engine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStatementNotFound = errors.New("statement not found")
)

// statementRepository implements StatementRepositoryInterface
type statementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new statement repository
func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &statementRepository{
		db: db,
	}
}

// Create inserts a new statement record
func (r *statementRepository) Create(statement *models.Statement) error {
	if err := r.db.Create(statement).Error; err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}
	return nil
}

// GetByID retrieves a statement by ID
func (r *statementRepository) GetByID(id int64) (*models.Statement, error) {
	var statement models.Statement
	if err := r.db.First(&statement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return &statement, nil
}

// GetByUser retrieves a user's statements with pagination
func (r *statementRepository) GetByUser(userID uuid.UUID, offset, limit int) ([]models.Statement, int64, error) {
	var total int64
	if err := r.db.Model(&models.Statement{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count statements: %w", err)
	}

	var statements []models.Statement
	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&statements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get statements: %w", err)
	}

	return statements, total, nil
}
