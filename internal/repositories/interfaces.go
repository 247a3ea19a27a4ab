package repositories

import (
	"time"

	"ledger-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction storage
type TransactionRepositoryInterface interface {
	CreateBatch(transactions []models.Transaction) error
	GetByID(id int64) (*models.Transaction, error)
	GetByStatementID(statementID int64) ([]models.Transaction, error)
	GetByUser(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]models.Transaction, int64, error)
}

// CategoryRuleRepositoryInterface defines the contract for the global
// description-to-category rule cache
type CategoryRuleRepositoryInterface interface {
	GetByNormDesc(normDesc string) (*models.CategoryRule, error)
	GetByNormDescs(normDescs []string) (map[string]models.CategoryRule, error)
	CreateBatch(rules []models.CategoryRule) error
}

// ExchangeRateRepositoryInterface defines the contract for historical FX
// rate storage keyed by (as_of_date, base, quote, source)
type ExchangeRateRepositoryInterface interface {
	GetRatesForDay(asOfDate time.Time, base, source string, quotes []string) (map[string]models.ExchangeRate, error)
	LatestDateCovering(maxDate *time.Time, base, source string, quotes []string) (time.Time, error)
	Create(rate *models.ExchangeRate) error
	UpdateRate(id int64, rate decimal.Decimal, source string, sourceTS time.Time) error
}

// StatementRepositoryInterface defines the contract for statement storage
type StatementRepositoryInterface interface {
	Create(statement *models.Statement) error
	GetByID(id int64) (*models.Statement, error)
	GetByUser(userID uuid.UUID, offset, limit int) ([]models.Statement, int64, error)
}
