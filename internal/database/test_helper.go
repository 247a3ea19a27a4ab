package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"ledger-engine/internal/config"
	"ledger-engine/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestStatement(t *testing.T, db *DB, userID uuid.UUID, bank, currency string) *models.Statement {
	t.Helper()

	statement := &models.Statement{
		UserID:   userID,
		FilePath: "/tmp/test-statement.csv",
		Source:   bank,
		Currency: currency,
	}

	if err := db.Create(statement).Error; err != nil {
		t.Fatalf("failed to create test statement: %v", err)
	}

	return statement
}

func CreateTestRate(t *testing.T, db *DB, asOfDate time.Time, base, quote, rate, source string) *models.ExchangeRate {
	t.Helper()

	row := &models.ExchangeRate{
		AsOfDate:      asOfDate,
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Rate:          decimal.RequireFromString(rate),
		Source:        source,
		SourceTS:      asOfDate,
	}

	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test exchange rate: %v", err)
	}

	return row
}

// CreateTestTransactions seeds n transactions for a statement, one per day
// starting at 2024-01-01, with randomized merchant names and amounts.
func CreateTestTransactions(t *testing.T, db *DB, userID uuid.UUID, statementID int64, n int, currency string) []models.Transaction {
	t.Helper()

	transactions := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		tx := models.Transaction{
			UserID:      userID,
			StatementID: statementID,
			TxDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Amount:      int64(gofakeit.Number(100, 100000)),
			Currency:    currency,
			CategoryID:  gofakeit.Number(models.CategoryIDUncategorized, models.CategoryIDOther),
			Description: strings.ToUpper(gofakeit.Company()),
			Status:      models.TransactionStatusActive,
		}
		if err := db.Create(&tx).Error; err != nil {
			t.Fatalf("failed to create test transaction: %v", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"category_rules",
		"exchange_rates",
		"statements",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
