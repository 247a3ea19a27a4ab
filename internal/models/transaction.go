package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// TransactionStatusActive is the normal state written by the parser.
	TransactionStatusActive int16 = 1
	// TransactionStatusHidden marks a transaction excluded from summaries.
	TransactionStatusHidden int16 = 2
)

var (
	ErrInvalidCurrency          = errors.New("currency must be a 3-letter ISO-4217 code")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrMissingUserID            = errors.New("user ID is required")
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Transaction is a canonical ledger entry produced by the statement parser.
// Amount is stored in integer minor units (cents); positive means expense.
type Transaction struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_user_txdate,priority:1" json:"user_id"`
	StatementID int64     `gorm:"index" json:"statement_id"`
	TxDate      time.Time `gorm:"type:date;not null;index:idx_transactions_user_txdate,priority:2" json:"tx_date"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Currency    string    `gorm:"type:varchar(3);not null" json:"currency"`
	CategoryID  int       `gorm:"not null;default:0" json:"category_id"`
	Description string    `gorm:"type:varchar(255);not null;default:''" json:"description"`
	Status      int16     `gorm:"not null;default:1" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Status == 0 {
		t.Status = TransactionStatusActive
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidCurrency(t.Currency) {
		return ErrInvalidCurrency
	}
	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}
	return nil
}

// IsActive returns true if the transaction is visible to summaries
func (t *Transaction) IsActive() bool {
	return t.Status == TransactionStatusActive
}

// IsCategorized returns true once a real category has been assigned
func (t *Transaction) IsCategorized() bool {
	return t.CategoryID != CategoryIDUncategorized
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidCurrency checks the 3-uppercase-letter ISO-4217 invariant
func IsValidCurrency(currency string) bool {
	return currencyPattern.MatchString(currency)
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status int16) bool {
	switch status {
	case TransactionStatusActive, TransactionStatusHidden:
		return true
	default:
		return false
	}
}
