package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supported bank identifiers for uploaded statements.
const (
	BankTD     = "TD"
	BankRogers = "ROGERS"
	BankCMB    = "CMB"
)

// Statement records one uploaded bank-statement file. Parsing happens in
// the background after the row is created; transactions reference it by id.
type Statement struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FilePath  string    `gorm:"type:varchar(512);not null" json:"file_path"`
	Source    string    `gorm:"type:varchar(50);not null" json:"source"`
	Currency  string    `gorm:"type:varchar(3);not null" json:"currency"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Statement
func (s *Statement) BeforeCreate(tx *gorm.DB) error {
	if s.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidCurrency(s.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}

// TableName returns the table name for Statement
func (s *Statement) TableName() string {
	return "statements"
}

// IsSupportedBank checks a bank identifier against the known set
func IsSupportedBank(bank string) bool {
	switch bank {
	case BankTD, BankRogers, BankCMB:
		return true
	default:
		return false
	}
}
