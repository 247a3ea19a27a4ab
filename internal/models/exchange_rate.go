package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNonPositiveRate = errors.New("exchange rate must be positive")
	ErrMissingSource   = errors.New("exchange rate source is required")
)

// ExchangeRate is one historical FX observation: the value of one unit of
// the base currency expressed in the quote currency, as of a calendar day.
// Unique per (as_of_date, base, quote, source).
type ExchangeRate struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AsOfDate      time.Time       `gorm:"type:date;not null;uniqueIndex:ux_exchange_rates_day_pair_source,priority:1" json:"as_of_date"`
	BaseCurrency  string          `gorm:"type:varchar(3);not null;uniqueIndex:ux_exchange_rates_day_pair_source,priority:2" json:"base_currency"`
	QuoteCurrency string          `gorm:"type:varchar(3);not null;uniqueIndex:ux_exchange_rates_day_pair_source,priority:3" json:"quote_currency"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,8);not null" json:"rate"`
	Source        string          `gorm:"type:varchar(100);not null;uniqueIndex:ux_exchange_rates_day_pair_source,priority:4" json:"source"`
	SourceTS      time.Time       `gorm:"not null" json:"source_ts"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for ExchangeRate
func (e *ExchangeRate) BeforeCreate(tx *gorm.DB) error {
	return e.Validate()
}

// Validate validates the exchange rate fields
func (e *ExchangeRate) Validate() error {
	if !IsValidCurrency(e.BaseCurrency) || !IsValidCurrency(e.QuoteCurrency) {
		return ErrInvalidCurrency
	}
	if !e.Rate.IsPositive() {
		return ErrNonPositiveRate
	}
	if e.Source == "" {
		return ErrMissingSource
	}
	return nil
}

// TableName returns the table name for ExchangeRate
func (e *ExchangeRate) TableName() string {
	return "exchange_rates"
}
