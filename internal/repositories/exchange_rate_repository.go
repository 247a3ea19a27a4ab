package repositories

import (
	"errors"
	"fmt"
	"time"

	"ledger-engine/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExchangeRateNotFound = errors.New("exchange rate not found")
	// ErrNoCoveringDate means no stored date carries rates for every
	// requested quote currency simultaneously.
	ErrNoCoveringDate = errors.New("no date covers all requested quote currencies")
)

// exchangeRateRepository implements ExchangeRateRepositoryInterface
type exchangeRateRepository struct {
	db *gorm.DB
}

// NewExchangeRateRepository creates a new exchange rate repository
func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepositoryInterface {
	return &exchangeRateRepository{
		db: db,
	}
}

// GetRatesForDay retrieves the rate rows for one day, keyed by quote
// currency. Quotes without a row for that day are absent from the map.
func (r *exchangeRateRepository) GetRatesForDay(asOfDate time.Time, base, source string, quotes []string) (map[string]models.ExchangeRate, error) {
	result := make(map[string]models.ExchangeRate, len(quotes))
	if len(quotes) == 0 {
		return result, nil
	}

	var rates []models.ExchangeRate
	if err := r.db.
		Where("as_of_date = ? AND base_currency = ? AND source = ? AND quote_currency IN ?",
			asOfDate, base, source, quotes).
		Find(&rates).Error; err != nil {
		return nil, fmt.Errorf("failed to get rates for day: %w", err)
	}

	for _, rate := range rates {
		result[rate.QuoteCurrency] = rate
	}
	return result, nil
}

// LatestDateCovering returns the most recent date no later than maxDate
// for which a rate row exists for every quote currency at once. A nil
// maxDate removes the upper bound (global latest). Partial coverage of
// the quote set does not count.
func (r *exchangeRateRepository) LatestDateCovering(maxDate *time.Time, base, source string, quotes []string) (time.Time, error) {
	if len(quotes) == 0 {
		return time.Time{}, ErrNoCoveringDate
	}

	query := r.db.Model(&models.ExchangeRate{}).
		Where("base_currency = ? AND source = ? AND quote_currency IN ?", base, source, quotes)
	if maxDate != nil {
		query = query.Where("as_of_date <= ?", *maxDate)
	}

	var dates []time.Time
	if err := query.
		Group("as_of_date").
		Having("COUNT(DISTINCT quote_currency) = ?", len(quotes)).
		Order("as_of_date DESC").
		Limit(1).
		Pluck("as_of_date", &dates).Error; err != nil {
		return time.Time{}, fmt.Errorf("failed to find covering date: %w", err)
	}

	if len(dates) == 0 {
		return time.Time{}, ErrNoCoveringDate
	}
	return dates[0], nil
}

// Create inserts a new rate row
func (r *exchangeRateRepository) Create(rate *models.ExchangeRate) error {
	if err := r.db.Create(rate).Error; err != nil {
		return fmt.Errorf("failed to create exchange rate: %w", err)
	}
	return nil
}

// UpdateRate overwrites the rate value and provenance of an existing row
func (r *exchangeRateRepository) UpdateRate(id int64, rate decimal.Decimal, source string, sourceTS time.Time) error {
	result := r.db.Model(&models.ExchangeRate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rate":       rate,
			"source":     source,
			"source_ts":  sourceTS,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update exchange rate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExchangeRateNotFound
	}
	return nil
}
