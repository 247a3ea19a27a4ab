package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ledger-engine/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	// ErrRateConsistency signals a resolver/store mismatch: the resolved
	// date no longer carries every required quote. That is a bug, not a
	// data condition, and must never be silently substituted.
	ErrRateConsistency = errors.New("resolved rate date is missing required quotes")
)

// ConversionItem is one amount to value in the display currency
type ConversionItem struct {
	From   string
	Date   time.Time
	Amount int64
}

// ConversionResult is the valued amount, or the error of its group
type ConversionResult struct {
	Amount   int64
	RateDate time.Time
	Err      error
}

// CurrencyConverter values minor-unit amounts in a display currency
// using historical rates, all cross-rates pivoting through the base
// currency.
type CurrencyConverter struct {
	rateRepo     repositories.ExchangeRateRepositoryInterface
	resolver     RateResolverInterface
	baseCurrency string
	source       string
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCurrencyConverter creates a new currency converter
func NewCurrencyConverter(
	rateRepo repositories.ExchangeRateRepositoryInterface,
	resolver RateResolverInterface,
	baseCurrency, source string,
	metrics MetricsRecorderInterface,
) CurrencyConverterInterface {
	return &CurrencyConverter{
		rateRepo:     rateRepo,
		resolver:     resolver,
		baseCurrency: baseCurrency,
		source:       source,
		metrics:      metrics,
		logger:       slog.Default(),
	}
}

// Convert values the amounts from one currency into another as of
// txDate, using one resolved rate date and one rate fetch for the whole
// slice. Zero amounts stay zero without touching rate math.
func (c *CurrencyConverter) Convert(from, to string, txDate time.Time, amounts []int64) ([]int64, time.Time, error) {
	if from == to {
		out := make([]int64, len(amounts))
		copy(out, amounts)
		return out, txDate, nil
	}

	quotes := c.requiredQuotes(from, to)

	rateDate, err := c.resolver.ResolveDate(txDate, c.baseCurrency, c.source, quotes)
	if err != nil {
		return nil, time.Time{}, err
	}

	rates, err := c.rateRepo.GetRatesForDay(rateDate, c.baseCurrency, c.source, quotes)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to fetch rates: %w", err)
	}
	if len(rates) != len(quotes) {
		return nil, time.Time{}, fmt.Errorf("%w: date=%s want=%d got=%d",
			ErrRateConsistency, rateDate.Format("2006-01-02"), len(quotes), len(rates))
	}

	out := make([]int64, len(amounts))
	for i, amount := range amounts {
		if amount == 0 {
			continue
		}

		value := decimal.NewFromInt(amount)
		switch {
		case from == c.baseCurrency:
			value = value.Mul(rates[to].Rate)
		case to == c.baseCurrency:
			value = value.Div(rates[from].Rate)
		default:
			value = value.Mul(rates[to].Rate).Div(rates[from].Rate)
		}
		out[i] = RoundHalfUp(value)
	}

	c.metrics.ConversionPerformed(from, to)
	return out, rateDate, nil
}

// ConvertBatch values many transactions at once, issuing one rate
// lookup per distinct (from, date) group. A group that cannot be valued
// fails only its own members.
func (c *CurrencyConverter) ConvertBatch(items []ConversionItem, to string) []ConversionResult {
	type groupKey struct {
		from string
		date time.Time
	}

	groups := make(map[groupKey][]int)
	for i, item := range items {
		key := groupKey{from: item.From, date: item.Date}
		groups[key] = append(groups[key], i)
	}

	results := make([]ConversionResult, len(items))
	for key, indices := range groups {
		amounts := make([]int64, len(indices))
		for j, i := range indices {
			amounts[j] = items[i].Amount
		}

		converted, rateDate, err := c.Convert(key.from, to, key.date, amounts)
		if err != nil {
			c.logger.Warn("conversion group failed",
				slog.String("from", key.from),
				slog.String("to", to),
				slog.Time("tx_date", key.date),
				slog.String("error", err.Error()),
			)
			for _, i := range indices {
				results[i] = ConversionResult{Err: err}
			}
			continue
		}

		for j, i := range indices {
			results[i] = ConversionResult{Amount: converted[j], RateDate: rateDate}
		}
	}

	return results
}

// requiredQuotes lists the non-base currencies among {from, to}; the
// base currency needs no quote row
func (c *CurrencyConverter) requiredQuotes(from, to string) []string {
	quotes := make([]string, 0, 2)
	if from != c.baseCurrency {
		quotes = append(quotes, from)
	}
	if to != c.baseCurrency && to != from {
		quotes = append(quotes, to)
	}
	return quotes
}
