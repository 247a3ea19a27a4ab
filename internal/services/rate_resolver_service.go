package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ledger-engine/internal/repositories"
)

var (
	// ErrRateNotFound means no date in the entire store covers every
	// required quote currency for the requested base/source.
	ErrRateNotFound = errors.New("no exchange rate date covers the required currencies")
)

// RateResolver finds the best available rate date for a transaction:
// the transaction date itself, else the latest covered date before it,
// else the latest covered date overall.
type RateResolver struct {
	rateRepo repositories.ExchangeRateRepositoryInterface
	logger   *slog.Logger
}

// NewRateResolver creates a new rate date resolver
func NewRateResolver(rateRepo repositories.ExchangeRateRepositoryInterface) RateResolverInterface {
	return &RateResolver{
		rateRepo: rateRepo,
		logger:   slog.Default(),
	}
}

// ResolveDate runs the three-tier fallback search. An empty quote set is
// degenerate (base and target already coincide) and resolves to txDate
// without touching the store.
func (r *RateResolver) ResolveDate(txDate time.Time, base, source string, quotes []string) (time.Time, error) {
	if len(quotes) == 0 {
		return txDate, nil
	}

	// Tier 1: the transaction date itself
	rates, err := r.rateRepo.GetRatesForDay(txDate, base, source, quotes)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to check exact rate date: %w", err)
	}
	if len(rates) == len(quotes) {
		return txDate, nil
	}

	// Tier 2: latest fully covered date at or before txDate
	date, err := r.rateRepo.LatestDateCovering(&txDate, base, source, quotes)
	if err == nil {
		return date, nil
	}
	if !errors.Is(err, repositories.ErrNoCoveringDate) {
		return time.Time{}, fmt.Errorf("failed to search rate dates: %w", err)
	}

	// Tier 3: latest fully covered date anywhere in the store
	date, err = r.rateRepo.LatestDateCovering(nil, base, source, quotes)
	if err == nil {
		r.logger.Debug("rate date resolved past the transaction date",
			slog.Time("tx_date", txDate),
			slog.Time("rate_date", date),
		)
		return date, nil
	}
	if !errors.Is(err, repositories.ErrNoCoveringDate) {
		return time.Time{}, fmt.Errorf("failed to search rate dates: %w", err)
	}

	return time.Time{}, fmt.Errorf("%w: base=%s source=%s quotes=%v", ErrRateNotFound, base, source, quotes)
}
