package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"ledger-engine/internal/models"
	"ledger-engine/internal/repositories"

	"github.com/shopspring/decimal"
)

// snapshotEpsilon absorbs float noise from re-fetching the same day:
// differences at or below it are not treated as rate changes.
var snapshotEpsilon = decimal.New(1, -8)

// SnapshotInput is one fetched day of rates for a base currency
type SnapshotInput struct {
	Timestamp int64
	Base      string
	Source    string
	Rates     map[string]decimal.Decimal
}

// SnapshotWriter persists a day's fetched rates idempotently: new pairs
// insert, genuinely changed pairs update, unchanged pairs are no-ops.
type SnapshotWriter struct {
	rateRepo repositories.ExchangeRateRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewSnapshotWriter creates a new daily snapshot writer
func NewSnapshotWriter(rateRepo repositories.ExchangeRateRepositoryInterface, metrics MetricsRecorderInterface) SnapshotWriterInterface {
	return &SnapshotWriter{
		rateRepo: rateRepo,
		metrics:  metrics,
		logger:   slog.Default(),
	}
}

// WriteDailySnapshot upserts the input's rates for its UTC calendar day
// and returns how many pairs were inserted and updated
func (w *SnapshotWriter) WriteDailySnapshot(input SnapshotInput) (inserted, updated int, err error) {
	sourceTS := time.Unix(input.Timestamp, 0).UTC()
	asOfDate := sourceTS.Truncate(24 * time.Hour)

	quotes := make([]string, 0, len(input.Rates))
	for quote := range input.Rates {
		quotes = append(quotes, quote)
	}
	sort.Strings(quotes)

	existing, err := w.rateRepo.GetRatesForDay(asOfDate, input.Base, input.Source, quotes)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load existing snapshot rows: %w", err)
	}

	for _, quote := range quotes {
		newRate := input.Rates[quote]

		row, ok := existing[quote]
		if !ok {
			rate := models.ExchangeRate{
				AsOfDate:      asOfDate,
				BaseCurrency:  input.Base,
				QuoteCurrency: quote,
				Rate:          newRate,
				Source:        input.Source,
				SourceTS:      sourceTS,
			}
			if err := w.rateRepo.Create(&rate); err != nil {
				return inserted, updated, fmt.Errorf("failed to insert rate %s/%s: %w", input.Base, quote, err)
			}
			inserted++
			continue
		}

		if newRate.Sub(row.Rate).Abs().GreaterThan(snapshotEpsilon) {
			if err := w.rateRepo.UpdateRate(row.ID, newRate, input.Source, sourceTS); err != nil {
				return inserted, updated, fmt.Errorf("failed to update rate %s/%s: %w", input.Base, quote, err)
			}
			updated++
		}
	}

	w.metrics.SnapshotWritten(inserted, updated)
	w.logger.Info("daily rate snapshot written",
		slog.Time("as_of_date", asOfDate),
		slog.String("base", input.Base),
		slog.String("source", input.Source),
		slog.Int("inserted", inserted),
		slog.Int("updated", updated),
	)
	return inserted, updated, nil
}
