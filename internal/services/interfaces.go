package services

import (
	"context"
	"time"

	"ledger-engine/internal/models"
)

// StatementParserInterface defines the contract for statement ingestion
type StatementParserInterface interface {
	// Parse loads the staged CSV, normalizes and categorizes its rows,
	// and persists the resulting transactions
	Parse(ctx context.Context, req ParseRequest) error
}

// RemoteCategorizerInterface defines the contract for remote transaction
// categorization
type RemoteCategorizerInterface interface {
	// Categorize maps normalized descriptions to category assignments,
	// failing over between providers on transient errors
	Categorize(ctx context.Context, descriptions []string) (map[string]models.CategoryAssignment, error)
}

// RateResolverInterface resolves which stored rate day applies to a
// transaction date
type RateResolverInterface interface {
	ResolveDate(txDate time.Time, base, source string, quotes []string) (time.Time, error)
}

// CurrencyConverterInterface defines currency conversion over minor-unit
// amounts
type CurrencyConverterInterface interface {
	Convert(from, to string, txDate time.Time, amounts []int64) ([]int64, time.Time, error)
	ConvertBatch(items []ConversionItem, to string) []ConversionResult
}

// SnapshotWriterInterface persists one day of upstream rates
type SnapshotWriterInterface interface {
	WriteDailySnapshot(input SnapshotInput) (inserted, updated int, err error)
}

// RateFetcherInterface pulls the latest rates from the upstream FX API
type RateFetcherInterface interface {
	FetchLatest(ctx context.Context) (*LatestRates, error)
}

type MetricsRecorderInterface interface {
	RowsParsed(bank string, count int)
	RowsSkipped(bank string, count int)
	RuleCacheHit(count int)
	RuleCacheMiss(count int)
	CategorizerAttempt(provider, outcome string)
	ConversionPerformed(from, to string)
	SnapshotWritten(inserted, updated int)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
}
