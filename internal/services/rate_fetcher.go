package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ledger-engine/internal/config"

	"github.com/shopspring/decimal"
)

var (
	// ErrRatesConfig is a non-retryable configuration failure of the
	// ingestion job (missing credential, rejected parameters).
	ErrRatesConfig = errors.New("exchange rates job misconfigured")
	// ErrRatesFetch means every fetch attempt was exhausted.
	ErrRatesFetch = errors.New("exchange rates fetch failed after retries")
)

// LatestRates is the upstream provider's answer for one day
type LatestRates struct {
	Timestamp int64
	Base      string
	Rates     map[string]decimal.Decimal
}

// RateFetcher pulls the latest daily rates from the upstream FX API,
// retrying transient failures with exponential backoff
type RateFetcher struct {
	cfg         config.RatesJobConfig
	httpClient  *http.Client
	backoffBase time.Duration
	logger      *slog.Logger
}

// NewRateFetcher creates a new upstream rate fetcher
func NewRateFetcher(cfg config.RatesJobConfig) RateFetcherInterface {
	return &RateFetcher{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		backoffBase: time.Second,
		logger:      slog.Default(),
	}
}

type latestPayload struct {
	Timestamp int64                  `json:"timestamp"`
	Base      string                 `json:"base"`
	Rates     map[string]json.Number `json:"rates"`
}

// FetchLatest performs the upstream GET. A missing app id or a non-429
// client error aborts immediately; timeouts, 5xx and 429 retry with
// 1,2,4,8s backoff up to the configured cap.
func (f *RateFetcher) FetchLatest(ctx context.Context) (*LatestRates, error) {
	if f.cfg.AppID == "" {
		return nil, fmt.Errorf("%w: app id is empty", ErrRatesConfig)
	}

	var lastErr error
	for attempt := 1; attempt <= f.cfg.MaxRetries; attempt++ {
		rates, err := f.fetchOnce(ctx)
		if err == nil {
			return rates, nil
		}
		if errors.Is(err, ErrRatesConfig) {
			return nil, err
		}
		lastErr = err

		f.logger.Warn("rates fetch attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		if attempt < f.cfg.MaxRetries {
			backoff := f.backoffBase * time.Duration(1<<(attempt-1))
			if err := sleepContext(ctx, backoff); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrRatesFetch, lastErr)
}

func (f *RateFetcher) fetchOnce(ctx context.Context) (*LatestRates, error) {
	endpoint, err := url.Parse(f.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base URL: %v", ErrRatesConfig, err)
	}

	query := endpoint.Query()
	query.Set("app_id", f.cfg.AppID)
	query.Set("symbols", strings.Join(f.cfg.Symbols, ","))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		// 4xx other than 429 means bad credentials or parameters; retrying
		// cannot help
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: upstream returned HTTP %d", ErrRatesConfig, resp.StatusCode)
		}
		return nil, fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)
	}

	var payload latestPayload
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates payload: %w", err)
	}

	result := &LatestRates{
		Timestamp: payload.Timestamp,
		Base:      payload.Base,
		Rates:     make(map[string]decimal.Decimal, len(f.cfg.Symbols)),
	}
	if result.Base == "" {
		result.Base = f.cfg.BaseCurrency
	}

	for _, symbol := range f.cfg.Symbols {
		raw, ok := payload.Rates[symbol]
		if !ok {
			return nil, fmt.Errorf("rates payload missing symbol %s", symbol)
		}
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("rates payload has malformed rate for %s: %w", symbol, err)
		}
		result.Rates[symbol] = rate
	}

	return result, nil
}
