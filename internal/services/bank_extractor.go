package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownBank is a configuration error: the statement names a bank
	// no extractor has been registered for.
	ErrUnknownBank = errors.New("no extractor registered for bank")
)

// ExtractedRow is the canonical output of a bank row extractor. Amount is
// in major units with the expense-positive sign convention already applied.
type ExtractedRow struct {
	Amount   decimal.Decimal
	Date     time.Time
	NormDesc string
}

// BankRowExtractor turns one bank-specific CSV row into canonical fields.
// The second return value is false when the row should be skipped
// (malformed amount, unparseable date, credit under that bank's
// conventions).
type BankRowExtractor interface {
	Bank() string
	// HeaderSpec returns fixed column names for files exported without a
	// header row; nil means the file carries its own header.
	HeaderSpec() []string
	Extract(row map[string]string) (ExtractedRow, bool)
}

// ExtractorRegistry maps bank identifiers to extractor instances
type ExtractorRegistry struct {
	extractors map[string]BankRowExtractor
}

// NewExtractorRegistry returns a registry with all supported banks
func NewExtractorRegistry() *ExtractorRegistry {
	r := &ExtractorRegistry{extractors: make(map[string]BankRowExtractor)}
	r.register(tdExtractor{})
	r.register(rogersExtractor{})
	r.register(cmbExtractor{})
	return r
}

func (r *ExtractorRegistry) register(e BankRowExtractor) {
	key := strings.ToUpper(e.Bank())
	if _, ok := r.extractors[key]; ok {
		panic("duplicate extractor for bank: " + key)
	}
	r.extractors[key] = e
}

// ExtractorFor looks up the extractor for a bank identifier,
// case-insensitively
func (r *ExtractorRegistry) ExtractorFor(bank string) (BankRowExtractor, error) {
	e, ok := r.extractors[strings.ToUpper(bank)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}
	return e, nil
}

// SupportedBanks lists the registered bank identifiers
func (r *ExtractorRegistry) SupportedBanks() []string {
	banks := make([]string, 0, len(r.extractors))
	for key := range r.extractors {
		banks = append(banks, key)
	}
	return banks
}

var statementDateFormats = []string{"01/02/2006", "2006-01-02"}

// parseStatementDate tries the known statement date formats in order
func parseStatementDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, format := range statementDateFormats {
		if d, err := time.Parse(format, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// firstNonEmpty returns the first non-empty value among the named columns
func firstNonEmpty(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	return ""
}

var nullishAmounts = map[string]struct{}{
	"nan": {}, "none": {}, "null": {}, "n/a": {}, "-": {}, "--": {},
}

func isNullishAmount(raw string) bool {
	_, ok := nullishAmounts[strings.ToLower(raw)]
	return ok
}
