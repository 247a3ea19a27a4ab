package services

import (
	"strings"

	"ledger-engine/internal/models"

	"github.com/shopspring/decimal"
)

// tdExtractor handles TD bank CSV exports. The files carry no header
// row; expenses appear in the Debit column, credits in Credit.
type tdExtractor struct{}

func (tdExtractor) Bank() string { return models.BankTD }

func (tdExtractor) HeaderSpec() []string {
	return []string{"Date", "Transaction Description", "Debit", "Credit", "Balance"}
}

func (tdExtractor) Extract(row map[string]string) (ExtractedRow, bool) {
	raw := strings.TrimSpace(row["Debit"])
	if raw == "" || isNullishAmount(raw) {
		// credit row: income is not categorized
		return ExtractedRow{}, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return ExtractedRow{}, false
	}

	date, ok := parseStatementDate(row["Date"])
	if !ok {
		return ExtractedRow{}, false
	}

	return ExtractedRow{
		Amount:   amount,
		Date:     date,
		NormDesc: NormalizeDescription(row["Transaction Description"]),
	}, true
}
