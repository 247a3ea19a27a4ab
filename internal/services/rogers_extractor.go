package services

import (
	"strings"

	"ledger-engine/internal/models"

	"github.com/shopspring/decimal"
)

// rogersExtractor handles Rogers Bank credit card CSV exports. The file
// has its own header row; parenthesized amounts are credits (payments,
// refunds) and are skipped.
type rogersExtractor struct{}

func (rogersExtractor) Bank() string { return models.BankRogers }

func (rogersExtractor) HeaderSpec() []string { return nil }

func (rogersExtractor) Extract(row map[string]string) (ExtractedRow, bool) {
	raw := strings.TrimSpace(row["Amount"])
	if raw == "" || isNullishAmount(raw) {
		return ExtractedRow{}, false
	}

	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		return ExtractedRow{}, false
	}

	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	amount, err := decimal.NewFromString(cleaned)
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
		NormDesc: NormalizeDescription(row["Merchant Name"]),
	}, true
}
