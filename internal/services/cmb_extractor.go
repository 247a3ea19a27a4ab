package services

import (
	"strings"

	"ledger-engine/internal/models"

	"github.com/shopspring/decimal"
)

// cmbExtractor handles CMB (China Merchants Bank) CSV exports. The file
// has its own header row and uses the opposite sign convention to ours:
// negative means money out. The sign is inverted so that positive means
// expense; resulting non-positive amounts (income) are dropped later by
// the parser.
type cmbExtractor struct{}

func (cmbExtractor) Bank() string { return models.BankCMB }

func (cmbExtractor) HeaderSpec() []string { return nil }

func (cmbExtractor) Extract(row map[string]string) (ExtractedRow, bool) {
	raw := firstNonEmpty(row, "Amount", "Transaction Amount")
	if raw == "" || isNullishAmount(raw) {
		return ExtractedRow{}, false
	}

	cleaned := strings.NewReplacer(",", "", "¥", "", "￥", "", "$", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)

	// (123.45) -> -123.45
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return ExtractedRow{}, false
	}

	date, ok := parseStatementDate(row["Date"])
	if !ok {
		return ExtractedRow{}, false
	}

	txType := firstNonEmpty(row, "Type", "Transaction Type")
	counterparty := strings.TrimSpace(row["Counterparty"])
	combined := strings.TrimSpace(txType + " " + counterparty)

	return ExtractedRow{
		Amount:   amount.Neg(),
		Date:     date,
		NormDesc: NormalizeDescription(combined),
	}, true
}
