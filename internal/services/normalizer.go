package services

import (
	"regexp"
	"strings"
)

// transferMarkers short-circuit normalization: rows carrying one of these
// exact markers are all the same kind of transfer regardless of the rest
// of the text.
var transferMarkers = []string{"TFR-TO C/C", "SEND E-TFR"}

var (
	spaceRun       = regexp.MustCompile(`\s+`)
	refNumber      = regexp.MustCompile(`\s*#\d+\b`)
	slashSuffix    = regexp.MustCompile(`/[A-Za-z0-9]+$`)
	starSuffix     = regexp.MustCompile(`\*[A-Za-z0-9]+$`)
	maskedCardTail = regexp.MustCompile(`\*{2,}\d+$`)
	maskedRun      = regexp.MustCompile(`\*{2,}`)
	starDigits     = regexp.MustCompile(`\*\d+$`)
	trailingDigits = regexp.MustCompile(`\s+\d+$`)
	networkSuffix  = regexp.MustCompile(`(?i)\s*_(V|M|MC|AX|AMEX|DS|DISC|P|I|WD|DEP|TFR|BP|INT)$`)
	checksumToken  = regexp.MustCompile(`\b(?:[A-Za-z][0-9]){3,}[A-Za-z]?\b|\b(?:[0-9][A-Za-z]){3,}[0-9]?\b`)
)

// NormalizeDescription strips per-transaction noise (reference numbers,
// masked card digits, auth codes, network suffixes) so that the same
// merchant always produces the same rule-cache key. Pure and idempotent.
func NormalizeDescription(raw string) string {
	text := strings.ToUpper(strings.TrimSpace(raw))

	for _, marker := range transferMarkers {
		if strings.Contains(text, marker) {
			return marker
		}
	}

	// One strip can expose another strippable tail: '_V_MC' sheds one
	// network suffix per pass, and removing a checksum token leaves a
	// double space. Rerun the pass until the text stops changing so the
	// result is a fixed point.
	for {
		stripped := stripNoise(text)
		if stripped == text {
			return text
		}
		text = stripped
	}
}

func stripNoise(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")

	// ' #1234' reference numbers, anywhere in the text
	text = refNumber.ReplaceAllString(text, "")

	// '/G3ZGWU' and '*NI3HV3DJ1' style auth-code suffixes: stripped only
	// when the suffix mixes letters and digits
	text = stripMixedSuffix(text, slashSuffix)
	text = stripMixedSuffix(text, starSuffix)

	// '******1234' masked card numbers
	text = maskedCardTail.ReplaceAllString(text, "")
	text = maskedRun.ReplaceAllString(text, "")

	// 'UPS*123456' style trailing digit tokens
	text = starDigits.ReplaceAllString(text, "")
	text = trailingDigits.ReplaceAllString(text, "")

	// '_V', '_MC', '_AMEX' network/channel suffixes
	text = networkSuffix.ReplaceAllString(text, "")

	// checksum-like alternating letter/digit tokens, e.g. 'A1B2C3'
	text = checksumToken.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// stripMixedSuffix removes a trailing token matched by re when the token
// body contains both letters and digits (masked authorization codes).
func stripMixedSuffix(text string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}

	body := text[loc[0]+1:]
	if hasLetter(body) && hasDigit(body) {
		return text[:loc[0]]
	}
	return text
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
