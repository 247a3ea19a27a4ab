package services

import (
	"github.com/shopspring/decimal"
)

var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (dollars) to integer minor
// units (cents) with round-half-up. This is the only place a decimal
// amount crosses into the integer representation.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

// RoundHalfUp rounds a decimal to the nearest integer, ties away from zero
func RoundHalfUp(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}
