package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		expected int64
	}{
		{"whole dollars", "12.00", 1200},
		{"cents preserved", "12.34", 1234},
		{"half rounds up", "12.345", 1235},
		{"below half rounds down", "12.344", 1234},
		{"negative half rounds away from zero", "-12.345", -1235},
		{"zero", "0", 0},
		{"sub-cent amount", "0.004", 0},
		{"sub-cent half", "0.005", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.expected, ToMinorUnits(amount))
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		expected int64
	}{
		{"exact integer", "720", 720},
		{"half up", "10.5", 11},
		{"just below half", "10.49", 10},
		{"negative half away from zero", "-10.5", -11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.expected, RoundHalfUp(amount))
		})
	}
}
