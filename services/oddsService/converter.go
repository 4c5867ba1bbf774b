package oddsService

import (
	"errors"
	"math"
)

// ErrInvalidOdds is returned for zero American odds, or for a decimal
// multiplier at or below 1 (a multiplier must return more than the stake).
var ErrInvalidOdds = errors.New("invalid odds")

// AmericanToDecimal converts signed American odds to a decimal multiplier
// (stake included). +150 -> 2.5, -120 -> 1.8333...
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, ErrInvalidOdds
	}
	if american > 0 {
		return 1 + float64(american)/100.0, nil
	}
	return 1 + 100.0/math.Abs(float64(american)), nil
}

// DecimalToAmerican converts a decimal multiplier back to American odds.
// Profit of a unit stake >= 1 gives the positive underdog form, otherwise the
// negative favorite form. Rounds half away from zero.
func DecimalToAmerican(decimalOdds float64) (int, error) {
	profitPerUnit := decimalOdds - 1
	if profitPerUnit <= 0 {
		return 0, ErrInvalidOdds
	}
	if profitPerUnit >= 1 {
		return int(math.Round(profitPerUnit * 100)), nil
	}
	return int(math.Round(-100 / profitPerUnit)), nil
}
