package oddsService

import (
	"github.com/shopspring/decimal"
)

// CombinedDecimalOdds multiplies the decimal multiplier of each leg, in leg
// order. Returns false for an empty list or any zero leg; a slip that is still
// being built legitimately has nothing to show yet.
func CombinedDecimalOdds(oddsList []int) (float64, bool) {
	if len(oddsList) == 0 {
		return 0, false
	}

	product := 1.0
	for _, odds := range oddsList {
		dec, err := AmericanToDecimal(odds)
		if err != nil {
			return 0, false
		}
		product *= dec
	}
	return product, true
}

// CombinedAmericanOdds is the American form of CombinedDecimalOdds.
func CombinedAmericanOdds(oddsList []int) (int, bool) {
	dec, ok := CombinedDecimalOdds(oddsList)
	if !ok {
		return 0, false
	}
	american, err := DecimalToAmerican(dec)
	if err != nil {
		return 0, false
	}
	return american, true
}

// PotentialProfit is stake * (combined multiplier - 1). Returns false when the
// stake is absent or the combined odds are unavailable. The stake never enters
// float arithmetic; only the multiplier does.
func PotentialProfit(oddsList []int, stake decimal.NullDecimal) (decimal.Decimal, bool) {
	if !stake.Valid {
		return decimal.Zero, false
	}
	combined, ok := CombinedDecimalOdds(oddsList)
	if !ok {
		return decimal.Zero, false
	}
	return stake.Decimal.Mul(decimal.NewFromFloat(combined - 1)), true
}
