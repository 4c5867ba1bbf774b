package oddsService

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCombinedDecimalOdds(t *testing.T) {
	tests := []struct {
		name     string
		oddsList []int
		expected float64
		ok       bool
	}{
		{
			name:     "Two legs -110 and +150",
			oddsList: []int{-110, 150},
			expected: (1 + 100.0/110.0) * 2.5,
			ok:       true,
		},
		{
			name:     "Single leg works for live preview",
			oddsList: []int{-110},
			expected: 1 + 100.0/110.0,
			ok:       true,
		},
		{
			name:     "Three legs",
			oddsList: []int{100, 100, 100},
			expected: 8.0,
			ok:       true,
		},
		{
			name:     "Empty slip has nothing to show",
			oddsList: nil,
			ok:       false,
		},
		{
			name:     "Zero odds leg invalidates the slip",
			oddsList: []int{-110, 0, 150},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined, ok := CombinedDecimalOdds(tt.oddsList)
			assertEqual(t, tt.ok, ok, tt.name)
			if ok && math.Abs(combined-tt.expected) > 1e-9 {
				t.Errorf("expected %.10f, got %.10f", tt.expected, combined)
			}
		})
	}
}

func TestCombinedAmericanOdds(t *testing.T) {
	// (1 + 100/110) * 2.5 = 4.7727..., profit 3.7727 -> +377
	american, ok := CombinedAmericanOdds([]int{-110, 150})
	assertEqual(t, true, ok, "two valid legs")
	assertEqual(t, 377, american, "combined American odds")

	_, ok = CombinedAmericanOdds(nil)
	assertEqual(t, false, ok, "empty slip")

	_, ok = CombinedAmericanOdds([]int{0})
	assertEqual(t, false, ok, "zero odds leg")
}

func TestPotentialProfit(t *testing.T) {
	stake := decimal.NewNullDecimal(decimal.NewFromInt(25))

	profit, ok := PotentialProfit([]int{-110, 150}, stake)
	assertEqual(t, true, ok, "stake and legs present")
	assertEqual(t, "94.32", profit.StringFixed(2), "$25 at 4.7727x")

	_, ok = PotentialProfit([]int{-110, 150}, decimal.NullDecimal{})
	assertEqual(t, false, ok, "absent stake")

	_, ok = PotentialProfit(nil, stake)
	assertEqual(t, false, ok, "no legs")

	_, ok = PotentialProfit([]int{0}, stake)
	assertEqual(t, false, ok, "invalid leg")
}

// Leg order must not change the product.
func TestCombinedDecimalOdds_OrderIndependent(t *testing.T) {
	forward, ok1 := CombinedDecimalOdds([]int{-110, 150, 225, -340})
	backward, ok2 := CombinedDecimalOdds([]int{-340, 225, 150, -110})
	assertEqual(t, true, ok1, "forward")
	assertEqual(t, true, ok2, "backward")
	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("order changed the product: %.10f vs %.10f", forward, backward)
	}
}
