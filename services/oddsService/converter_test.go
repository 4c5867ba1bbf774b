package oddsService

import (
	"errors"
	"math"
	"testing"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestAmericanToDecimal(t *testing.T) {
	cases := []struct {
		name     string
		american int
		expected float64
	}{
		{"Underdog +150", 150, 2.5},
		{"Even +100", 100, 2.0},
		{"Heavy underdog +550", 550, 6.5},
		{"Even -100", -100, 2.0},
		{"Favorite -110", -110, 1 + 100.0/110.0},
		{"Favorite -120", -120, 1 + 100.0/120.0},
		{"Heavy favorite -450", -450, 1 + 100.0/450.0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := AmericanToDecimal(tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(dec-tt.expected) > 1e-9 {
				t.Errorf("expected %.10f, got %.10f", tt.expected, dec)
			}
		})
	}
}

func TestAmericanToDecimal_ZeroOdds(t *testing.T) {
	_, err := AmericanToDecimal(0)
	if !errors.Is(err, ErrInvalidOdds) {
		t.Errorf("expected ErrInvalidOdds, got %v", err)
	}
}

func TestDecimalToAmerican(t *testing.T) {
	cases := []struct {
		name     string
		decimal  float64
		expected int
	}{
		{"Underdog form 2.5", 2.5, 150},
		{"Even money 2.0", 2.0, 100},
		{"Favorite form 1.5", 1.5, -200},
		{"Favorite form from -110", 1 + 100.0/110.0, -110},
		{"Long shot 6.5", 6.5, 550},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			american, err := DecimalToAmerican(tt.decimal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(t, tt.expected, american, tt.name)
		})
	}
}

func TestDecimalToAmerican_NonPhysical(t *testing.T) {
	for _, dec := range []float64{1.0, 0.5, 0, -2} {
		_, err := DecimalToAmerican(dec)
		if !errors.Is(err, ErrInvalidOdds) {
			t.Errorf("decimal %.2f: expected ErrInvalidOdds, got %v", dec, err)
		}
	}
}

// Round trip over the full canonical American range: converting to decimal and
// back reproduces the original odds within integer rounding tolerance. The
// negative leg starts at -101: even money is the one price with two American
// spellings (+100 and -100 both mean decimal 2.0), and conversion back always
// lands on +100.
func TestRoundTrip(t *testing.T) {
	for o := 100; o <= 5000; o++ {
		for _, american := range []int{o, -o} {
			if american == -100 {
				continue
			}
			dec, err := AmericanToDecimal(american)
			if err != nil {
				t.Fatalf("odds %d: unexpected error: %v", american, err)
			}
			back, err := DecimalToAmerican(dec)
			if err != nil {
				t.Fatalf("odds %d: unexpected error: %v", american, err)
			}
			if diff := back - american; diff < -1 || diff > 1 {
				t.Fatalf("odds %d round-tripped to %d", american, back)
			}
		}
	}
}

// Both American spellings of even money collapse to decimal 2.0, which
// converts back to the positive form.
func TestRoundTrip_EvenMoneySignFold(t *testing.T) {
	for _, american := range []int{100, -100} {
		dec, err := AmericanToDecimal(american)
		if err != nil {
			t.Fatalf("odds %d: unexpected error: %v", american, err)
		}
		assertEqual(t, 2.0, dec, "even money decimal")

		back, err := DecimalToAmerican(dec)
		if err != nil {
			t.Fatalf("odds %d: unexpected error: %v", american, err)
		}
		assertEqual(t, 100, back, "even money American form")
	}
}
