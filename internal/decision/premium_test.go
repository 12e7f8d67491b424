package decision

import (
	"errors"
	"math"
	"testing"
)

func TestPremium(t *testing.T) {
	tests := []struct {
		price, nav float64
		want       float64
	}{
		{101, 100, 1},
		{99.5, 100, -0.5},
		{100, 100, 0},
		{75.6, 75, 0.8},
	}

	for _, tt := range tests {
		got, err := Premium(tt.price, tt.nav)
		if err != nil {
			t.Fatalf("Premium(%v, %v): unexpected error %v", tt.price, tt.nav, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Premium(%v, %v): expected %v, got %v", tt.price, tt.nav, tt.want, got)
		}
	}
}

func TestPremiumInvalidNAV(t *testing.T) {
	for _, nav := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := Premium(100, nav)
		if !errors.Is(err, ErrInvalidNAV) {
			t.Errorf("nav %v: expected ErrInvalidNAV, got %v", nav, err)
		}
	}
}

func TestPremiumInvalidPrice(t *testing.T) {
	for _, price := range []float64{-1, math.NaN(), math.Inf(-1)} {
		_, err := Premium(price, 100)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("price %v: expected ErrInvalidPrice, got %v", price, err)
		}
	}
}

func TestDirection(t *testing.T) {
	if got := Direction(0.3); got != "Premium" {
		t.Errorf("Expected Premium, got %s", got)
	}
	if got := Direction(0); got != "Premium" {
		t.Errorf("Expected zero to render as Premium, got %s", got)
	}
	if got := Direction(-0.3); got != "Discount" {
		t.Errorf("Expected Discount, got %s", got)
	}
}
