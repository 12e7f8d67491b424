package momentum

import (
	"context"
	"errors"
	"math"
	"testing"

	"silver-advisor/internal/types"
)

type closesFunc func(ctx context.Context) ([]float64, error)

func (f closesFunc) Closes(ctx context.Context) ([]float64, error) { return f(ctx) }

func series(n int, f func(i int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

func TestSMA(t *testing.T) {
	if got := SMA([]float64{1, 2, 3, 4}, 2); got != 3.5 {
		t.Errorf("Expected 3.5, got %v", got)
	}
	if got := SMA([]float64{1, 2}, 3); !math.IsNaN(got) {
		t.Errorf("Expected NaN for short input, got %v", got)
	}
	if got := SMA([]float64{1, 2}, 0); !math.IsNaN(got) {
		t.Errorf("Expected NaN for zero window, got %v", got)
	}
}

func TestLabel(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		closes []float64
		want   types.Label
	}{
		{"rising", series(20, func(i int) float64 { return 100 + float64(i) }), types.MomentumUp},
		{"falling", series(20, func(i int) float64 { return 100 - float64(i) }), types.MomentumDown},
		{"flat", series(20, func(i int) float64 { return 100 }), types.MomentumFlat},
		{"inside band", series(20, func(i int) float64 { return 100 + 0.01*float64(i) }), types.MomentumFlat},
		{"too few closes", series(19, func(i int) float64 { return 100 + float64(i) }), types.MomentumUnknown},
		{"no closes", nil, types.MomentumUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.closes, cfg); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()

	if got := Evaluate(ctx, nil, cfg); got != types.MomentumUnknown {
		t.Errorf("Expected UNKNOWN without provider, got %s", got)
	}

	failing := closesFunc(func(ctx context.Context) ([]float64, error) { return nil, errors.New("kite down") })
	if got := Evaluate(ctx, failing, cfg); got != types.MomentumUnknown {
		t.Errorf("Expected UNKNOWN on provider error, got %s", got)
	}

	rising := closesFunc(func(ctx context.Context) ([]float64, error) {
		return series(30, func(i int) float64 { return 50 + float64(i) }), nil
	})
	if got := Evaluate(ctx, rising, cfg); got != types.MomentumUp {
		t.Errorf("Expected UPTREND, got %s", got)
	}
}
