package momentum

import (
	"context"
	"math"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/types"
)

// Config sets the two SMA windows and the dead band, in percent, inside which
// the trend is FLAT
type Config struct {
	Fast    int
	Slow    int
	BandPct float64
}

func DefaultConfig() Config {
	return Config{Fast: 5, Slow: 20, BandPct: 0.5}
}

// SMA is the simple moving average of the last n values; NaN when there are
// fewer than n
func SMA(vals []float64, n int) float64 {
	if n <= 0 || len(vals) < n {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals[len(vals)-n:] {
		sum += v
	}
	return sum / float64(n)
}

// Label compares the fast and slow SMA of closes, oldest first
func Label(closes []float64, cfg Config) types.Label {
	fast := SMA(closes, cfg.Fast)
	slow := SMA(closes, cfg.Slow)
	if math.IsNaN(fast) || math.IsNaN(slow) || slow <= 0 {
		return types.MomentumUnknown
	}

	band := cfg.BandPct / 100
	switch {
	case fast > slow*(1+band):
		return types.MomentumUp
	case fast < slow*(1-band):
		return types.MomentumDown
	default:
		return types.MomentumFlat
	}
}

// Evaluate labels the closes from provider. Momentum only corroborates the
// decision, so failures are logged and reported as UNKNOWN.
func Evaluate(ctx context.Context, provider interfaces.CandleProvider, cfg Config) types.Label {
	if provider == nil {
		return types.MomentumUnknown
	}

	closes, err := provider.Closes(ctx)
	if err != nil {
		logger.Warn(ctx, "Momentum unavailable", "error", err)
		return types.MomentumUnknown
	}

	label := Label(closes, cfg)
	logger.Debug(ctx, "Momentum evaluated",
		"closes", len(closes),
		"fast", SMA(closes, cfg.Fast),
		"slow", SMA(closes, cfg.Slow),
		"label", string(label))
	return label
}
