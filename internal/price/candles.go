package price

import (
	"context"
	"fmt"
	"time"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
)

// KiteCandles reads historical closes of an instrument from Kite
type KiteCandles struct {
	kc           KiteAPI
	token        int
	interval     string
	lookbackDays int
	now          func() time.Time
}

var _ interfaces.CandleProvider = (*KiteCandles)(nil)

func NewKiteCandles(kc KiteAPI, instrumentToken int, interval string, lookbackDays int) *KiteCandles {
	return &KiteCandles{
		kc:           kc,
		token:        instrumentToken,
		interval:     interval,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// Closes returns the closes of the lookback window, oldest first
func (k *KiteCandles) Closes(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	to := k.now()
	from := to.AddDate(0, 0, -k.lookbackDays)

	candles, err := k.kc.GetHistoricalData(k.token, k.interval, from, to, false, false)
	if err != nil {
		return nil, fmt.Errorf("kite historical data %d: %w", k.token, err)
	}

	closes := make([]float64, 0, len(candles))
	for _, c := range candles {
		closes = append(closes, c.Close)
	}

	logger.Debug(ctx, "Candles fetched", "instrument_token", k.token, "interval", k.interval, "count", len(closes))
	return closes, nil
}
