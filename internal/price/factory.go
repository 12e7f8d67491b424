package price

import (
	"context"
	"time"

	"silver-advisor/internal/api"
	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/store"
)

const navCacheTTL = time.Hour

// NewFromConfig builds the quote provider and, when candles are enabled, the
// candle provider. The Kite client is only created when one of them needs it.
func NewFromConfig(ctx context.Context, cfg *store.Config, p Params) (interfaces.PriceProvider, interfaces.CandleProvider, error) {
	var kc KiteAPI
	if cfg.Price.Source == store.PriceSourceKite || cfg.Candles.Enabled {
		client, err := NewKiteClient(p)
		if err != nil {
			return nil, nil, err
		}
		kc = client
	}

	var quotes interfaces.PriceProvider
	switch cfg.Price.Source {
	case store.PriceSourceKite:
		httpClient := api.NewClient(api.WithTimeout(time.Duration(cfg.Price.TimeoutSeconds) * time.Second))
		navs := NewAMFI(httpClient, cfg.Price.AMFIURL, cfg.Price.AMFISchemeCode, navCacheTTL)
		quotes = NewKite(kc, cfg.Symbol, navs)
		logger.Info(ctx, "Using live prices from Kite", "symbol", cfg.Symbol, "amfi_scheme_code", cfg.Price.AMFISchemeCode)
	default:
		quotes = NewManual(cfg.Symbol, cfg.Price.Price, cfg.Price.NAV)
		logger.Info(ctx, "Using manual price and NAV", "symbol", cfg.Symbol, "price", cfg.Price.Price, "nav", cfg.Price.NAV)
	}

	var candles interfaces.CandleProvider
	if cfg.Candles.Enabled {
		candles = NewKiteCandles(kc, cfg.Candles.InstrumentToken, cfg.Candles.Interval, cfg.Candles.LookbackDays)
	}
	return quotes, candles, nil
}
