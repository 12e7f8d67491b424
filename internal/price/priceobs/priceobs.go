package priceobs

import (
	"context"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/trace"
	"silver-advisor/internal/types"
)

// observablePrices wraps a PriceProvider with logging and tracing
type observablePrices struct {
	prices interfaces.PriceProvider
}

var _ interfaces.PriceProvider = (*observablePrices)(nil)

// Wrap wraps a price provider with observability middleware
func Wrap(prices interfaces.PriceProvider) interfaces.PriceProvider {
	return &observablePrices{prices: prices}
}

func (op *observablePrices) Quote(ctx context.Context) (types.Quote, error) {
	ctx, span := trace.StartSpan(ctx, "price.Quote")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching quote")

	q, err := op.prices.Quote(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch quote", err)
		return types.Quote{}, err
	}

	logger.DebugSkip(ctx, 1, "Quote fetched successfully", "symbol", q.Symbol, "price", q.Price, "nav", q.NAV, "source", q.Source)
	return q, nil
}

// observableCandles wraps a CandleProvider with logging and tracing
type observableCandles struct {
	candles interfaces.CandleProvider
}

var _ interfaces.CandleProvider = (*observableCandles)(nil)

// WrapCandles wraps a candle provider; nil stays nil
func WrapCandles(candles interfaces.CandleProvider) interfaces.CandleProvider {
	if candles == nil {
		return nil
	}
	return &observableCandles{candles: candles}
}

func (oc *observableCandles) Closes(ctx context.Context) ([]float64, error) {
	ctx, span := trace.StartSpan(ctx, "price.Closes")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching closes")

	closes, err := oc.candles.Closes(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch closes", err)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Closes fetched successfully", "count", len(closes))
	return closes, nil
}
