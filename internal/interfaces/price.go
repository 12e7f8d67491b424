package interfaces

import (
	"context"

	"silver-advisor/internal/types"
)

// PriceProvider supplies the current ETF trade price and NAV
type PriceProvider interface {
	Quote(ctx context.Context) (types.Quote, error)
}

// CandleProvider supplies recent silver closes, oldest first
type CandleProvider interface {
	Closes(ctx context.Context) ([]float64, error)
}
