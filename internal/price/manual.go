package price

import (
	"context"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/types"
)

const SourceManual = "MANUAL"

// Manual returns a fixed price and NAV supplied by the user
type Manual struct {
	symbol string
	price  float64
	nav    float64
}

var _ interfaces.PriceProvider = (*Manual)(nil)

func NewManual(symbol string, price, nav float64) *Manual {
	return &Manual{symbol: symbol, price: price, nav: nav}
}

// Quote never fails; the premium calculation rejects unusable values
func (m *Manual) Quote(ctx context.Context) (types.Quote, error) {
	return types.Quote{
		Symbol: m.symbol,
		Price:  m.price,
		NAV:    m.nav,
		Source: SourceManual,
	}, nil
}
