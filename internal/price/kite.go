package price

import (
	"context"
	"errors"
	"fmt"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/types"
)

const SourceKite = "KITE"

// ErrMissingCredentials is returned when live prices are requested without
// Kite credentials
var ErrMissingCredentials = errors.New("missing KITE_API_KEY/KITE_ACCESS_TOKEN")

// ErrNoQuote is returned when Kite has no LTP for the symbol
var ErrNoQuote = errors.New("no quote for symbol")

// KiteAPI is the subset of the Kite Connect client used here
type KiteAPI interface {
	GetLTP(instruments ...string) (kiteconnect.QuoteLTP, error)
	GetHistoricalData(instrumentToken int, interval string, fromDate, toDate time.Time, continuous, oi bool) ([]kiteconnect.HistoricalData, error)
}

type Params struct {
	APIKey      string
	AccessToken string
}

// NewKiteClient returns an authenticated Kite Connect client
func NewKiteClient(p Params) (*kiteconnect.Client, error) {
	if p.APIKey == "" || p.AccessToken == "" {
		return nil, ErrMissingCredentials
	}
	kc := kiteconnect.New(p.APIKey)
	kc.SetAccessToken(p.AccessToken)
	return kc, nil
}

// NAVSource supplies the latest published NAV of the fund
type NAVSource interface {
	NAV(ctx context.Context) (float64, error)
}

// Kite quotes the ETF's last traded price from Kite and its NAV from navs
type Kite struct {
	kc     KiteAPI
	symbol string
	navs   NAVSource
}

var _ interfaces.PriceProvider = (*Kite)(nil)

func NewKite(kc KiteAPI, symbol string, navs NAVSource) *Kite {
	return &Kite{kc: kc, symbol: symbol, navs: navs}
}

func (k *Kite) Quote(ctx context.Context) (types.Quote, error) {
	if err := ctx.Err(); err != nil {
		return types.Quote{}, err
	}

	ltp, err := k.kc.GetLTP(k.symbol)
	if err != nil {
		return types.Quote{}, fmt.Errorf("kite ltp %s: %w", k.symbol, err)
	}
	q, ok := ltp[k.symbol]
	if !ok {
		return types.Quote{}, fmt.Errorf("%w: %s", ErrNoQuote, k.symbol)
	}
	logger.Debug(ctx, "Fetched LTP", "symbol", k.symbol, "price", q.LastPrice)

	nav, err := k.navs.NAV(ctx)
	if err != nil {
		return types.Quote{}, fmt.Errorf("nav %s: %w", k.symbol, err)
	}

	return types.Quote{
		Symbol: k.symbol,
		Price:  q.LastPrice,
		NAV:    nav,
		Source: SourceKite,
	}, nil
}
