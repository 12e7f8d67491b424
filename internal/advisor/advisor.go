package advisor

import (
	"context"
	"fmt"
	"time"

	"silver-advisor/internal/decision"
	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/momentum"
	"silver-advisor/internal/signal"
	"silver-advisor/internal/store"
	"silver-advisor/internal/types"
)

const (
	WatchNeutral = "Neutral"
	WatchPolicy  = "Watch India policy"
)

// Config holds the word lists and windows one evaluation runs with
type Config struct {
	Symbol   string
	USD      signal.Lexicon
	Silver   signal.Lexicon
	Watch    signal.WatchRule
	Momentum momentum.Config
}

func DefaultConfig() Config {
	return Config{
		Symbol:   "NSE:SILVERBEES",
		USD:      signal.USDLexicon(),
		Silver:   signal.SilverLexicon(),
		Watch:    signal.DefaultWatchRule(),
		Momentum: momentum.DefaultConfig(),
	}
}

// ConfigFromStore applies the lexicon, watch and momentum sections of the
// config on top of the built-in defaults
func ConfigFromStore(cfg *store.Config) Config {
	c := DefaultConfig()
	c.Symbol = cfg.Symbol

	u := cfg.Lexicons.USD
	c.USD = c.USD.WithWords(u.Triggers, u.Positive, u.Negative, u.Negations)
	s := cfg.Lexicons.Silver
	c.Silver = c.Silver.WithWords(s.Triggers, s.Positive, s.Negative, s.Negations)

	c.Watch = signal.WatchRule{
		Theme:  cfg.Watch.Theme,
		Policy: append([]string(nil), cfg.Watch.Policy...),
		Window: cfg.Watch.Window,
	}
	c.Momentum = momentum.Config{
		Fast:    cfg.Momentum.Fast,
		Slow:    cfg.Momentum.Slow,
		BandPct: momentum.DefaultConfig().BandPct,
	}
	if cfg.Momentum.BandPct != nil {
		c.Momentum.BandPct = *cfg.Momentum.BandPct
	}
	return c
}

// Advisor runs one evaluation cycle over its input providers
type Advisor struct {
	cfg       Config
	headlines interfaces.HeadlineProvider
	prices    interfaces.PriceProvider
	candles   interfaces.CandleProvider
	resolver  *decision.Resolver
	now       func() time.Time
}

var _ interfaces.Advisor = (*Advisor)(nil)

// New builds an advisor. candles may be nil, in which case momentum is UNKNOWN.
func New(cfg Config, headlines interfaces.HeadlineProvider, prices interfaces.PriceProvider, candles interfaces.CandleProvider) *Advisor {
	return &Advisor{
		cfg:       cfg,
		headlines: headlines,
		prices:    prices,
		candles:   candles,
		resolver:  decision.NewResolver(),
		now:       time.Now,
	}
}

func (a *Advisor) Evaluate(ctx context.Context) (*types.Result, error) {
	quote, err := a.prices.Quote(ctx)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	premium, err := decision.Premium(quote.Price, quote.NAV)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "Premium calculated", "symbol", quote.Symbol, "price", quote.Price, "nav", quote.NAV, "premium_pct", premium)

	silverNews, err := a.headlines.Headlines(ctx, types.ThemeSilver)
	if err != nil {
		return nil, fmt.Errorf("silver headlines: %w", err)
	}
	usdNews, err := a.headlines.Headlines(ctx, types.ThemeUSD)
	if err != nil {
		return nil, fmt.Errorf("usd headlines: %w", err)
	}
	policyNews, err := a.headlines.Headlines(ctx, types.ThemeRegulatory)
	if err != nil {
		return nil, fmt.Errorf("regulatory headlines: %w", err)
	}

	silverLabel, silverScore, err := signal.Classify(silverNews, a.cfg.Silver)
	if err != nil {
		return nil, err
	}
	logger.Signal(ctx, types.ThemeSilver, string(silverLabel), silverScore, len(silverNews))

	usdLabel, usdScore, err := signal.Classify(usdNews, a.cfg.USD)
	if err != nil {
		return nil, err
	}
	logger.Signal(ctx, types.ThemeUSD, string(usdLabel), usdScore, len(usdNews))

	watch, err := signal.Watch(policyNews, a.cfg.Watch)
	if err != nil {
		return nil, fmt.Errorf("regulatory watch: %w", err)
	}

	trend := momentum.Evaluate(ctx, a.candles, a.cfg.Momentum)

	d := a.resolver.Decide(decision.Inputs{
		Premium: premium,
		Silver:  silverLabel,
		USD:     usdLabel,
		Watch:   watch,
	})

	symbol := quote.Symbol
	if symbol == "" {
		symbol = a.cfg.Symbol
	}
	logger.Decision(ctx, symbol, string(d.Action), d.Rule, d.Reason,
		"premium_pct", premium,
		"silver", string(silverLabel),
		"usd", string(usdLabel),
		"momentum", string(trend))

	summary := WatchNeutral
	if watch != nil {
		summary = WatchPolicy
	}

	return &types.Result{
		PremiumPct:       premium,
		PremiumDirection: decision.Direction(premium),
		SilverLabel:      silverLabel,
		SilverScore:      silverScore,
		USDLabel:         usdLabel,
		USDScore:         usdScore,
		WatchSummary:     summary,
		WatchHeadline:    watch,
		Momentum:         trend,
		Action:           d.Action,
		Reason:           d.Reason,
		Rule:             d.Rule,
		Quote:            quote,
		EvaluatedAt:      a.now(),
	}, nil
}
