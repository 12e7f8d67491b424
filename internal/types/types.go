package types

import "time"

// Action is the recommendation for the held ETF position
type Action string

const (
	ActionHold Action = "HOLD"
	ActionSell Action = "SELL"
)

// Label is a categorical trend produced by scoring one theme
type Label string

const (
	USDStrong  Label = "USD_STRONG"
	USDWeak    Label = "USD_WEAK"
	USDNeutral Label = "USD_NEUTRAL"

	SilverBullish Label = "BULLISH_SILVER"
	SilverBearish Label = "BEARISH_SILVER"
	SilverNeutral Label = "NEUTRAL"
)

// Momentum labels describe the silver price trend over recent closes
const (
	MomentumUp      Label = "UPTREND"
	MomentumDown    Label = "DOWNTREND"
	MomentumFlat    Label = "FLAT"
	MomentumUnknown Label = "UNKNOWN"
)

// Themes a headline feed can be registered under
const (
	ThemeSilver     = "silver"
	ThemeUSD        = "usd"
	ThemeRegulatory = "regulatory"
)

// Headline is one news item as delivered by a feed
type Headline struct {
	Title     string `json:"title"`
	Link      string `json:"link,omitempty"`
	Source    string `json:"source,omitempty"`
	Published string `json:"published,omitempty"`
}

// Quote holds the two numbers the premium is computed from
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	NAV    float64 `json:"nav"`
	Source string  `json:"source"`
}

// Decision is the action chosen by the rule chain and the rule that fired
type Decision struct {
	Action Action `json:"action"`
	Reason string `json:"reason"`
	Rule   string `json:"rule"`
}

// Result is the outcome of one evaluation cycle
type Result struct {
	PremiumPct       float64   `json:"premium_pct"`
	PremiumDirection string    `json:"premium_direction"`
	SilverLabel      Label     `json:"silver_label"`
	SilverScore      int       `json:"silver_score"`
	USDLabel         Label     `json:"usd_label"`
	USDScore         int       `json:"usd_score"`
	WatchSummary     string    `json:"watch_summary"`
	WatchHeadline    *Headline `json:"watch_headline,omitempty"`
	Momentum         Label     `json:"momentum"`
	Action           Action    `json:"action"`
	Reason           string    `json:"reason"`
	Rule             string    `json:"rule"`
	Quote            Quote     `json:"quote"`
	EvaluatedAt      time.Time `json:"evaluated_at"`
}
