package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeedConfig describes one headline source
type FeedConfig struct {
	Name      string        `yaml:"name"`
	Theme     string        `yaml:"theme"` // silver, usd or regulatory
	Kind      string        `yaml:"kind"`  // rss, rss2json or html
	URL       string        `yaml:"url"`
	Limit     int           `yaml:"limit"`
	Optional  bool          `yaml:"optional"`
	Selectors FeedSelectors `yaml:"selectors"`
}

// FeedSelectors are the CSS selectors used by html feeds
type FeedSelectors struct {
	Container string `yaml:"container"`
	Title     string `yaml:"title"`
	Link      string `yaml:"link"`
	Published string `yaml:"published"`
}

// LexiconConfig overrides the built-in word lists of a theme; empty lists keep
// the defaults
type LexiconConfig struct {
	Triggers  []string `yaml:"triggers"`
	Positive  []string `yaml:"positive"`
	Negative  []string `yaml:"negative"`
	Negations []string `yaml:"negations"`
}

type Config struct {
	Symbol string `yaml:"symbol"`
	Price  struct {
		Source         string  `yaml:"source"` // MANUAL or KITE
		Price          float64 `yaml:"price"`
		NAV            float64 `yaml:"nav"`
		AMFIURL        string  `yaml:"amfi_url"`
		AMFISchemeCode string  `yaml:"amfi_scheme_code"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
	} `yaml:"price"`
	Candles struct {
		Enabled         bool   `yaml:"enabled"`
		InstrumentToken int    `yaml:"instrument_token"`
		Interval        string `yaml:"interval"`
		LookbackDays    int    `yaml:"lookback_days"`
	} `yaml:"candles"`
	Momentum struct {
		Fast    int      `yaml:"fast"`
		Slow    int      `yaml:"slow"`
		BandPct *float64 `yaml:"band_pct"` // nil means default; 0 is a valid band
	} `yaml:"momentum"`
	News struct {
		TimeoutSeconds    int          `yaml:"timeout_seconds"`
		CacheTTLMinutes   int          `yaml:"cache_ttl_minutes"`
		RequestsPerSecond float64      `yaml:"requests_per_second"`
		Burst             int          `yaml:"burst"`
		MaxItems          int          `yaml:"max_items"`
		RSS2JSONEndpoint  string       `yaml:"rss2json_endpoint"`
		Feeds             []FeedConfig `yaml:"feeds"`
	} `yaml:"news"`
	Lexicons struct {
		USD    LexiconConfig `yaml:"usd"`
		Silver LexiconConfig `yaml:"silver"`
	} `yaml:"lexicons"`
	Watch struct {
		Theme  string   `yaml:"theme"`
		Policy []string `yaml:"policy"`
		Window int      `yaml:"window"`
	} `yaml:"watch"`
	Schedule struct {
		Cron     string `yaml:"cron"`
		Timezone string `yaml:"timezone"`
	} `yaml:"schedule"`
	Notify struct {
		OnlyOnSell bool `yaml:"only_on_sell"`
		Telegram   struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"telegram"`
		Email struct {
			Enabled bool     `yaml:"enabled"`
			From    string   `yaml:"from"`
			To      []string `yaml:"to"`
			Host    string   `yaml:"host"`
			Port    int      `yaml:"port"`
		} `yaml:"email"`
	} `yaml:"notify"`
	Output struct {
		Format string `yaml:"format"` // text or json
		Color  bool   `yaml:"color"`
	} `yaml:"output"`
}

const (
	PriceSourceManual = "MANUAL"
	PriceSourceKite   = "KITE"

	FeedKindRSS      = "rss"
	FeedKindRSS2JSON = "rss2json"
	FeedKindHTML     = "html"
)

// DefaultFeeds are the three feeds the advisor was first built around
func DefaultFeeds() []FeedConfig {
	return []FeedConfig{
		{Name: "reuters-commodities", Theme: "silver", Kind: FeedKindRSS2JSON, URL: "https://www.reuters.com/markets/commodities/rss"},
		{Name: "reuters-us", Theme: "usd", Kind: FeedKindRSS2JSON, URL: "https://www.reuters.com/markets/us/rss"},
		{Name: "moneycontrol-commodity", Theme: "regulatory", Kind: FeedKindRSS2JSON, URL: "https://www.moneycontrol.com/rss/commodity.xml"},
	}
}

func (c *Config) Validate() error {
	if c.Price.Source != PriceSourceManual && c.Price.Source != PriceSourceKite {
		return fmt.Errorf("invalid price.source '%s': must be 'MANUAL' or 'KITE'", c.Price.Source)
	}
	if c.Price.Source == PriceSourceKite && c.Price.AMFISchemeCode == "" {
		return errors.New("price.amfi_scheme_code is required when price.source is KITE")
	}
	if c.Watch.Window < 0 {
		return fmt.Errorf("watch.window must be >= 0, got %d", c.Watch.Window)
	}
	if c.Momentum.Fast <= 0 || c.Momentum.Slow <= c.Momentum.Fast {
		return fmt.Errorf("momentum windows must satisfy 0 < fast < slow, got fast=%d slow=%d", c.Momentum.Fast, c.Momentum.Slow)
	}
	if c.Momentum.BandPct != nil && *c.Momentum.BandPct < 0 {
		return fmt.Errorf("momentum.band_pct must be >= 0, got %g", *c.Momentum.BandPct)
	}
	if c.Candles.Enabled && c.Candles.InstrumentToken == 0 {
		return errors.New("candles.instrument_token is required when candles are enabled")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be 'text' or 'json', got '%s'", c.Output.Format)
	}
	if c.Notify.Email.Enabled && (c.Notify.Email.Host == "" || len(c.Notify.Email.To) == 0) {
		return errors.New("notify.email requires host and at least one recipient")
	}
	for i, f := range c.News.Feeds {
		if err := f.validate(); err != nil {
			return fmt.Errorf("news.feeds[%d]: %w", i, err)
		}
	}
	return nil
}

func (f FeedConfig) validate() error {
	switch f.Theme {
	case "silver", "usd", "regulatory":
	default:
		return fmt.Errorf("invalid theme '%s': must be 'silver', 'usd' or 'regulatory'", f.Theme)
	}
	if f.URL == "" {
		return errors.New("url cannot be empty")
	}
	switch f.Kind {
	case FeedKindRSS, FeedKindRSS2JSON:
	case FeedKindHTML:
		if f.Selectors.Container == "" || f.Selectors.Title == "" {
			return errors.New("html feeds need selectors.container and selectors.title")
		}
	default:
		return fmt.Errorf("invalid kind '%s': must be 'rss', 'rss2json' or 'html'", f.Kind)
	}
	return nil
}

// LoadConfig reads, defaults and validates a yaml config file
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse builds a config from yaml bytes
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.Symbol == "" {
		c.Symbol = "NSE:SILVERBEES"
	}
	c.Price.Source = strings.ToUpper(c.Price.Source)
	if c.Price.Source == "" {
		c.Price.Source = PriceSourceManual
	}
	if c.Price.AMFIURL == "" {
		c.Price.AMFIURL = "https://www.amfiindia.com/spages/NAVAll.txt"
	}
	if c.Price.TimeoutSeconds == 0 {
		c.Price.TimeoutSeconds = 20
	}
	if c.Candles.Interval == "" {
		c.Candles.Interval = "day"
	}
	if c.Candles.LookbackDays == 0 {
		c.Candles.LookbackDays = 45
	}
	if c.Momentum.Fast == 0 {
		c.Momentum.Fast = 5
	}
	if c.Momentum.Slow == 0 {
		c.Momentum.Slow = 20
	}
	if c.Momentum.BandPct == nil {
		band := 0.5
		c.Momentum.BandPct = &band
	}
	if c.News.TimeoutSeconds == 0 {
		c.News.TimeoutSeconds = 20
	}
	if c.News.CacheTTLMinutes == 0 {
		c.News.CacheTTLMinutes = 15
	}
	if c.News.RequestsPerSecond == 0 {
		c.News.RequestsPerSecond = 1
	}
	if c.News.Burst == 0 {
		c.News.Burst = 2
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 20
	}
	if c.News.RSS2JSONEndpoint == "" {
		c.News.RSS2JSONEndpoint = "https://api.rss2json.com/v1/api.json"
	}
	if len(c.News.Feeds) == 0 {
		c.News.Feeds = DefaultFeeds()
	}
	for i := range c.News.Feeds {
		c.News.Feeds[i].Theme = strings.ToLower(c.News.Feeds[i].Theme)
		c.News.Feeds[i].Kind = strings.ToLower(c.News.Feeds[i].Kind)
		if c.News.Feeds[i].Name == "" {
			c.News.Feeds[i].Name = c.News.Feeds[i].URL
		}
	}
	if c.Watch.Theme == "" {
		c.Watch.Theme = "silver"
	}
	if len(c.Watch.Policy) == 0 {
		c.Watch.Policy = []string{"duty", "mcx", "tax"}
	}
	if c.Watch.Window == 0 {
		c.Watch.Window = 5
	}
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = "*/30 9-15 * * MON-FRI"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "Asia/Kolkata"
	}
	if c.Notify.Email.Port == 0 {
		c.Notify.Email.Port = 587
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}
