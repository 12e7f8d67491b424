package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("price:\n  price: 80.5\n  nav: 80\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Symbol != "NSE:SILVERBEES" {
		t.Errorf("Expected default symbol, got %s", cfg.Symbol)
	}
	if cfg.Price.Source != PriceSourceManual {
		t.Errorf("Expected MANUAL price source, got %s", cfg.Price.Source)
	}
	if cfg.Watch.Window != 5 {
		t.Errorf("Expected watch window 5, got %d", cfg.Watch.Window)
	}
	if len(cfg.Watch.Policy) != 3 {
		t.Errorf("Expected 3 policy words, got %v", cfg.Watch.Policy)
	}
	if len(cfg.News.Feeds) != 3 {
		t.Errorf("Expected default feeds, got %d", len(cfg.News.Feeds))
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected text output, got %s", cfg.Output.Format)
	}
	if cfg.Momentum.Fast != 5 || cfg.Momentum.Slow != 20 {
		t.Errorf("Expected 5/20 momentum windows, got %d/%d", cfg.Momentum.Fast, cfg.Momentum.Slow)
	}
}

func TestMomentumBandPct(t *testing.T) {
	cfg, err := Parse([]byte("momentum:\n  band_pct: 0\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Momentum.BandPct == nil || *cfg.Momentum.BandPct != 0 {
		t.Errorf("Expected explicit band_pct 0 to be kept, got %v", cfg.Momentum.BandPct)
	}

	cfg, err = Parse([]byte("momentum:\n  fast: 3\n  slow: 9\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Momentum.BandPct == nil || *cfg.Momentum.BandPct != 0.5 {
		t.Errorf("Expected default band_pct 0.5, got %v", cfg.Momentum.BandPct)
	}
}

func TestParseFeedsAndLexicons(t *testing.T) {
	raw := `
price:
  source: kite
  amfi_scheme_code: "149758"
news:
  feeds:
    - name: kitco
      theme: SILVER
      kind: RSS
      url: https://example.com/silver.xml
    - theme: regulatory
      kind: html
      url: https://example.com/policy
      selectors:
        container: li.news
        title: h2 a
lexicons:
  usd:
    triggers: [fomc]
`
	cfg, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Price.Source != PriceSourceKite {
		t.Errorf("Expected KITE source, got %s", cfg.Price.Source)
	}
	if len(cfg.News.Feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got %d", len(cfg.News.Feeds))
	}
	if cfg.News.Feeds[0].Theme != "silver" || cfg.News.Feeds[0].Kind != FeedKindRSS {
		t.Errorf("Expected normalized theme/kind, got %s/%s", cfg.News.Feeds[0].Theme, cfg.News.Feeds[0].Kind)
	}
	if cfg.News.Feeds[1].Name != "https://example.com/policy" {
		t.Errorf("Expected feed name to default to URL, got %s", cfg.News.Feeds[1].Name)
	}
	if len(cfg.Lexicons.USD.Triggers) != 1 || cfg.Lexicons.USD.Triggers[0] != "fomc" {
		t.Errorf("Expected usd trigger override, got %v", cfg.Lexicons.USD.Triggers)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bad price source", "price:\n  source: yahoo\n", "price.source"},
		{"kite without scheme", "price:\n  source: KITE\n", "amfi_scheme_code"},
		{"bad output", "output:\n  format: xml\n", "output.format"},
		{"bad momentum", "momentum:\n  fast: 10\n  slow: 5\n", "momentum"},
		{"negative band", "momentum:\n  band_pct: -1\n", "band_pct"},
		{"candles without token", "candles:\n  enabled: true\n", "instrument_token"},
		{"bad theme", "news:\n  feeds:\n    - {theme: gold, kind: rss, url: \"http://x\"}\n", "invalid theme"},
		{"bad kind", "news:\n  feeds:\n    - {theme: usd, kind: atom, url: \"http://x\"}\n", "invalid kind"},
		{"missing url", "news:\n  feeds:\n    - {theme: usd, kind: rss}\n", "url cannot be empty"},
		{"html without selectors", "news:\n  feeds:\n    - {theme: usd, kind: html, url: \"http://x\"}\n", "selectors"},
		{"email without host", "notify:\n  email:\n    enabled: true\n", "notify.email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("symbol: NSE:SILVERIETF\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Symbol != "NSE:SILVERIETF" {
		t.Errorf("Expected symbol from file, got %s", cfg.Symbol)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}
