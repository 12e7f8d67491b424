package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"silver-advisor/internal/types"
)

func sampleResult() *types.Result {
	return &types.Result{
		PremiumPct:       0.5234,
		PremiumDirection: "Premium",
		SilverLabel:      types.SilverNeutral,
		USDLabel:         types.USDStrong,
		USDScore:         3,
		WatchSummary:     "Neutral",
		Momentum:         types.MomentumFlat,
		Action:           types.ActionSell,
		Reason:           "USD rising strongly",
		Rule:             "usd_strong",
		Quote:            types.Quote{Symbol: "NSE:SILVERBEES", Price: 100.5234, NAV: 100, Source: "MANUAL"},
		EvaluatedAt:      time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestText(t *testing.T) {
	want := `ETF vs NAV: 0.52% (Premium)
Silver Trend: NEUTRAL
USD Trend: USD_STRONG
India News: Neutral
Silver Momentum: FLAT

FINAL ACTION: SELL
REASON: USD rising strongly
`
	if got := Text(sampleResult()); got != want {
		t.Errorf("Unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextDiscount(t *testing.T) {
	res := sampleResult()
	res.PremiumPct = -1.234
	res.PremiumDirection = "Discount"

	if got := Text(res); !strings.HasPrefix(got, "ETF vs NAV: -1.23% (Discount)\n") {
		t.Errorf("Unexpected first line: %q", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), Options{Format: FormatJSON}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if decoded["action"] != "SELL" || decoded["rule"] != "usd_strong" {
		t.Errorf("Unexpected JSON fields: %v", decoded)
	}
	if _, ok := decoded["watch_headline"]; ok {
		t.Error("Expected watch_headline to be omitted when empty")
	}
}

func TestWriteStyledKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), Options{Format: FormatText, Color: true}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"FINAL ACTION:", "SELL", "USD rising strongly", "0.52% (Premium)"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Expected styled report to contain %q", want)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleResult(), Options{Format: "xml"}); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
