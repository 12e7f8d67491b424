package signal

import (
	"errors"
	"testing"

	"silver-advisor/internal/types"
)

func TestWatchFindsPolicyHeadline(t *testing.T) {
	hs := headlines(
		"Gold duty cut announced",
		"Government hikes import duty on silver",
		"Silver hits record on MCX",
	)

	got, err := Watch(hs, DefaultWatchRule())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected a watch headline")
	}
	if got.Title != "Government hikes import duty on silver" {
		t.Errorf("Expected first matching headline, got %q", got.Title)
	}
}

func TestWatchCaseInsensitive(t *testing.T) {
	got, err := Watch(headlines("SILVER futures jump on mcx"), DefaultWatchRule())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected match regardless of case")
	}
}

func TestWatchRequiresBothWords(t *testing.T) {
	hs := headlines(
		"Silver prices surge on industrial demand",
		"Tax collections rise in October",
	)

	got, err := Watch(hs, DefaultWatchRule())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected no match, got %q", got.Title)
	}
}

func TestWatchHonorsWindow(t *testing.T) {
	hs := headlines(
		"Rupee steady in quiet trade",
		"Crude oil climbs after OPEC meeting",
		"Stocks rally after tech earnings",
		"Gold flat ahead of Fed",
		"Copper edges up",
		"Government hikes import duty on silver",
	)

	got, err := Watch(hs, DefaultWatchRule())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected headline beyond window to be ignored, got %q", got.Title)
	}

	rule := DefaultWatchRule()
	rule.Window = 6
	got, err = Watch(hs, rule)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Error("Expected match once window covers it")
	}
}

func TestWatchEmptyAndZeroWindow(t *testing.T) {
	got, err := Watch(nil, DefaultWatchRule())
	if err != nil || got != nil {
		t.Errorf("Expected nil, nil for empty feed, got %v, %v", got, err)
	}

	rule := DefaultWatchRule()
	rule.Window = 0
	got, err = Watch(headlines("Government hikes import duty on silver"), rule)
	if err != nil || got != nil {
		t.Errorf("Expected zero window to scan nothing, got %v, %v", got, err)
	}
}

func TestWatchMalformedInsideWindow(t *testing.T) {
	hs := []types.Headline{{Title: "Copper edges up"}, {Title: ""}}
	if _, err := Watch(hs, DefaultWatchRule()); !errors.Is(err, ErrMalformedHeadline) {
		t.Errorf("Expected ErrMalformedHeadline, got %v", err)
	}

	rule := DefaultWatchRule()
	rule.Window = 1
	if _, err := Watch(hs, rule); err != nil {
		t.Errorf("Expected malformed item outside window to be ignored, got %v", err)
	}
}

func TestWatchReturnsCopy(t *testing.T) {
	hs := headlines("Government hikes import duty on silver")
	got, _ := Watch(hs, DefaultWatchRule())
	got.Title = "changed"
	if hs[0].Title != "Government hikes import duty on silver" {
		t.Error("Expected Watch to return a copy of the headline")
	}
}
