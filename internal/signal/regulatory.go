package signal

import "silver-advisor/internal/types"

// WatchRule bounds the regulatory scan to the most recent headlines
type WatchRule struct {
	Theme  string
	Policy []string
	Window int
}

// DefaultWatchRule watches the five latest items for Indian silver policy news
func DefaultWatchRule() WatchRule {
	return WatchRule{
		Theme:  "silver",
		Policy: []string{"duty", "mcx", "tax"},
		Window: 5,
	}
}

// Watch returns the first headline within the rule's window that mentions the
// theme word together with a policy word, or nil when none does.
func Watch(headlines []types.Headline, rule WatchRule) (*types.Headline, error) {
	n := rule.Window
	if n > len(headlines) {
		n = len(headlines)
	}

	for i := 0; i < n; i++ {
		t, err := normalizedTitle(headlines[i], i)
		if err != nil {
			return nil, err
		}
		if containsAny(t, []string{rule.Theme}) && containsAny(t, rule.Policy) {
			h := headlines[i]
			return &h, nil
		}
	}
	return nil, nil
}
