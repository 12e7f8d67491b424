package signal

import (
	"errors"
	"fmt"
	"strings"

	"silver-advisor/internal/types"
)

// strongThreshold is the absolute score at which a theme stops being neutral
const strongThreshold = 2

// ErrMalformedHeadline is returned for a headline without a usable title
var ErrMalformedHeadline = errors.New("malformed headline")

// Score sums the per-headline contributions for a theme.
//
// A headline with no trigger word contributes nothing. Otherwise a negation
// word adds -1, a positive word adds +1 and a negative word adds -1; the three
// checks are independent and each counts at most once per headline.
func Score(headlines []types.Headline, lex Lexicon) (int, error) {
	score := 0
	for i, h := range headlines {
		t, err := normalizedTitle(h, i)
		if err != nil {
			return 0, err
		}
		score += contribution(t, lex)
	}
	return score, nil
}

// LabelFor maps a total score onto the lexicon's labels
func LabelFor(score int, lex Lexicon) types.Label {
	switch {
	case score >= strongThreshold:
		return lex.Labels.Positive
	case score <= -strongThreshold:
		return lex.Labels.Negative
	default:
		return lex.Labels.Neutral
	}
}

// Classify scores the headlines and returns the resulting label with the score
func Classify(headlines []types.Headline, lex Lexicon) (types.Label, int, error) {
	score, err := Score(headlines, lex)
	if err != nil {
		return "", 0, fmt.Errorf("score %s headlines: %w", lex.Name, err)
	}
	return LabelFor(score, lex), score, nil
}

func contribution(title string, lex Lexicon) int {
	if !containsAny(title, lex.Triggers) {
		return 0
	}

	c := 0
	if containsAny(title, lex.Negations) {
		c--
	}
	if containsAny(title, lex.Positive) {
		c++
	}
	if containsAny(title, lex.Negative) {
		c--
	}
	return c
}

func normalizedTitle(h types.Headline, idx int) (string, error) {
	if strings.TrimSpace(h.Title) == "" {
		return "", fmt.Errorf("%w: item %d has no title", ErrMalformedHeadline, idx)
	}
	return strings.ToLower(h.Title), nil
}

// containsAny reports whether text contains any of the keywords
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
