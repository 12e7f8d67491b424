package signal

import "silver-advisor/internal/types"

// Lexicon is the word configuration for scoring one theme. Words match as
// case-insensitive substrings of the headline title.
type Lexicon struct {
	Name      string
	Triggers  []string
	Positive  []string
	Negative  []string
	Negations []string
	Labels    Labels
}

// Labels names the three outcomes of a theme
type Labels struct {
	Positive types.Label
	Negative types.Label
	Neutral  types.Label
}

// USDLexicon returns the default lexicon for US dollar strength
func USDLexicon() Lexicon {
	return Lexicon{
		Name:      types.ThemeUSD,
		Triggers:  []string{"fed", "inflation", "yields", "treasury", "rates"},
		Positive:  []string{"rise", "rises", "rising", "surge", "hot", "higher", "hawkish", "sticky"},
		Negative:  []string{"fall", "falls", "falling", "ease", "cool", "lower", "dovish", "slow"},
		Negations: []string{"no", "not", "without", "eases"},
		Labels: Labels{
			Positive: types.USDStrong,
			Negative: types.USDWeak,
			Neutral:  types.USDNeutral,
		},
	}
}

// SilverLexicon returns the default lexicon for silver sentiment
func SilverLexicon() Lexicon {
	return Lexicon{
		Name:      types.ThemeSilver,
		Triggers:  []string{"silver", "metals", "industrial", "demand", "mine", "etf"},
		Positive:  []string{"increase", "rise", "surge", "strong", "higher"},
		Negative:  []string{"fall", "decline", "weak", "drop", "lower"},
		Negations: []string{"no", "not", "without"},
		Labels: Labels{
			Positive: types.SilverBullish,
			Negative: types.SilverBearish,
			Neutral:  types.SilverNeutral,
		},
	}
}

// WithWords returns a copy of the lexicon with any non-empty word list replaced
func (l Lexicon) WithWords(triggers, positive, negative, negations []string) Lexicon {
	if len(triggers) > 0 {
		l.Triggers = append([]string(nil), triggers...)
	}
	if len(positive) > 0 {
		l.Positive = append([]string(nil), positive...)
	}
	if len(negative) > 0 {
		l.Negative = append([]string(nil), negative...)
	}
	if len(negations) > 0 {
		l.Negations = append([]string(nil), negations...)
	}
	return l
}
