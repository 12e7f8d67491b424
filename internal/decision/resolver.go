package decision

import (
	"silver-advisor/internal/types"
)

// premiumSellPct is the premium above which the ETF is considered rich
const premiumSellPct = 1.0

// Inputs is everything the rule chain looks at
type Inputs struct {
	Premium float64
	Silver  types.Label
	USD     types.Label
	Watch   *types.Headline
}

// Rule is one entry in the chain. Match decides whether the rule fires and
// Decide builds the outcome once it has.
type Rule struct {
	Name   string
	Match  func(in Inputs) bool
	Decide func(in Inputs) types.Decision
}

// Rules returns the decision chain in evaluation order. The order is the
// precedence: discount protection first, policy watch last.
func Rules() []Rule {
	return []Rule{
		{
			Name:  "discount",
			Match: func(in Inputs) bool { return in.Premium < 0 },
			Decide: func(in Inputs) types.Decision {
				return hold("Discount to NAV")
			},
		},
		{
			Name:  "silver_weak",
			Match: func(in Inputs) bool { return in.Silver == types.SilverBearish },
			Decide: func(in Inputs) types.Decision {
				if in.USD == types.USDStrong {
					return sell("Silver weak + USD strong")
				}
				return sell("Silver weak")
			},
		},
		{
			Name:  "usd_strong",
			Match: func(in Inputs) bool { return in.USD == types.USDStrong },
			Decide: func(in Inputs) types.Decision {
				return sell("USD rising strongly")
			},
		},
		{
			Name:  "usd_weak",
			Match: func(in Inputs) bool { return in.USD == types.USDWeak },
			Decide: func(in Inputs) types.Decision {
				return hold("USD flat/falling")
			},
		},
		{
			Name:  "premium",
			Match: func(in Inputs) bool { return in.Premium > premiumSellPct },
			Decide: func(in Inputs) types.Decision {
				return sell("ETF trading at premium")
			},
		},
		{
			Name:  "policy_watch",
			Match: func(in Inputs) bool { return in.Watch != nil },
			Decide: func(in Inputs) types.Decision {
				return hold("Watch India policy: " + in.Watch.Title)
			},
		},
	}
}

// Resolver walks a rule chain and returns the first decision that fires
type Resolver struct {
	rules []Rule
}

// NewResolver builds a resolver over the default chain
func NewResolver() *Resolver {
	return &Resolver{rules: Rules()}
}

// Decide evaluates the chain top to bottom. When nothing fires the position
// is held.
func (r *Resolver) Decide(in Inputs) types.Decision {
	for _, rule := range r.rules {
		if rule.Match(in) {
			d := rule.Decide(in)
			d.Rule = rule.Name
			return d
		}
	}
	d := hold("No strong sell signal")
	d.Rule = "default"
	return d
}

func hold(reason string) types.Decision {
	return types.Decision{Action: types.ActionHold, Reason: reason}
}

func sell(reason string) types.Decision {
	return types.Decision{Action: types.ActionSell, Reason: reason}
}
