package domain

import "github.com/shopspring/decimal"

// Tier is a derived reputation classification. It is recomputed on demand
// from its four inputs and never persisted.
type Tier struct {
	Name       string `json:"name"`
	BadgeClass string `json:"badge_class"`
}

// tierRule is one row of the classification decision list.
type tierRule struct {
	tier    Tier
	matches func(dishesBacked, dishesCreated int, portfolioValue decimal.Decimal, reputationScore int) bool
}

var (
	tierValue500    = decimal.NewFromInt(500)
	tierValue2000   = decimal.NewFromInt(2000)
	tierValue10000  = decimal.NewFromInt(10000)
	tierValue50000  = decimal.NewFromInt(50000)
	tierValue100000 = decimal.NewFromInt(100000)
)

// tierRules is evaluated top to bottom; the first matching rule wins.
var tierRules = []tierRule{
	{
		tier: Tier{Name: "Restaurant Royalty", BadgeClass: "amber"},
		matches: func(_, _ int, value decimal.Decimal, reputation int) bool {
			return reputation >= 1000 && value.GreaterThanOrEqual(tierValue100000)
		},
	},
	{
		tier: Tier{Name: "Food Mogul", BadgeClass: "purple"},
		matches: func(_, created int, value decimal.Decimal, _ int) bool {
			return created >= 20 && value.GreaterThanOrEqual(tierValue50000)
		},
	},
	{
		tier: Tier{Name: "Culinary Capitalist", BadgeClass: "primary"},
		matches: func(_, created int, value decimal.Decimal, _ int) bool {
			return created >= 10 && value.GreaterThanOrEqual(tierValue10000)
		},
	},
	{
		tier: Tier{Name: "Portfolio Chef", BadgeClass: "blue"},
		matches: func(_, created int, value decimal.Decimal, _ int) bool {
			return created >= 3 && value.GreaterThanOrEqual(tierValue2000)
		},
	},
	{
		tier: Tier{Name: "Taste Investor", BadgeClass: "mint"},
		matches: func(_, created int, value decimal.Decimal, _ int) bool {
			return created >= 1 || value.GreaterThanOrEqual(tierValue500)
		},
	},
	{
		tier: Tier{Name: "Rising Foodie", BadgeClass: "gray"},
		matches: func(backed, _ int, _ decimal.Decimal, _ int) bool {
			return backed >= 5
		},
	},
}

var defaultTier = Tier{Name: "New Taster", BadgeClass: "gray"}

// ClassifyTier maps a user's activity signals to a reputation tier. It is a
// total function: every input quadruple resolves to exactly one tier.
func ClassifyTier(dishesBacked, dishesCreated int, portfolioValue decimal.Decimal, reputationScore int) Tier {
	for _, rule := range tierRules {
		if rule.matches(dishesBacked, dishesCreated, portfolioValue, reputationScore) {
			return rule.tier
		}
	}

	return defaultTier
}
