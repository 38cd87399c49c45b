package strategy

import (
	"fmt"
	"strings"

	"SkinScout/internal/model"
)

// scoreDemand scores the item's demand tier.
func scoreDemand(p *Policy, item model.Item) model.FactorScore {
	return model.FactorScore{
		Name:       "demand",
		Points:     p.Demand[item.Demand],
		Commentary: string(item.Demand),
	}
}

// scoreKeyword scores the first keyword family found in the item name.
// Families do not stack.
func scoreKeyword(p *Policy, item model.Item) model.FactorScore {
	name := strings.ToLower(item.Name)
	for _, rule := range p.Keywords {
		for _, term := range rule.Terms {
			if strings.Contains(name, term) {
				return model.FactorScore{Name: "keyword", Points: rule.Bonus, Commentary: rule.Label}
			}
		}
	}
	return model.FactorScore{Name: "keyword", Points: 0, Commentary: "none"}
}

// scorePrice scores the current price against the price bands.
func scorePrice(p *Policy, price float64) model.FactorScore {
	points := p.AboveBands
	for _, band := range p.PriceBands {
		if price <= band.Max {
			points = band.Bonus
			break
		}
	}
	return model.FactorScore{
		Name:       "price",
		Points:     points,
		Commentary: fmt.Sprintf("$%.2f", price),
	}
}

// scoreVolatility rewards tradable volatility and penalizes extreme swings.
func scoreVolatility(p *Policy, volatility float64) model.FactorScore {
	v := p.Volatility
	var points int
	switch {
	case volatility >= v.FavorableMin && volatility <= v.FavorableMax:
		points = v.FavorableBonus
	case volatility > v.RiskAbove:
		points = v.RiskPenalty
	}
	return model.FactorScore{
		Name:       "volatility",
		Points:     points,
		Commentary: fmt.Sprintf("%.0f%%", volatility*100),
	}
}

// scoreRegime aligns the score with the market trend.
func scoreRegime(p *Policy, regime model.Regime) model.FactorScore {
	return model.FactorScore{
		Name:       "regime",
		Points:     p.Trend[regime.Trend],
		Commentary: regime.Label(),
	}
}
