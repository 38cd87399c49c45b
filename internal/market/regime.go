package market

import "SkinScout/internal/model"

var trends = []model.Trend{model.TrendBull, model.TrendBear, model.TrendStable}

// NewRegime samples a regime: trend uniform over bull/bear/stable, strength uniform in [0.1, 0.3).
func NewRegime(src RandomSource) model.Regime {
	i := int(src.Float64() * float64(len(trends)))
	if i >= len(trends) {
		i = len(trends) - 1
	}
	return model.Regime{
		Trend:    trends[i],
		Strength: 0.1 + src.Float64()*0.2,
	}
}
