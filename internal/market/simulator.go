package market

import (
	"math"

	"SkinScout/internal/model"
)

const (
	DefaultFloorRatio = 0.7
	DefaultMinPrice   = 0.01
)

// Simulator derives current prices from item baselines and the market regime.
type Simulator struct {
	src        RandomSource
	floorRatio float64
	minPrice   float64
}

// NewSimulator creates a Simulator. A non-positive floorRatio falls back to DefaultFloorRatio.
func NewSimulator(src RandomSource, floorRatio float64) *Simulator {
	if floorRatio <= 0 || floorRatio > 1 {
		floorRatio = DefaultFloorRatio
	}
	return &Simulator{src: src, floorRatio: floorRatio, minPrice: DefaultMinPrice}
}

// CurrentPrice applies the regime trend and a random daily move to the item's base price.
// The result is always at least DefaultMinPrice.
func (s *Simulator) CurrentPrice(item model.Item, regime model.Regime) float64 {
	trendEffect := item.BasePrice * regime.Strength * regime.Direction()
	dailyChange := item.BasePrice * s.uniform(-item.Volatility, item.Volatility)
	raw := item.BasePrice + trendEffect + dailyChange

	current := math.Max(raw, s.floorRatio*raw)
	return math.Max(current, s.minPrice)
}

// Quote is CurrentPrice wrapped in a PriceQuote.
func (s *Simulator) Quote(item model.Item, regime model.Regime) model.PriceQuote {
	return model.PriceQuote{Item: item, Price: s.CurrentPrice(item, regime)}
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.src.Float64()*(hi-lo)
}
