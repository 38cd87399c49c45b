package model

import "fmt"

// Trend is the macro direction of the simulated market.
type Trend string

const (
	TrendBull   Trend = "bull"
	TrendBear   Trend = "bear"
	TrendStable Trend = "stable"
)

// Regime is the trend/strength pair applied to every simulated price for
// the lifetime of one engine.
type Regime struct {
	Trend    Trend
	Strength float64 // [0.1, 0.3)
}

// Direction returns +1 for bull, -1 for bear and 0 for stable.
func (r Regime) Direction() float64 {
	switch r.Trend {
	case TrendBull:
		return 1
	case TrendBear:
		return -1
	default:
		return 0
	}
}

// Label renders the regime for display, e.g. "bull (+18.2%)".
func (r Regime) Label() string {
	if r.Trend == TrendStable {
		return string(r.Trend)
	}
	return fmt.Sprintf("%s (%+.1f%%)", r.Trend, r.Direction()*r.Strength*100)
}
