package strategy

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"SkinScout/internal/model"
)

// KeywordRule awards Bonus when an item name contains any of Terms.
type KeywordRule struct {
	Label string   `yaml:"label"`
	Terms []string `yaml:"terms"`
	Bonus int      `yaml:"bonus"`
}

// PriceBand awards Bonus to prices at or below Max.
type PriceBand struct {
	Max   float64 `yaml:"max"`
	Bonus int     `yaml:"bonus"`
}

// VolatilityRule rewards volatility inside [FavorableMin, FavorableMax] and
// penalizes volatility above RiskAbove.
type VolatilityRule struct {
	FavorableMin   float64 `yaml:"favorable_min"`
	FavorableMax   float64 `yaml:"favorable_max"`
	FavorableBonus int     `yaml:"favorable_bonus"`
	RiskAbove      float64 `yaml:"risk_above"`
	RiskPenalty    int     `yaml:"risk_penalty"`
}

// Policy holds every weight and threshold of the investment heuristic.
type Policy struct {
	Base       int                  `yaml:"base"`
	Min        int                  `yaml:"min"`
	Max        int                  `yaml:"max"`
	Demand     map[model.Demand]int `yaml:"demand"`
	Keywords   []KeywordRule        `yaml:"keywords"` // first match wins
	PriceBands []PriceBand          `yaml:"price_bands"`
	AboveBands int                  `yaml:"above_bands"`
	Volatility VolatilityRule       `yaml:"volatility"`
	Trend      map[model.Trend]int  `yaml:"trend"`
}

// DefaultPolicy returns the canonical scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		Base: 50,
		Min:  10,
		Max:  95,
		Demand: map[model.Demand]int{
			model.DemandVeryHigh: 25,
			model.DemandHigh:     20,
			model.DemandMedium:   10,
			model.DemandLow:      -10,
		},
		Keywords: []KeywordRule{
			{Label: "knife", Terms: []string{"knife", "karambit", "bayonet", "daggers", "doppler", "gamma", "emerald", "sapphire", "ruby"}, Bonus: 15},
			{Label: "gloves", Terms: []string{"gloves", "hand wraps"}, Bonus: 12},
			{Label: "stattrak", Terms: []string{"stattrak"}, Bonus: 10},
			{Label: "popular weapon", Terms: []string{"ak-47", "awp", "m4a4", "m4a1", "desert eagle", "usp-s"}, Bonus: 8},
		},
		PriceBands: []PriceBand{
			{Max: 50, Bonus: 20},
			{Max: 150, Bonus: 15},
			{Max: 500, Bonus: 10},
		},
		AboveBands: -10,
		Volatility: VolatilityRule{
			FavorableMin:   0.10,
			FavorableMax:   0.20,
			FavorableBonus: 12,
			RiskAbove:      0.25,
			RiskPenalty:    -15,
		},
		Trend: map[model.Trend]int{
			model.TrendBull:   10,
			model.TrendBear:   -15,
			model.TrendStable: 0,
		},
	}
}

// Apply overlays a YAML mapping onto the policy. Absent keys keep their values.
func (p *Policy) Apply(node *yaml.Node) error {
	if node == nil || node.Kind == 0 {
		return nil
	}
	if err := node.Decode(p); err != nil {
		return fmt.Errorf("decode scoring policy: %w", err)
	}
	return p.Validate()
}

// Validate checks internal consistency of the policy.
func (p *Policy) Validate() error {
	if p.Min > p.Max {
		return fmt.Errorf("scoring.min (%d) exceeds scoring.max (%d)", p.Min, p.Max)
	}
	for i := 1; i < len(p.PriceBands); i++ {
		if p.PriceBands[i].Max <= p.PriceBands[i-1].Max {
			return errors.New("scoring.price_bands must be in ascending order")
		}
	}
	if p.Volatility.FavorableMin > p.Volatility.FavorableMax {
		return errors.New("scoring.volatility favorable range is inverted")
	}
	return nil
}
