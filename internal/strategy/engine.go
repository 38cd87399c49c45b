package strategy

import "SkinScout/internal/model"

// Tiers defines the recommendation buckets, highest first.
var Tiers = []model.Tier{
	{MinScore: 80, Recommendation: model.StrongBuy, Emoji: "🚀"},
	{MinScore: 65, Recommendation: model.GoodBuy, Emoji: "📈"},
	{MinScore: 50, Recommendation: model.Moderate, Emoji: "➡️"},
	{MinScore: 35, Recommendation: model.Hold, Emoji: "⏸️"},
}

// DefaultTier applies to scores below every tier.
var DefaultTier = model.Tier{MinScore: 0, Recommendation: model.Avoid, Emoji: "📉"}

// Classify maps a score to its tier.
func Classify(score int) model.Tier {
	for _, t := range Tiers {
		if score >= t.MinScore {
			return t
		}
	}
	return DefaultTier
}

// Input is everything the heuristic looks at.
type Input struct {
	Item   model.Item
	Price  float64
	Regime model.Regime
}

// Evaluation is the scored result with its factor breakdown.
type Evaluation struct {
	Factors []model.FactorScore
	Raw     int
	Score   int
	Tier    model.Tier
}

// Scorer applies one Policy. It holds no mutable state.
type Scorer struct {
	policy Policy
}

// NewScorer creates a Scorer for the given policy.
func NewScorer(p Policy) *Scorer {
	return &Scorer{policy: p}
}

// Policy returns the scorer's policy.
func (s *Scorer) Policy() Policy { return s.policy }

// Evaluate computes the clamped score for in.
func (s *Scorer) Evaluate(in Input) Evaluation {
	p := &s.policy
	factors := []model.FactorScore{
		scoreDemand(p, in.Item),
		scoreKeyword(p, in.Item),
		scorePrice(p, in.Price),
		scoreVolatility(p, in.Item.Volatility),
		scoreRegime(p, in.Regime),
	}

	raw := p.Base
	for _, f := range factors {
		raw += f.Points
	}

	score := raw
	if score < p.Min {
		score = p.Min
	}
	if score > p.Max {
		score = p.Max
	}

	return Evaluation{
		Factors: factors,
		Raw:     raw,
		Score:   score,
		Tier:    Classify(score),
	}
}

// Score returns only the clamped score.
func (s *Scorer) Score(in Input) int {
	return s.Evaluate(in).Score
}
