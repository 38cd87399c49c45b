package model

// Recommendation is the discrete buy label derived from a score.
type Recommendation string

const (
	StrongBuy Recommendation = "STRONG_BUY"
	GoodBuy   Recommendation = "GOOD_BUY"
	Moderate  Recommendation = "MODERATE"
	Hold      Recommendation = "HOLD"
	Avoid     Recommendation = "AVOID"
)

// FactorScore represents a single factor's contribution to a score.
type FactorScore struct {
	Name       string
	Points     int
	Commentary string
}

// Tier maps a minimum score to a recommendation.
type Tier struct {
	MinScore       int
	Recommendation Recommendation
	Emoji          string
}
