package model

// Opportunity is a scored item, ready to be filtered, ranked and displayed.
type Opportunity struct {
	Name           string         `json:"name"`
	HashName       string         `json:"hash_name"`
	CurrentPrice   float64        `json:"current_price"`
	BasePrice      float64        `json:"base_price"`
	Score          int            `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
	Emoji          string         `json:"emoji"`
	Category       string         `json:"category"`
	Demand         Demand         `json:"demand"`
	VolatilityPct  float64        `json:"volatility_pct"`
	Regime         string         `json:"regime"`
	Listings       int            `json:"listings,omitempty"`
	RealData       bool           `json:"real_data"`
	Link           string         `json:"link,omitempty"`
	Factors        []FactorScore  `json:"-"`
}

// Summary holds aggregate statistics over a result set.
type Summary struct {
	Count       int     `json:"count"`
	MeanScore   float64 `json:"mean_score"`
	ScoreStdDev float64 `json:"score_stddev"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	RealData    bool    `json:"real_data"`
}
