package model

import "strings"

// Demand is the trading demand tier of an item.
type Demand string

const (
	DemandLow      Demand = "low"
	DemandMedium   Demand = "medium"
	DemandHigh     Demand = "high"
	DemandVeryHigh Demand = "very_high"
)

// ParseDemand maps a free-form tier name to a Demand. Unknown names map to DemandLow.
func ParseDemand(s string) Demand {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "very_high", "very high", "veryhigh":
		return DemandVeryHigh
	case "high":
		return DemandHigh
	case "medium":
		return DemandMedium
	default:
		return DemandLow
	}
}

// Item is a tradable virtual good with fixed baseline economic parameters.
type Item struct {
	Name       string  // display name, e.g. "AK-47 | Redline"
	HashName   string  // marketplace lookup key
	BasePrice  float64 // USD
	Volatility float64 // fraction in (0,1)
	Demand     Demand
	Category   string
}

// Listing is a single normalized record from the live marketplace.
type Listing struct {
	Name     string
	HashName string
	Price    float64
	Listings int
}

// PriceQuote is the current price of an item for one request.
type PriceQuote struct {
	Item  Item
	Price float64
}
