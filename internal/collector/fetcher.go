package collector

import (
	"context"
	"errors"
	"net/url"

	"SkinScout/internal/model"
)

var (
	// ErrUnsuccessful is returned when the marketplace answers with success=false.
	ErrUnsuccessful = errors.New("marketplace reported failure")
	// ErrNoResults is returned when a response holds no usable records.
	ErrNoResults = errors.New("marketplace returned no usable results")
	// ErrOffline is returned by the offline fetcher.
	ErrOffline = errors.New("live marketplace disabled")
)

// SearchParams narrows one marketplace search.
type SearchParams struct {
	Count int
	Query string
}

// Batch is the normalized outcome of one fetch.
type Batch struct {
	Listings []model.Listing
	Skipped  int // records dropped for invalid numeric fields
}

// Fetcher defines the interface for fetching live marketplace listings.
type Fetcher interface {
	FetchListings(ctx context.Context, params SearchParams) (*Batch, error)
	Name() string
}

// DefaultListingURL is the Steam listing page prefix for CS2 items.
const DefaultListingURL = "https://steamcommunity.com/market/listings/730/"

// ListingURL builds the listing page link for a market hash name.
func ListingURL(prefix, hashName string) string {
	if hashName == "" {
		return ""
	}
	if prefix == "" {
		prefix = DefaultListingURL
	}
	return prefix + url.PathEscape(hashName)
}
