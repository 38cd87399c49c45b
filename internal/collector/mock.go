package collector

import (
	"context"
	"time"

	"SkinScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Listings []model.Listing
	Skipped  int
	Err      error
	Delay    time.Duration

	Calls []SearchParams
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchListings(ctx context.Context, params SearchParams) (*Batch, error) {
	m.Calls = append(m.Calls, params)
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]model.Listing, len(m.Listings))
	copy(out, m.Listings)
	return &Batch{Listings: out, Skipped: m.Skipped}, nil
}

// OfflineFetcher never reaches the network; every fetch fails with ErrOffline.
type OfflineFetcher struct{}

func (OfflineFetcher) Name() string { return "offline" }

func (OfflineFetcher) FetchListings(context.Context, SearchParams) (*Batch, error) {
	return nil, ErrOffline
}
