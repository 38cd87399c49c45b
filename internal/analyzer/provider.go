package analyzer

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"SkinScout/internal/catalog"
	"SkinScout/internal/collector"
	"SkinScout/internal/market"
	"SkinScout/internal/model"
	"SkinScout/internal/strategy"
)

// Metrics receives engine instrumentation. See internal/metrics for the Prometheus implementation.
type Metrics interface {
	RecordFetch(source string, ok bool)
	RecordFallback(reason string)
	RecordSkipped(n int)
	RecordQuery(query, source string, results int, seconds float64)
}

type noopMetrics struct{}

func (noopMetrics) RecordFetch(string, bool)                 {}
func (noopMetrics) RecordFallback(string)                    {}
func (noopMetrics) RecordSkipped(int)                        {}
func (noopMetrics) RecordQuery(string, string, int, float64) {}

// Request narrows what the provider loads.
type Request struct {
	Query    string // forwarded to the marketplace search
	Category string // restricts the simulated catalog
}

// Outcome is the result of one provide call. FallbackTriggered is set when the
// live fetch failed and Opportunities come from the simulated market.
type Outcome struct {
	Opportunities     []model.Opportunity
	RealData          bool
	FallbackTriggered bool
	Reason            error
}

// Source names the data origin for logs and metrics.
func (o Outcome) Source() string {
	if o.RealData {
		return "live"
	}
	return "simulated"
}

// Provider fetches live listings and falls back to the simulated market on any failure.
type Provider struct {
	fetcher    collector.Fetcher
	catalog    *catalog.Store
	sim        *market.Simulator
	scorer     *strategy.Scorer
	regime     model.Regime
	timeout    time.Duration
	fetchCount int
	listingURL string
	metrics    Metrics
}

// Provide makes a single bounded live attempt. Failures are logged and
// counted, never returned.
func (p *Provider) Provide(ctx context.Context, req Request) Outcome {
	live, err := p.fetchLive(ctx, req)
	if err == nil {
		return Outcome{Opportunities: live, RealData: true}
	}

	reason := fallbackReason(err)
	log.Warn().Err(err).Str("source", p.fetcher.Name()).Str("reason", reason).Msg("live fetch failed, using simulated market")
	p.metrics.RecordFallback(reason)
	return Outcome{
		Opportunities:     p.simulate(req),
		FallbackTriggered: true,
		Reason:            err,
	}
}

func (p *Provider) fetchLive(ctx context.Context, req Request) ([]model.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	batch, err := p.fetcher.FetchListings(ctx, collector.SearchParams{Count: p.fetchCount, Query: req.Query})
	if batch != nil {
		p.metrics.RecordSkipped(batch.Skipped)
	}
	p.metrics.RecordFetch(p.fetcher.Name(), err == nil)
	if err != nil {
		return nil, err
	}
	if len(batch.Listings) == 0 {
		return nil, collector.ErrNoResults
	}

	out := make([]model.Opportunity, 0, len(batch.Listings))
	for _, l := range batch.Listings {
		item := model.Item{
			Name:      l.Name,
			HashName:  l.HashName,
			BasePrice: l.Price,
			Demand:    demandFromListings(l.Listings),
			Category:  catalog.Classify(l.Name),
		}
		// Live prices are scored as-is; no simulated drift.
		opp := p.score(item, l.Price)
		opp.Listings = l.Listings
		opp.RealData = true
		out = append(out, opp)
	}
	return out, nil
}

func (p *Provider) simulate(req Request) []model.Opportunity {
	items := p.catalog.ListAll()
	if req.Category != "" {
		items = p.catalog.ListByCategory(req.Category)
	}
	out := make([]model.Opportunity, 0, len(items))
	for _, it := range items {
		out = append(out, p.score(it, p.sim.CurrentPrice(it, p.regime)))
	}
	return out
}

func (p *Provider) score(item model.Item, price float64) model.Opportunity {
	ev := p.scorer.Evaluate(strategy.Input{Item: item, Price: price, Regime: p.regime})
	return model.Opportunity{
		Name:           item.Name,
		HashName:       item.HashName,
		CurrentPrice:   price,
		BasePrice:      item.BasePrice,
		Score:          ev.Score,
		Recommendation: ev.Tier.Recommendation,
		Emoji:          ev.Tier.Emoji,
		Category:       item.Category,
		Demand:         item.Demand,
		VolatilityPct:  item.Volatility * 100,
		Regime:         p.regime.Label(),
		Link:           collector.ListingURL(p.listingURL, item.HashName),
		Factors:        ev.Factors,
	}
}

// demandFromListings treats scarce supply as high demand.
func demandFromListings(n int) model.Demand {
	switch {
	case n < 20:
		return model.DemandVeryHigh
	case n <= 50:
		return model.DemandHigh
	case n <= 200:
		return model.DemandMedium
	default:
		return model.DemandLow
	}
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, collector.ErrUnsuccessful):
		return "unsuccessful"
	case errors.Is(err, collector.ErrNoResults):
		return "no_results"
	case errors.Is(err, collector.ErrOffline):
		return "offline"
	default:
		return "error"
	}
}
