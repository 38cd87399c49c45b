package analyzer

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"SkinScout/internal/catalog"
	"SkinScout/internal/collector"
	"SkinScout/internal/market"
	"SkinScout/internal/model"
	"SkinScout/internal/query"
	"SkinScout/internal/strategy"
)

const (
	DefaultCount      = 5
	MaxCount          = 25
	DefaultFetchCount = 100
	DefaultTimeout    = 10 * time.Second
)

// Options configures an Engine. Zero values pick defaults.
type Options struct {
	Catalog    *catalog.Store
	Fetcher    collector.Fetcher
	Random     market.RandomSource
	Policy     *strategy.Policy
	FloorRatio float64
	Timeout    time.Duration
	FetchCount int
	ListingURL string
	Metrics    Metrics

	// Regime pins the market regime instead of sampling it.
	Regime *model.Regime
}

// Result is the answer to one engine query.
type Result struct {
	Opportunities     []model.Opportunity
	RealData          bool
	FallbackTriggered bool
	Regime            model.Regime
}

// Empty reports whether no opportunity qualified.
func (r Result) Empty() bool { return len(r.Opportunities) == 0 }

// Engine answers opportunity queries. The catalog and regime are fixed at
// construction and shared read-only by all queries.
type Engine struct {
	catalog  *catalog.Store
	regime   model.Regime
	provider *Provider
	metrics  Metrics
}

// New builds an Engine, sampling the market regime once.
func New(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Fetcher == nil {
		opts.Fetcher = collector.OfflineFetcher{}
	}
	if opts.Random == nil {
		opts.Random = market.NewSource(0)
	}
	policy := strategy.DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.FetchCount <= 0 {
		opts.FetchCount = DefaultFetchCount
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}

	var regime model.Regime
	if opts.Regime != nil {
		regime = *opts.Regime
	} else {
		regime = market.NewRegime(opts.Random)
	}
	log.Info().Str("regime", regime.Label()).Str("fetcher", opts.Fetcher.Name()).Msg("market engine ready")

	return &Engine{
		catalog: opts.Catalog,
		regime:  regime,
		metrics: opts.Metrics,
		provider: &Provider{
			fetcher:    opts.Fetcher,
			catalog:    opts.Catalog,
			sim:        market.NewSimulator(opts.Random, opts.FloorRatio),
			scorer:     strategy.NewScorer(policy),
			regime:     regime,
			timeout:    opts.Timeout,
			fetchCount: opts.FetchCount,
			listingURL: opts.ListingURL,
			metrics:    opts.Metrics,
		},
	}
}

// Regime returns the engine's market regime.
func (e *Engine) Regime() model.Regime { return e.regime }

// Categories lists the catalog categories.
func (e *Engine) Categories() []string { return e.catalog.Categories() }

// GetOpportunities returns the top count opportunities, optionally capped by
// price and restricted to one category.
func (e *Engine) GetOpportunities(ctx context.Context, count int, maxPrice *float64, category string) Result {
	return e.run(ctx, "opportunities", Request{Category: category}, query.Options{
		MaxPrice: maxPrice,
		Category: category,
		Limit:    ClampCount(count),
	})
}

// SearchOpportunities returns the top count opportunities whose name contains q.
// A blank q yields an empty result without a fetch.
func (e *Engine) SearchOpportunities(ctx context.Context, q string, count int, maxPrice *float64) Result {
	q = strings.TrimSpace(q)
	if q == "" {
		return Result{Regime: e.regime}
	}
	return e.run(ctx, "search", Request{Query: q}, query.Options{
		MaxPrice: maxPrice,
		Search:   q,
		Limit:    ClampCount(count),
	})
}

func (e *Engine) run(ctx context.Context, name string, req Request, opts query.Options) Result {
	start := time.Now()
	out := e.provider.Provide(ctx, req)
	opps := query.Run(out.Opportunities, opts)
	e.metrics.RecordQuery(name, out.Source(), len(opps), time.Since(start).Seconds())

	log.Debug().Str("query", name).Str("source", out.Source()).Int("candidates", len(out.Opportunities)).Int("count", len(opps)).Msg("query served")
	return Result{
		Opportunities:     opps,
		RealData:          out.RealData,
		FallbackTriggered: out.FallbackTriggered,
		Regime:            e.regime,
	}
}

// ClampCount bounds a requested result count to [1, MaxCount]; zero or
// negative requests get DefaultCount.
func ClampCount(n int) int {
	switch {
	case n <= 0:
		return DefaultCount
	case n > MaxCount:
		return MaxCount
	default:
		return n
	}
}
