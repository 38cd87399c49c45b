package collector

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"SkinScout/internal/model"
)

// DefaultSearchURL is the Steam Community Market search endpoint.
const DefaultSearchURL = "https://steamcommunity.com/market/search/render/"

// SteamOptions configures a SteamFetcher.
type SteamOptions struct {
	BaseURL    string
	AppID      int
	SortColumn string
	SortDir    string
	Timeout    time.Duration
	Proxy      string
	RatePerSec float64
	Burst      int
}

// SteamFetcher implements Fetcher using the Steam Community Market search API.
type SteamFetcher struct {
	BaseURL    string
	AppID      int
	SortColumn string
	SortDir    string
	Client     *http.Client
	limiter    *rate.Limiter
}

// NewSteamFetcher creates a fetcher with optional proxy support. The returned
// client is safe to share between concurrent callers.
func NewSteamFetcher(opts SteamOptions) *SteamFetcher {
	transport := &http.Transport{}
	if opts.Proxy != "" {
		if u, err := url.Parse(opts.Proxy); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultSearchURL
	}
	if opts.AppID == 0 {
		opts.AppID = 730
	}
	if opts.SortColumn == "" {
		opts.SortColumn = "price"
	}
	if opts.SortDir == "" {
		opts.SortDir = "desc"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if opts.RatePerSec > 0 {
		limit = rate.Limit(opts.RatePerSec)
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	return &SteamFetcher{
		BaseURL:    opts.BaseURL,
		AppID:      opts.AppID,
		SortColumn: opts.SortColumn,
		SortDir:    opts.SortDir,
		Client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(limit, opts.Burst),
	}
}

func (f *SteamFetcher) Name() string { return "steam" }

// Close releases idle connections held by the shared client.
func (f *SteamFetcher) Close() {
	f.Client.CloseIdleConnections()
}

// searchEnvelope is the expected JSON shape from the search endpoint.
type searchEnvelope struct {
	Success bool              `json:"success"`
	Results []json.RawMessage `json:"results"`
}

type searchResult struct {
	Name         string          `json:"name"`
	HashName     string          `json:"hash_name"`
	SellPrice    json.RawMessage `json:"sell_price"`
	SellListings json.RawMessage `json:"sell_listings"`
}

func (f *SteamFetcher) FetchListings(ctx context.Context, params SearchParams) (*Batch, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("appid", strconv.Itoa(f.AppID))
	q.Set("count", strconv.Itoa(params.Count))
	q.Set("norender", "1")
	q.Set("sort_column", f.SortColumn)
	q.Set("sort_dir", f.SortDir)
	q.Set("search_descriptions", "0")
	if params.Query != "" {
		q.Set("query", params.Query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam fetch: %w", err)
	}
	defer resp.Body.Close()

	reader, err := bodyReader(resp)
	if err != nil {
		return nil, fmt.Errorf("steam body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(reader, 512))
		return nil, fmt.Errorf("steam: status %d, body: %s", resp.StatusCode, string(body))
	}

	var env searchEnvelope
	if err := json.NewDecoder(reader).Decode(&env); err != nil {
		return nil, fmt.Errorf("steam decode: %w", err)
	}
	if !env.Success {
		return nil, ErrUnsuccessful
	}
	return normalize(env.Results)
}

// bodyReader unwraps gzip and brotli encoded bodies.
func bodyReader(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		return gzip.NewReader(resp.Body)
	case "br":
		return brotli.NewReader(resp.Body), nil
	default:
		return resp.Body, nil
	}
}

// normalize decodes each record on its own so one bad record never drops the batch.
func normalize(raw []json.RawMessage) (*Batch, error) {
	batch := &Batch{Listings: make([]model.Listing, 0, len(raw))}
	for i, msg := range raw {
		l, err := normalizeRecord(msg)
		if err != nil {
			batch.Skipped++
			log.Debug().Int("index", i).Err(err).Msg("skipping marketplace record")
			continue
		}
		batch.Listings = append(batch.Listings, l)
	}
	if len(batch.Listings) == 0 {
		return batch, ErrNoResults
	}
	return batch, nil
}

func normalizeRecord(msg json.RawMessage) (model.Listing, error) {
	var r searchResult
	if err := json.Unmarshal(msg, &r); err != nil {
		return model.Listing{}, fmt.Errorf("decode record: %w", err)
	}
	cents, err := flexInt(r.SellPrice, 0)
	if err != nil {
		return model.Listing{}, fmt.Errorf("sell_price: %w", err)
	}
	if cents <= 0 {
		return model.Listing{}, fmt.Errorf("sell_price: non-positive value %d", cents)
	}
	listings, err := flexInt(r.SellListings, 100)
	if err != nil {
		return model.Listing{}, fmt.Errorf("sell_listings: %w", err)
	}
	if listings < 0 || listings > math.MaxInt32 {
		return model.Listing{}, fmt.Errorf("sell_listings: out of range %d", listings)
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "Unknown"
	}
	hash := r.HashName
	if hash == "" {
		hash = name
	}
	return model.Listing{
		Name:     name,
		HashName: hash,
		Price:    decimal.New(cents, -2).InexactFloat64(),
		Listings: int(listings),
	}, nil
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// flexInt accepts a JSON number or a numeric string holding a whole int64.
// Absent or null values yield def.
func flexInt(raw json.RawMessage, def int64) (int64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return def, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, err
		}
		s = strings.ReplaceAll(strings.TrimSpace(str), ",", "")
		if s == "" {
			return def, nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("not numeric: %q", s)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return d.IntPart(), nil
}
