// Package query filters, searches and ranks scored opportunities.
// Every function returns a new slice and leaves its input untouched.
package query

import (
	"sort"
	"strings"

	"SkinScout/internal/model"
)

// FilterByMaxPrice keeps opportunities priced at or below maxPrice.
func FilterByMaxPrice(items []model.Opportunity, maxPrice float64) []model.Opportunity {
	out := make([]model.Opportunity, 0, len(items))
	for _, it := range items {
		if it.CurrentPrice <= maxPrice {
			out = append(out, it)
		}
	}
	return out
}

// FilterByCategory keeps opportunities of one category, case-insensitively.
func FilterByCategory(items []model.Opportunity, category string) []model.Opportunity {
	category = strings.ToLower(strings.TrimSpace(category))
	out := make([]model.Opportunity, 0, len(items))
	for _, it := range items {
		if strings.ToLower(it.Category) == category {
			out = append(out, it)
		}
	}
	return out
}

// Search keeps opportunities whose name contains substr, case-insensitively.
// A blank substr matches nothing.
func Search(items []model.Opportunity, substr string) []model.Opportunity {
	needle := strings.ToLower(strings.TrimSpace(substr))
	out := make([]model.Opportunity, 0, len(items))
	if needle == "" {
		return out
	}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// TopN sorts by descending score, keeping the original order among ties,
// and returns at most n opportunities.
func TopN(items []model.Opportunity, n int) []model.Opportunity {
	if n <= 0 {
		return []model.Opportunity{}
	}
	out := make([]model.Opportunity, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Options describes one pipeline run. Zero values disable a stage.
type Options struct {
	MaxPrice *float64
	Category string
	Search   string
	Limit    int
}

// Run applies filter, search, sort and truncate in that order.
func Run(items []model.Opportunity, opts Options) []model.Opportunity {
	out := items
	if opts.MaxPrice != nil {
		out = FilterByMaxPrice(out, *opts.MaxPrice)
	}
	if opts.Category != "" {
		out = FilterByCategory(out, opts.Category)
	}
	if opts.Search != "" {
		out = Search(out, opts.Search)
	}
	return TopN(out, opts.Limit)
}
