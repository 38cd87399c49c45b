package catalog

import (
	"strings"

	"SkinScout/internal/model"
)

// Store is immutable reference data: items grouped by category.
type Store struct {
	order      []string
	byCategory map[string][]model.Item
}

// New builds a Store from the given categories. Category order is preserved.
func New(categories []Category) *Store {
	s := &Store{byCategory: make(map[string][]model.Item, len(categories))}
	for _, c := range categories {
		key := strings.ToLower(c.Name)
		if _, ok := s.byCategory[key]; !ok {
			s.order = append(s.order, key)
		}
		for _, it := range c.Items {
			it.Category = key
			if it.HashName == "" {
				it.HashName = it.Name
			}
			s.byCategory[key] = append(s.byCategory[key], it)
		}
	}
	return s
}

// Default returns the built-in CS2 catalog.
func Default() *Store { return New(defaultCategories) }

// Category is a named group of items.
type Category struct {
	Name  string
	Items []model.Item
}

// ListAll returns every item in catalog order.
func (s *Store) ListAll() []model.Item {
	var all []model.Item
	for _, name := range s.order {
		all = append(all, s.byCategory[name]...)
	}
	return all
}

// ListByCategory returns the items of one category. An unknown category yields nil.
func (s *Store) ListByCategory(name string) []model.Item {
	items := s.byCategory[strings.ToLower(strings.TrimSpace(name))]
	if len(items) == 0 {
		return nil
	}
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

// Categories returns category names in catalog order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether the category exists.
func (s *Store) Has(name string) bool {
	_, ok := s.byCategory[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

var classifyRules = []struct {
	category string
	terms    []string
}{
	{"gloves", []string{"gloves", "hand wraps"}},
	{"knives", []string{"knife", "karambit", "bayonet", "daggers", "★"}},
	{"snipers", []string{"awp", "ssg 08", "scar-20", "g3sg1"}},
	{"rifles", []string{"ak-47", "m4a4", "m4a1-s", "famas", "galil ar", "aug", "sg 553"}},
	{"pistols", []string{"desert eagle", "usp-s", "glock-18", "p250", "five-seven", "tec-9", "cz75-auto", "p2000", "r8 revolver", "dual berettas"}},
	{"smgs", []string{"mp9", "mac-10", "mp7", "mp5-sd", "ump-45", "p90", "pp-bizon"}},
}

// Classify infers a category from an item name. Names that match no rule are "other".
func Classify(name string) string {
	n := strings.ToLower(name)
	for _, r := range classifyRules {
		for _, t := range r.terms {
			if strings.Contains(n, t) {
				return r.category
			}
		}
	}
	return "other"
}
