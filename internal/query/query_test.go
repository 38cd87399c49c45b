package query

import (
	"testing"

	"SkinScout/internal/model"
)

func sample() []model.Opportunity {
	return []model.Opportunity{
		{Name: "AK-47 | Redline", CurrentPrice: 25, Score: 80, Category: "rifles"},
		{Name: "AWP | Asiimov", CurrentPrice: 110, Score: 90, Category: "snipers"},
		{Name: "AK-47 | Vulcan", CurrentPrice: 180, Score: 80, Category: "rifles"},
		{Name: "★ Karambit | Doppler", CurrentPrice: 1250, Score: 95, Category: "knives"},
		{Name: "P90 | Asiimov", CurrentPrice: 6, Score: 80, Category: "smgs"},
	}
}

func TestFilterByMaxPrice(t *testing.T) {
	for _, ceiling := range []float64{0, 6, 25, 100, 180, 5000} {
		for _, it := range FilterByMaxPrice(sample(), ceiling) {
			if it.CurrentPrice > ceiling {
				t.Errorf("ceiling %.0f: %s priced %.2f passed the filter", ceiling, it.Name, it.CurrentPrice)
			}
		}
	}
	if got := len(FilterByMaxPrice(sample(), 110)); got != 3 {
		t.Errorf("expected 3 items at or below 110, got %d", got)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := Search(sample(), "ak")
	if len(got) != 2 || got[0].Name != "AK-47 | Redline" {
		t.Fatalf("unexpected matches: %+v", got)
	}
	if got := Search(sample(), "ASIIMOV"); len(got) != 2 {
		t.Errorf("expected 2 Asiimov matches, got %d", len(got))
	}
	if got := Search(sample(), "howl"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(sample(), "Rifles")
	if len(got) != 2 {
		t.Fatalf("expected 2 rifles, got %d", len(got))
	}
	if got := FilterByCategory(sample(), "hats"); len(got) != 0 {
		t.Errorf("expected no hats, got %d", len(got))
	}
}

func TestTopN_StableTies(t *testing.T) {
	got := TopN(sample(), 5)
	want := []string{"★ Karambit | Doppler", "AWP | Asiimov", "AK-47 | Redline", "AK-47 | Vulcan", "P90 | Asiimov"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestTopN_Truncates(t *testing.T) {
	if got := TopN(sample(), 2); len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
	if got := TopN(sample(), 50); len(got) != 5 {
		t.Errorf("expected all 5 items, got %d", len(got))
	}
	if got := TopN(sample(), 0); len(got) != 0 {
		t.Errorf("expected empty result for n=0, got %d", len(got))
	}
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	in := sample()
	TopN(in, 3)
	if in[0].Name != "AK-47 | Redline" {
		t.Fatal("input slice was reordered")
	}
}

func TestRun_Composition(t *testing.T) {
	ceiling := 200.0
	got := Run(sample(), Options{MaxPrice: &ceiling, Search: "a", Limit: 2})
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Name != "AWP | Asiimov" || got[1].Name != "AK-47 | Redline" {
		t.Errorf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestSearch_BlankMatchesNothing(t *testing.T) {
	for _, q := range []string{" ", "   ", "\t"} {
		if got := Search(sample(), q); len(got) != 0 {
			t.Errorf("Search(%q): expected no matches, got %d", q, len(got))
		}
		if got := Run(sample(), Options{Search: q, Limit: 10}); len(got) != 0 {
			t.Errorf("Run with search %q: expected no matches, got %d", q, len(got))
		}
	}
}
