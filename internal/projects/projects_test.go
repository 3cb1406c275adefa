package projects

import (
	"testing"

	"vitrine/internal/types"
)

func titles(list []types.Project) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Title
	}
	return out
}

func TestShapeWebByTitle(t *testing.T) {
	got := Shape(Catalog, "", "web", types.SortTitle)
	want := []string{"Personal Site", "Web Storefront"}
	if len(got) != len(want) {
		t.Fatalf("got %d projects %v, want %d", len(got), titles(got), len(want))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestShapeNewestFirst(t *testing.T) {
	got := Shape(Catalog, "", CategoryAll, types.SortNewest)
	if len(got) != len(Catalog) {
		t.Fatalf("got %d projects, want %d", len(got), len(Catalog))
	}
	max := Catalog[0].Date
	for _, p := range Catalog {
		if p.Date > max {
			max = p.Date
		}
	}
	if got[0].Date != max {
		t.Errorf("first result date = %s, want catalog max %s", got[0].Date, max)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date < got[i].Date {
			t.Errorf("results not descending at %d: %s < %s", i, got[i-1].Date, got[i].Date)
		}
	}
}

func TestShapeOldestFirst(t *testing.T) {
	got := Shape(Catalog, "", CategoryAll, types.SortOldest)
	for i := 1; i < len(got); i++ {
		if got[i-1].Date > got[i].Date {
			t.Errorf("results not ascending at %d: %s > %s", i, got[i-1].Date, got[i].Date)
		}
	}
}

func TestShapeQueryMatchesTitleAndDescription(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"storefront", 1}, // title, case-insensitive
		{"CSV", 1},        // description
		{"  visualizer ", 1},
		{"", 4},
		{"zzz-no-match", 0},
	}
	for _, tt := range tests {
		got := Shape(Catalog, tt.query, CategoryAll, types.SortNewest)
		if len(got) != tt.want {
			t.Errorf("Shape(query=%q) returned %d projects %v, want %d", tt.query, len(got), titles(got), tt.want)
		}
	}
}

func TestShapeEmptyCombination(t *testing.T) {
	got := Shape(Catalog, "storefront", "data", types.SortNewest)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", titles(got))
	}
}

func TestShapeDoesNotMutateCatalog(t *testing.T) {
	before := titles(Catalog)
	Shape(Catalog, "", CategoryAll, types.SortTitle)
	after := titles(Catalog)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("catalog order changed: %v -> %v", before, after)
		}
	}
}
