// Package projects shapes the fixed portfolio catalog for display:
// category filter, free-text search, and three sort orders.
package projects

import (
	"sort"
	"strings"

	"vitrine/internal/types"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Catalog is the fixed project list. It is never mutated at runtime.
var Catalog = []types.Project{
	{ID: 1, Title: "Personal Site", Date: "2025-08-10", Category: types.CategoryWeb, Description: "A multipage portfolio with responsive layout."},
	{ID: 2, Title: "Data Visualizer", Date: "2025-07-02", Category: types.CategoryData, Description: "Charts from CSV using client-side rendering."},
	{ID: 3, Title: "Micro Tools", Date: "2025-09-15", Category: types.CategoryOther, Description: "Small JS utilities packaged for reuse."},
	{ID: 4, Title: "Web Storefront", Date: "2025-06-01", Category: types.CategoryWeb, Description: "Catalog grid with filter/sort and cart demo."},
}

// Shape filters and orders the given catalog. Category must match exactly
// unless it is CategoryAll. A non-empty query matches case-insensitively
// against title plus description. The input slice is not modified; an
// empty result means the caller should show its empty state.
func Shape(catalog []types.Project, query, category string, sortKey types.SortMode) []types.Project {
	list := make([]types.Project, 0, len(catalog))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range catalog {
		if category != CategoryAll && category != "" && string(p.Category) != category {
			continue
		}
		if q != "" {
			haystack := strings.ToLower(p.Title + " " + p.Description)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		list = append(list, p)
	}

	switch sortKey {
	case types.SortOldest:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	case types.SortTitle:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	default: // newest
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date > list[j].Date })
	}
	return list
}

// Categories returns the filter choices in display order.
func Categories() []string {
	return []string{CategoryAll, string(types.CategoryWeb), string(types.CategoryData), string(types.CategoryOther)}
}

// SortModes returns the sort choices in display order.
func SortModes() []types.SortMode {
	return []types.SortMode{types.SortNewest, types.SortOldest, types.SortTitle}
}
