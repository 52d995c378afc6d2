// Package catalog holds the static category and facility catalogs and the
// filter that derives the visible facility list from a selected category.
package catalog

import "residence-facilities/internal/domain"

// Categories returns the category catalog in display order. The first entry
// is always the reserved "all" category.
func Categories() []domain.Category {
	return append([]domain.Category(nil), categories...)
}

// Facilities returns a copy of the facility catalog in display order.
func Facilities() []domain.Facility {
	out := make([]domain.Facility, len(facilities))
	for i, f := range facilities {
		out[i] = f.Clone()
	}
	return out
}

// Category looks up a category descriptor by exact id.
func Category(id string) (domain.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Counts returns the number of facilities tagged with each category id.
// The "all" key holds the total.
func Counts(items []domain.Facility) map[string]int {
	counts := make(map[string]int, len(categories))
	counts[domain.CategoryAll] = len(items)
	for _, f := range items {
		if f.Category == domain.CategoryAll {
			continue
		}
		counts[f.Category]++
	}
	return counts
}
