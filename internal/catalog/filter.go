package catalog

import "residence-facilities/internal/domain"

// Filter returns the facilities whose category equals selection, preserving
// their relative order. The "all" selection returns items itself. Matching is
// exact and case-sensitive; a selection with no matches yields an empty,
// non-nil slice. items is never modified.
func Filter(items []domain.Facility, selection string) []domain.Facility {
	if selection == domain.CategoryAll {
		return items
	}
	out := make([]domain.Facility, 0, len(items))
	for _, f := range items {
		if f.Category == selection {
			out = append(out, f)
		}
	}
	return out
}
