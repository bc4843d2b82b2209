// Package dex holds the client-side aggregation over a loaded page of
// records: the derived category set and the search/category filter.
package dex

import (
	"strings"

	"pokedex/pkg/models"
)

// AllCategory is the wildcard that disables category filtering.
const AllCategory = "all"

// Categories returns AllCategory followed by every distinct type label in
// records, in order of first occurrence.
func Categories(records []models.Pokemon) []string {
	seen := make(map[string]struct{})
	out := []string{AllCategory}
	for _, p := range records {
		for _, t := range p.Types {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Filter returns the records whose name contains search (case-insensitive)
// and whose types include category, unless category is AllCategory. It
// allocates a new slice of cloned records; records is left untouched and
// order is kept.
func Filter(records []models.Pokemon, search, category string) []models.Pokemon {
	needle := strings.ToLower(search)
	out := make([]models.Pokemon, 0, len(records))
	for _, p := range records {
		if Match(p, needle, category) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Match is the per-record predicate behind Filter. needle must already be
// lower-cased.
func Match(p models.Pokemon, needle, category string) bool {
	if !strings.Contains(strings.ToLower(p.Name), needle) {
		return false
	}
	return category == AllCategory || p.HasType(category)
}
