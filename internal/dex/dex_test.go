package dex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/pkg/models"
)

func fixture() []models.Pokemon {
	return []models.Pokemon{
		{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}},
		{ID: 4, Name: "charmander", Types: []string{"fire"}},
		{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}},
		{ID: 7, Name: "squirtle", Types: []string{"water"}},
		{ID: 12, Name: "butterfree", Types: []string{"bug", "flying"}},
		{ID: 25, Name: "Pikachu", Types: []string{"electric"}},
		{ID: 43, Name: "oddish", Types: []string{"grass", "poison"}},
	}
}

func ids(ps []models.Pokemon) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestCategories(t *testing.T) {
	got := Categories(fixture())
	want := []string{"all", "grass", "poison", "fire", "flying", "water", "bug", "electric"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
}

func TestCategories_ExactlyPresentLabels(t *testing.T) {
	records := fixture()
	got := Categories(records)

	assert.Equal(t, AllCategory, got[0])

	seen := map[string]int{}
	for _, c := range got {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "duplicate category %q", c)
	}

	present := map[string]bool{}
	for _, p := range records {
		for _, typ := range p.Types {
			present[typ] = true
		}
	}
	assert.Len(t, got, len(present)+1)
	for _, c := range got[1:] {
		assert.True(t, present[c], "category %q is not carried by any record", c)
	}
}

func TestCategories_Empty(t *testing.T) {
	assert.Equal(t, []string{"all"}, Categories(nil))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		want     []int
	}{
		{"everything", "", "all", []int{1, 4, 6, 7, 12, 25, 43}},
		{"substring", "char", "all", []int{4, 6}},
		{"case insensitive search", "PIKA", "all", []int{25}},
		{"case insensitive name", "pikachu", "all", []int{25}},
		{"category only", "", "flying", []int{6, 12}},
		{"search and category", "char", "flying", []int{6}},
		{"second type matches", "", "poison", []int{1, 43}},
		{"category is exact", "", "fly", []int{}},
		{"category is case sensitive", "", "Fire", []int{}},
		{"no match", "mew", "all", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixture(), tt.search, tt.category)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_MatchesPredicateExhaustively(t *testing.T) {
	records := fixture()
	searches := []string{"", "a", "AR", "saur", "z", "Pi", "e"}
	for _, s := range searches {
		for _, c := range Categories(records) {
			got := Filter(records, s, c)

			var want []int
			for _, p := range records {
				nameOK := strings.Contains(strings.ToLower(p.Name), strings.ToLower(s))
				catOK := c == "all"
				for _, typ := range p.Types {
					if typ == c {
						catOK = true
					}
				}
				if nameOK && catOK {
					want = append(want, p.ID)
				}
			}
			if want == nil {
				want = []int{}
			}
			assert.Equal(t, want, ids(got), "search=%q category=%q", s, c)
		}
	}
}

func TestFilter_IdempotentAndNonMutating(t *testing.T) {
	records := fixture()
	before := fixture()

	first := Filter(records, "ar", "fire")
	second := Filter(records, "ar", "fire")

	assert.Equal(t, first, second)
	if diff := cmp.Diff(before, records); diff != "" {
		t.Errorf("source mutated (-before +after):\n%s", diff)
	}

	// writing through the result must not reach the source
	require.NotEmpty(t, first)
	first[0].Name = "changed"
	first[0].Types[0] = "changed"
	assert.Equal(t, before, records)
}
