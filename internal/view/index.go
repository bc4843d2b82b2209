package view

import (
	"context"

	"go.uber.org/zap"

	"pokedex/internal/dex"
	"pokedex/internal/pokeapi"
	"pokedex/pkg/models"
)

// Index is the searchable, type-filterable grid with its detail modal.
// Search, Category and the selection are plain fields replaced in place;
// the visible set is recomputed from them on every read.
type Index struct {
	lifecycle
	api        pokeapi.API
	limit      int
	records    []models.Pokemon
	categories []string

	search   string
	category string
	selected *models.Pokemon
}

func NewIndex(api pokeapi.API, limit int, log *zap.Logger) *Index {
	v := &Index{api: api, limit: limit, category: dex.AllCategory}
	v.init("index", log)
	return v
}

// Activate loads the page once and derives the category set from it.
func (v *Index) Activate(ctx context.Context) {
	if !v.begin() {
		return
	}
	records, err := v.api.FetchPage(ctx, v.limit)
	if err != nil {
		v.fail(ctx, err)
		return
	}
	categories := dex.Categories(records)

	v.mu.Lock()
	v.records = records
	v.categories = categories
	v.phase = Rendered
	v.mu.Unlock()
	v.log.Debug("rendered", zap.Int("records", len(records)), zap.Int("categories", len(categories)))
}

func (v *Index) SetSearch(s string) {
	v.mu.Lock()
	v.search = s
	v.mu.Unlock()
}

// SetCategory replaces the category filter. An empty value means "all".
func (v *Index) SetCategory(c string) {
	if c == "" {
		c = dex.AllCategory
	}
	v.mu.Lock()
	v.category = c
	v.mu.Unlock()
}

// Select makes the loaded record with the given id the only selection. It
// reports false, leaving the selection as it was, when no such record is
// loaded.
func (v *Index) Select(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.records {
		if v.records[i].ID == id {
			p := v.records[i].Clone()
			v.selected = &p
			return true
		}
	}
	return false
}

func (v *Index) ClearSelection() {
	v.mu.Lock()
	v.selected = nil
	v.mu.Unlock()
}

// Snapshot is a consistent read of everything the renderer needs.
type Snapshot struct {
	Phase      Phase            `json:"phase"`
	Search     string           `json:"search"`
	Category   string           `json:"category"`
	Categories []string         `json:"categories"`
	Items      []models.Pokemon `json:"items"`
	Total      int              `json:"total"`
	Selected   *models.Pokemon  `json:"selected"`
}

func (v *Index) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	s := Snapshot{
		Phase:      v.phase,
		Search:     v.search,
		Category:   v.category,
		Categories: append([]string{}, v.categories...),
		Items:      dex.Filter(v.records, v.search, v.category),
		Total:      len(v.records),
	}
	if v.selected != nil {
		sel := v.selected.Clone()
		s.Selected = &sel
	}
	return s
}

// Visible is the filtered grid for the current inputs.
func (v *Index) Visible() []models.Pokemon {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return dex.Filter(v.records, v.search, v.category)
}

func (v *Index) Categories() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]string(nil), v.categories...)
}

func (v *Index) Selected() *models.Pokemon {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.selected == nil {
		return nil
	}
	p := v.selected.Clone()
	return &p
}
