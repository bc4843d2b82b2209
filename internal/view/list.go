package view

import (
	"context"

	"go.uber.org/zap"

	"pokedex/internal/pokeapi"
	"pokedex/pkg/models"
)

// List is the static card grid of the first page.
type List struct {
	lifecycle
	api     pokeapi.API
	limit   int
	records []models.Pokemon
}

func NewList(api pokeapi.API, limit int, log *zap.Logger) *List {
	v := &List{api: api, limit: limit}
	v.init("list", log)
	return v
}

// Activate fetches the page once. Nothing is published unless every record
// resolved.
func (v *List) Activate(ctx context.Context) {
	if !v.begin() {
		return
	}
	records, err := v.api.FetchPage(ctx, v.limit)
	if err != nil {
		v.fail(ctx, err)
		return
	}

	v.mu.Lock()
	v.records = records
	v.phase = Rendered
	v.mu.Unlock()
	v.log.Debug("rendered", zap.Int("records", len(records)))
}

// Records returns a copy of the loaded grid.
func (v *List) Records() []models.Pokemon {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]models.Pokemon(nil), v.records...)
}
