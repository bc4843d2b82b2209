package view

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pokedex/internal/pokeapi"
	"pokedex/pkg/models"
)

// Detail is the single-record page keyed by the id in the navigation path.
type Detail struct {
	lifecycle
	api    pokeapi.API
	id     string
	record *models.PokemonDetail
}

func NewDetail(api pokeapi.API, id string, log *zap.Logger) *Detail {
	id = strings.TrimSpace(id)
	v := &Detail{api: api, id: id}
	v.init("detail", log, zap.String("id", id))
	return v
}

func (v *Detail) ID() string { return v.id }

// Activate issues one detail request. Without an id it does nothing and the
// view stays Idle for good.
func (v *Detail) Activate(ctx context.Context) {
	if v.id == "" {
		return
	}
	if !v.begin() {
		return
	}
	d, err := v.api.GetDetail(ctx, v.id)
	if err != nil {
		v.fail(ctx, err)
		return
	}

	v.mu.Lock()
	v.record = d
	v.phase = Rendered
	v.mu.Unlock()
}

// Record is nil until the view is Rendered.
func (v *Detail) Record() *models.PokemonDetail {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.record
}
