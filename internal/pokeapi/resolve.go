package pokeapi

import (
	"context"

	"golang.org/x/sync/errgroup"

	"pokedex/pkg/models"
)

// Resolver turns one summary locator into a record.
type Resolver interface {
	GetPokemon(ctx context.Context, locator string) (*models.Pokemon, error)
}

// Resolve fetches every summary concurrently and waits for all of them.
// The result keeps request order regardless of completion order. A single
// failure fails the whole batch: the first error is returned with no
// records, and the remaining requests see a cancelled context.
func Resolve(ctx context.Context, r Resolver, summaries []models.Summary) ([]models.Pokemon, error) {
	out := make([]models.Pokemon, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range summaries {
		i, s := i, s
		g.Go(func() error {
			p, err := r.GetPokemon(gctx, s.URL)
			if err != nil {
				return err
			}
			out[i] = *p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
