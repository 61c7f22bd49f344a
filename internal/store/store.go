package store

import (
	"context"
	"log/slog"
	"math/rand/v2"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/recipe"
)

// Store persists recipes. Implementations lower-case moods on write and
// match them case-insensitively on read.
type Store interface {
	// Insert assigns an id and created_at and returns the stored row.
	Insert(ctx context.Context, draft recipe.Draft) (recipe.Recipe, error)
	// FindByMood returns every recipe for the mood. An empty result is not an error.
	FindByMood(ctx context.Context, mood string) ([]recipe.Recipe, error)
	Count(ctx context.Context) (int64, error)
}

// PickRandom returns a uniformly random element of candidates.
func PickRandom(candidates []recipe.Recipe) (recipe.Recipe, error) {
	if len(candidates) == 0 {
		return recipe.Recipe{}, apperrors.NewEmptyCandidateSetError("no candidate recipes to pick from")
	}
	return candidates[rand.IntN(len(candidates))], nil
}

// SeedIfEmpty inserts samples only when the store holds no rows and returns
// how many were inserted. Two processes starting at once may both seed.
func SeedIfEmpty(ctx context.Context, s Store, samples []recipe.Draft) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Debug("Recipe store already populated, skipping seed", "rows", n)
		return 0, nil
	}

	inserted := 0
	for _, d := range samples {
		if _, err := s.Insert(ctx, d); err != nil {
			return inserted, err
		}
		inserted++
	}

	slog.Info("Seeded recipe store", "rows", inserted)
	return inserted, nil
}
