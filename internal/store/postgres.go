package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/recipe"
)

const createRecipesTable = `
CREATE TABLE IF NOT EXISTS recipes (
	id               BIGSERIAL PRIMARY KEY,
	name             TEXT NOT NULL,
	ingredients      TEXT NOT NULL DEFAULT '',
	instructions     TEXT NOT NULL DEFAULT '',
	cooking_time     TEXT NOT NULL DEFAULT '',
	difficulty_level TEXT NOT NULL DEFAULT 'medium',
	cuisine_type     TEXT NOT NULL DEFAULT '',
	category         TEXT NOT NULL DEFAULT '',
	mood             TEXT NOT NULL,
	image_url        TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS recipes_mood_idx ON recipes (mood);
`

const insertRecipe = `
INSERT INTO recipes (name, ingredients, instructions, cooking_time, difficulty_level, cuisine_type, category, mood, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at`

const selectRecipesByMood = `
SELECT id, name, ingredients, instructions, cooking_time, difficulty_level, cuisine_type, category, mood, image_url, created_at
FROM recipes
WHERE mood = lower($1)
ORDER BY id`

// PostgresStore stores recipes in the recipes table. Every call borrows one
// pooled connection for a single statement.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the recipes table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createRecipesTable); err != nil {
		return apperrors.NewStorageError("failed to create recipes table", err)
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, draft recipe.Draft) (recipe.Recipe, error) {
	var (
		id        int64
		createdAt time.Time
	)
	err := s.pool.QueryRow(ctx, insertRecipe,
		draft.Name,
		string(draft.Ingredients),
		string(draft.Instructions),
		string(draft.CookingTime),
		string(recipe.ParseDifficulty(string(draft.DifficultyLevel))),
		draft.CuisineType,
		draft.Category,
		recipe.NormalizeMood(draft.Mood),
		draft.ImageURL,
	).Scan(&id, &createdAt)
	if err != nil {
		return recipe.Recipe{}, apperrors.NewStorageError("failed to insert recipe", err)
	}

	return draft.Materialize(id, createdAt), nil
}

func (s *PostgresStore) FindByMood(ctx context.Context, mood string) ([]recipe.Recipe, error) {
	rows, err := s.pool.Query(ctx, selectRecipesByMood, recipe.NormalizeMood(mood))
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query recipes", err)
	}

	recipes, err := pgx.CollectRows(rows, scanRecipe)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read recipes", err)
	}
	return recipes, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM recipes").Scan(&n); err != nil {
		return 0, apperrors.NewStorageError("failed to count recipes", err)
	}
	return n, nil
}

func scanRecipe(row pgx.CollectableRow) (recipe.Recipe, error) {
	var (
		r          recipe.Recipe
		difficulty string
	)
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Ingredients,
		&r.Instructions,
		&r.CookingTime,
		&difficulty,
		&r.CuisineType,
		&r.Category,
		&r.Mood,
		&r.ImageURL,
		&r.CreatedAt,
	)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("scan recipe: %w", err)
	}
	r.DifficultyLevel = recipe.Difficulty(difficulty)
	return r, nil
}
