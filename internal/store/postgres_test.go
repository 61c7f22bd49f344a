package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/socialchef/moodchef/internal/recipe"
)

// setupPostgres starts a throwaway PostgreSQL container. Docker is required,
// so the test only runs when POSTGRES_INTEGRATION is set.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("POSTGRES_INTEGRATION") == "" {
		t.Skip("set POSTGRES_INTEGRATION=1 to run PostgreSQL integration tests")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://test:test@%s:%s/test?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestPostgresStore(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	s := NewPostgresStore(pool)
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Migrate(ctx), "migrate must be idempotent")

	n, err := SeedIfEmpty(ctx, s, SampleRecipes())
	require.NoError(t, err)
	assert.Equal(t, len(SampleRecipes()), n)

	upper, err := s.FindByMood(ctx, "HAPPY")
	require.NoError(t, err)
	lower, err := s.FindByMood(ctx, "happy")
	require.NoError(t, err)
	assert.Len(t, lower, 3)
	assert.Equal(t, lower, upper)

	stored, err := s.Insert(ctx, recipe.Draft{
		Name:            "Midnight Ramen",
		Ingredients:     "- noodles",
		DifficultyLevel: "HARD",
		Mood:            "Sad",
	})
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, "sad", stored.Mood)
	assert.Equal(t, recipe.DifficultyHard, stored.DifficultyLevel)
	assert.Nil(t, stored.ImageURL)

	sad, err := s.FindByMood(ctx, "sad")
	require.NoError(t, err)
	assert.Len(t, sad, 4)

	none, err := s.FindByMood(ctx, "unknownmood")
	require.NoError(t, err)
	assert.Empty(t, none)
}
