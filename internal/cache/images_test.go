package cache

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestImageCache_NilClientIsNoop(t *testing.T) {
	c := NewImageCache(nil)
	ctx := context.Background()

	assert.False(t, c.Enabled())
	c.Set(ctx, "Sunny Bowl", "/static/images/sunny-bowl.png")
	assert.Empty(t, c.Get(ctx, "Sunny Bowl"))
}

func TestImageCache_KeyIsNormalized(t *testing.T) {
	c := NewImageCache(nil)

	assert.Equal(t, c.makeKey("Sunny Bowl"), c.makeKey("  sunny bowl "))
	assert.NotEqual(t, c.makeKey("Sunny Bowl"), c.makeKey("Rainy Soup"))
	assert.Contains(t, c.makeKey("x"), "moodchef:image:")
}

func TestNewRedisClient_EmptyURL(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-url://")
	assert.Error(t, err)
}

func TestImageCache_Redis(t *testing.T) {
	if os.Getenv("REDIS_INTEGRATION") == "" {
		t.Skip("set REDIS_INTEGRATION=1 to run against a Redis container")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "redis")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, endpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := NewImageCache(client)
	require.True(t, c.Enabled())

	c.Set(ctx, "Sunny Bowl", "https://cdn.example.com/sunny.png")
	assert.Equal(t, "https://cdn.example.com/sunny.png", c.Get(ctx, "sunny bowl"))

	c.Set(ctx, "Data Dish", "data:image/png;base64,AAAA")
	assert.Empty(t, c.Get(ctx, "Data Dish"))

	assert.Empty(t, c.Get(ctx, "Rainy Soup"))
}
