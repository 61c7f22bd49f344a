package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ImageTTL is how long a generated image reference stays cached.
const ImageTTL = 24 * time.Hour

// ImageCache maps recipe names to previously generated image references.
type ImageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewImageCache creates an image cache. A nil client disables caching.
func NewImageCache(client *redis.Client) *ImageCache {
	return &ImageCache{
		client: client,
		prefix: "moodchef:image:",
		ttl:    ImageTTL,
	}
}

// Enabled reports whether a Redis client is configured.
func (c *ImageCache) Enabled() bool {
	return c != nil && c.client != nil
}

// makeKey hashes the lower-cased, trimmed recipe name.
func (c *ImageCache) makeKey(name string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(name))))
	return fmt.Sprintf("%s%x", c.prefix, hash)
}

// Get returns the cached reference for name. Misses and Redis failures both
// return "".
func (c *ImageCache) Get(ctx context.Context, name string) string {
	if !c.Enabled() {
		return ""
	}

	ref, err := c.client.Get(ctx, c.makeKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return ""
	}
	if err != nil {
		slog.WarnContext(ctx, "Redis image cache get failed", "error", err)
		return ""
	}
	return ref
}

// Set stores ref for name. Data URIs are never cached.
func (c *ImageCache) Set(ctx context.Context, name, ref string) {
	if !c.Enabled() || ref == "" || strings.HasPrefix(ref, "data:") {
		return
	}

	if err := c.client.Set(ctx, c.makeKey(name), ref, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "Redis image cache set failed", "error", err)
	}
}
