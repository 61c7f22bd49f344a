package image

import (
	"context"
	"log/slog"

	"github.com/socialchef/moodchef/internal/cache"
	"github.com/socialchef/moodchef/internal/logger"
	"github.com/socialchef/moodchef/internal/metrics"
	"github.com/socialchef/moodchef/internal/recipe"
)

// Strategy produces an image reference (URL, static path or data URI) for
// a recipe draft.
type Strategy interface {
	Name() string
	Produce(ctx context.Context, d recipe.Draft) (string, error)
}

// Client produces images for recipes and never fails: every error degrades
// to SelectFallbackImage.
type Client struct {
	strategy Strategy
	cache    *cache.ImageCache
}

// NewClient creates an image client. A nil strategy always serves fallback
// images; a nil cache disables caching.
func NewClient(strategy Strategy, imageCache *cache.ImageCache) *Client {
	return &Client{strategy: strategy, cache: imageCache}
}

func (c *Client) RequestImage(ctx context.Context, d recipe.Draft) string {
	if c.strategy == nil {
		metrics.RecordImageFallback(ctx, "fallback", "disabled")
		return SelectFallbackImage(d.Name)
	}

	if ref := c.cache.Get(ctx, d.Name); ref != "" {
		slog.DebugContext(ctx, "Image cache hit", "recipe", d.Name)
		return ref
	}

	ref, err := c.strategy.Produce(ctx, d)
	if err != nil {
		slog.WarnContext(ctx, "Image generation failed, using fallback",
			"strategy", c.strategy.Name(),
			"recipe", d.Name,
			"error", err,
			logger.WithTraceContext(ctx))
		metrics.RecordImageFallback(ctx, c.strategy.Name(), "error")
		return SelectFallbackImage(d.Name)
	}

	c.cache.Set(ctx, d.Name, ref)
	return ref
}
