package recipe

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/logger"
	"github.com/socialchef/moodchef/internal/recipe"
)

// Client turns a prompt into a recipe draft using a TextProvider.
type Client struct {
	provider TextProvider
	name     string
}

// NewClient wraps a provider. name is used in logs and error messages.
func NewClient(provider TextProvider, name string) *Client {
	return &Client{provider: provider, name: name}
}

// RequestRecipe generates text for prompt and parses it into a draft tagged
// with the lower-cased mood. Errors are UpstreamError or MalformedRecipeJSON.
func (c *Client) RequestRecipe(ctx context.Context, prompt, mood string) (*recipe.Draft, error) {
	raw, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			err = apperrors.NewUpstreamError(c.name, 0, c.name+" request failed", err)
		}
		slog.ErrorContext(ctx, "Text generation failed", "provider", c.name, "error", err, logger.WithTraceContext(ctx))
		return nil, err
	}

	slog.DebugContext(ctx, "Raw model response", "provider", c.name, "response", raw)

	draft, err := ParseDraft(raw)
	if err != nil {
		slog.WarnContext(ctx, "Could not parse recipe from model output",
			"provider", c.name,
			"error", err,
			"response_chars", len(raw),
			logger.WithTraceContext(ctx))
		return nil, err
	}

	draft.Mood = recipe.NormalizeMood(mood)
	return draft, nil
}
