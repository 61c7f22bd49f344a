package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/socialchef/moodchef/internal/logger"
	"github.com/socialchef/moodchef/internal/metrics"
	"github.com/socialchef/moodchef/internal/recipe"
	"github.com/socialchef/moodchef/internal/services/ai"
	"github.com/socialchef/moodchef/internal/store"
)

// RecipeRequester turns a prompt into a parsed recipe draft.
type RecipeRequester interface {
	RequestRecipe(ctx context.Context, prompt, mood string) (*recipe.Draft, error)
}

// ImageRequester returns an image reference for a draft. It never fails.
type ImageRequester interface {
	RequestImage(ctx context.Context, d recipe.Draft) string
}

// Outcome is one generated recipe. When the store write failed and store
// errors are tolerated, Saved is false, SaveErr holds the cause and Recipe
// has id 0.
type Outcome struct {
	Recipe  recipe.Recipe
	Saved   bool
	SaveErr error
}

// Generator runs the prompt, text, image and persist pipeline.
type Generator struct {
	text                RecipeRequester
	images              ImageRequester
	store               store.Store
	tolerateStoreErrors bool
	now                 func() time.Time
}

type Option func(*Generator)

// WithTolerateStoreErrors returns unsaved recipes instead of failing when
// the insert fails.
func WithTolerateStoreErrors(tolerate bool) Option {
	return func(g *Generator) { g.tolerateStoreErrors = tolerate }
}

func New(text RecipeRequester, images ImageRequester, s store.Store, opts ...Option) *Generator {
	g := &Generator{
		text:   text,
		images: images,
		store:  s,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces and persists one recipe for mood. cuisine may be empty.
// Remote calls are detached from ctx cancellation so a client disconnect
// does not abort a generation that is already paid for.
func (g *Generator) Generate(ctx context.Context, mood, cuisine string) (*Outcome, error) {
	startTime := time.Now()
	mood = recipe.NormalizeMood(mood)
	work := context.WithoutCancel(ctx)

	draft, err := g.text.RequestRecipe(work, ai.BuildRecipePrompt(mood, cuisine), mood)
	if err != nil {
		metrics.RecordGeneration(ctx, mood, "text_error", startTime)
		return nil, err
	}

	withImage := draft.WithImage(g.images.RequestImage(work, *draft))

	saved, err := g.store.Insert(work, withImage)
	if err != nil {
		metrics.RecordStoreError(ctx, "insert")
		if !g.tolerateStoreErrors {
			metrics.RecordGeneration(ctx, mood, "store_error", startTime)
			return nil, err
		}

		slog.ErrorContext(ctx, "Recipe generated but not saved",
			"mood", mood,
			"recipe", withImage.Name,
			"error", err,
			logger.WithTraceContext(ctx))
		metrics.RecordGeneration(ctx, mood, "unsaved", startTime)
		return &Outcome{Recipe: withImage.Materialize(0, g.now()), SaveErr: err}, nil
	}

	slog.InfoContext(ctx, "Recipe generated",
		"mood", mood,
		"recipe_id", saved.ID,
		"duration_ms", time.Since(startTime).Milliseconds(),
		logger.WithTraceContext(ctx))
	metrics.RecordGeneration(ctx, mood, "ok", startTime)
	return &Outcome{Recipe: saved, Saved: true}, nil
}

// Suggestions generates count recipes one after another. The first failure
// aborts the batch and nothing generated so far is returned.
func (g *Generator) Suggestions(ctx context.Context, mood string, count int) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, count)
	for i := range count {
		out, err := g.Generate(ctx, mood, "")
		if err != nil {
			return nil, fmt.Errorf("suggestion %d of %d: %w", i+1, count, err)
		}
		outcomes = append(outcomes, *out)
	}
	return outcomes, nil
}

// Recipes flattens outcomes into the recipes they carry.
func Recipes(outcomes []Outcome) []recipe.Recipe {
	out := make([]recipe.Recipe, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Recipe
	}
	return out
}
