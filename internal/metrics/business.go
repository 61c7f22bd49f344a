package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("moodchef/business")

	// Recipe metrics
	RecipesGeneratedTotal metric.Int64Counter
	RecipesServedTotal    metric.Int64Counter
	GenerationDuration    metric.Float64Histogram

	// External API metrics
	ExternalAPICallsTotal metric.Int64Counter
	ExternalAPIDuration   metric.Float64Histogram

	// Image metrics
	ImageFallbackTotal metric.Int64Counter

	// Storage metrics
	StoreErrorsTotal metric.Int64Counter
)

func Init() error {
	var err error

	RecipesGeneratedTotal, err = meter.Int64Counter(
		"recipe.generated.total",
		metric.WithDescription("Total number of recipes generated from a mood"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	RecipesServedTotal, err = meter.Int64Counter(
		"recipe.served.total",
		metric.WithDescription("Total number of recipes served, by source"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	GenerationDuration, err = meter.Float64Histogram(
		"recipe.generation.duration",
		metric.WithDescription("Duration of the full mood to recipe pipeline"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 2, 5, 10, 30, 60, 90),
	)
	if err != nil {
		return err
	}

	ExternalAPICallsTotal, err = meter.Int64Counter(
		"external.api.calls.total",
		metric.WithDescription("Total number of external API calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ExternalAPIDuration, err = meter.Float64Histogram(
		"external.api.duration",
		metric.WithDescription("Duration of external API calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	ImageFallbackTotal, err = meter.Int64Counter(
		"image.fallback.total",
		metric.WithDescription("Total number of curated fallback images served instead of generated ones"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	StoreErrorsTotal, err = meter.Int64Counter(
		"store.errors.total",
		metric.WithDescription("Total number of recipe store failures"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	return nil
}

// The helpers below are safe to call before Init; instruments that were
// never created are skipped.

// RecordExternalCall records one call to a remote API.
func RecordExternalCall(ctx context.Context, provider, outcome string, started time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	)
	if ExternalAPIDuration != nil {
		ExternalAPIDuration.Record(ctx, time.Since(started).Seconds(), attrs)
	}
	if ExternalAPICallsTotal != nil {
		ExternalAPICallsTotal.Add(ctx, 1, attrs)
	}
}

// RecordGeneration records one run of the generation pipeline.
func RecordGeneration(ctx context.Context, mood, outcome string, started time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("mood", mood),
		attribute.String("outcome", outcome),
	)
	if GenerationDuration != nil {
		GenerationDuration.Record(ctx, time.Since(started).Seconds(), attrs)
	}
	if RecipesGeneratedTotal != nil {
		RecipesGeneratedTotal.Add(ctx, 1, attrs)
	}
}

// RecordServed counts a recipe returned to a client.
func RecordServed(ctx context.Context, source string) {
	if RecipesServedTotal != nil {
		RecipesServedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
	}
}

// RecordImageFallback counts a fallback image, tagged with why it was needed.
func RecordImageFallback(ctx context.Context, strategy, reason string) {
	if ImageFallbackTotal != nil {
		ImageFallbackTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("strategy", strategy),
			attribute.String("reason", reason),
		))
	}
}

// RecordStoreError counts a failed store operation.
func RecordStoreError(ctx context.Context, op string) {
	if StoreErrorsTotal != nil {
		StoreErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	}
}
