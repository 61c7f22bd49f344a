package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/socialchef/moodchef/internal/api"
	"github.com/socialchef/moodchef/internal/cache"
	"github.com/socialchef/moodchef/internal/config"
	"github.com/socialchef/moodchef/internal/db"
	"github.com/socialchef/moodchef/internal/httpclient"
	"github.com/socialchef/moodchef/internal/logger"
	"github.com/socialchef/moodchef/internal/metrics"
	"github.com/socialchef/moodchef/internal/sentry"
	"github.com/socialchef/moodchef/internal/services/generator"
	"github.com/socialchef/moodchef/internal/services/image"
	"github.com/socialchef/moodchef/internal/services/recipe"
	"github.com/socialchef/moodchef/internal/services/storage"
	"github.com/socialchef/moodchef/internal/store"
	"github.com/socialchef/moodchef/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer sentry.Recover()

	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Env))

	shutdownTelemetry, err := telemetry.InitTelemetry(ctx, cfg.ServiceName, cfg.ServiceVersion, cfg.Env,
		cfg.OtelExporterOTLPEndpoint, telemetry.ParseHeaders(cfg.OtelExporterOTLPHeaders))
	if err != nil {
		slog.Warn("Failed to init telemetry", "error", err)
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdownTelemetry(sctx); err != nil {
				slog.Warn("Telemetry shutdown failed", "error", err)
			}
		}()
	}

	if cfg.SentryDSN == "" && cfg.IsProduction() {
		slog.Warn("SENTRY_DSN is not set, errors will not be reported")
	}
	if err := sentry.Init(sentry.Options{
		DSN:            cfg.SentryDSN,
		Env:            cfg.Env,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		RecipeSource:   cfg.RecipeSource,
	}); err != nil {
		slog.Warn("Failed to init Sentry", "error", err)
	}
	defer sentry.Flush(2 * time.Second)

	if err := metrics.Init(); err != nil {
		slog.Warn("Failed to init business metrics", "error", err)
	}

	recipeStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedOnStart {
		if _, err := store.SeedIfEmpty(ctx, recipeStore, store.SampleRecipes()); err != nil {
			slog.Error("Failed to seed recipe store", "error", err)
		}
	}

	var gen api.RecipeGenerator
	if cfg.RecipeSource == config.SourceGenerate {
		g, closeGen, err := newGenerator(ctx, cfg, recipeStore)
		if err != nil {
			return err
		}
		defer closeGen()
		gen = g
	}

	server := api.NewServer(cfg.RecipeSource, gen, recipeStore, cfg.StaticDir)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(server, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server",
			"port", cfg.Port,
			"source", cfg.RecipeSource,
			"store", cfg.StoreDriver,
			"text_provider", cfg.Generation.Provider,
			"image_strategy", cfg.Image.Strategy)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(sctx)
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		return store.NewMemoryStore(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBTracing)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	pg := store.NewPostgresStore(pool)
	if err := pg.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}
	return pg, pool.Close, nil
}

func newGenerator(ctx context.Context, cfg *config.Config, s store.Store) (*generator.Generator, func(), error) {
	provider, err := recipe.NewProvider(ctx, cfg.Generation,
		cfg.HuggingFaceKey, cfg.GroqKey, cfg.GeminiKey, httpclient.NewTextClient())
	if err != nil {
		return nil, nil, fmt.Errorf("create text provider: %w", err)
	}
	closeProvider := func() {}
	if c, ok := provider.(io.Closer); ok {
		closeProvider = func() { _ = c.Close() }
	}

	strategy, err := newImageStrategy(ctx, cfg)
	if err != nil {
		closeProvider()
		return nil, nil, err
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Warn("Image cache disabled", "error", err)
		redisClient = nil
	}

	cleanup := func() {
		closeProvider()
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}

	g := generator.New(
		recipe.NewClient(provider, cfg.Generation.Provider),
		image.NewClient(strategy, cache.NewImageCache(redisClient)),
		s,
		generator.WithTolerateStoreErrors(cfg.TolerateStoreErrors),
	)
	return g, cleanup, nil
}

func newImageStrategy(ctx context.Context, cfg *config.Config) (image.Strategy, error) {
	imageClient := httpclient.NewImageClient()

	switch cfg.Image.Strategy {
	case config.StrategyDataURI:
		return image.NewStabilityStrategy(cfg.StabilityKey, imageClient), nil
	case config.StrategyFile:
		sink, err := newSink(ctx, cfg, imageClient)
		if err != nil {
			return nil, err
		}
		return image.NewFileStrategy(cfg.HuggingFaceKey, "", imageClient, sink), nil
	default:
		return nil, nil
	}
}

func newSink(ctx context.Context, cfg *config.Config, client *http.Client) (storage.Sink, error) {
	switch cfg.Image.Sink {
	case config.SinkS3:
		sink, err := storage.NewS3Sink(ctx, cfg.S3BucketName, cfg.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("create s3 sink: %w", err)
		}
		return sink, nil
	case config.SinkSupabase:
		return storage.NewSupabaseSink(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.Image.Bucket, client), nil
	default:
		return storage.NewLocalSink(cfg.StaticDir), nil
	}
}
