package db

import (
	"context"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens the shared connection pool and waits for the database with
// DefaultRetryConfig. tracing installs the otelpgx query tracer.
func NewPool(ctx context.Context, databaseURL string, tracing bool) (*pgxpool.Pool, error) {
	return NewPoolWithRetry(ctx, databaseURL, tracing, DefaultRetryConfig())
}

func NewPoolWithRetry(ctx context.Context, databaseURL string, tracing bool, retry RetryConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	if tracing {
		config.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithIncludeQueryParameters())
	}

	return withRetry(ctx, retry, func(ctx context.Context) (*pgxpool.Pool, error) {
		pool, err := pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return pool, nil
	})
}
