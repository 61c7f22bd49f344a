package db

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

// RetryConfig controls how often NewPool retries the first connection.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	// AttemptTimeout bounds a single connect-and-ping.
	AttemptTimeout time.Duration
	// Transient lists lower-case substrings of errors worth retrying.
	Transient []string
}

// DefaultRetryConfig covers a database that is still starting when the API
// boots, as happens with docker compose.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    5,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		BackoffFactor:  2.0,
		AttemptTimeout: 10 * time.Second,
		Transient: []string{
			"connection refused",
			"connection reset",
			"no such host",
			"timeout",
			"deadline exceeded",
			"the database system is starting up",
		},
	}
}

// IsTransient reports whether err matches one of the patterns.
func IsTransient(err error, patterns []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// withRetry runs op until it succeeds, fails with a non-transient error or
// runs out of attempts. Delays grow exponentially with up to 10% jitter.
func withRetry[T any](ctx context.Context, cfg RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.AttemptTimeout)
		result, err := op(attemptCtx)
		cancel()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == cfg.MaxAttempts || !IsTransient(err, cfg.Transient) {
			break
		}

		wait := delay
		if jitter := int64(wait) / 10; jitter > 0 {
			wait += time.Duration(rand.Int64N(jitter))
		}
		slog.WarnContext(ctx, "Database not reachable, retrying",
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"retry_in", wait,
			"error", err)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return zero, lastErr
}
