package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Options configures the Sentry client for this service.
type Options struct {
	DSN            string
	Env            string
	ServiceName    string
	ServiceVersion string
	// RecipeSource is attached to every event as the recipe_source tag.
	RecipeSource string
}

// Init initializes Sentry with the provided configuration.
// If DSN is empty, Sentry initialization is skipped and nil is returned.
func Init(opts Options) error {
	if opts.DSN == "" {
		return nil
	}

	options := sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Env,
		ServerName:       opts.ServiceName,
		Release:          opts.ServiceName + "@" + opts.ServiceVersion,
		AttachStacktrace: true,
		TracesSampleRate: 0.0, // tracing goes through OpenTelemetry
		BeforeSend:       tagEvent(opts.RecipeSource),
	}

	if err := sentry.Init(options); err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	return nil
}

func tagEvent(source string) func(*sentry.Event, *sentry.EventHint) *sentry.Event {
	return func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
		if source == "" {
			return event
		}
		if event.Tags == nil {
			event.Tags = make(map[string]string)
		}
		if _, ok := event.Tags["recipe_source"]; !ok {
			event.Tags["recipe_source"] = source
		}
		return event
	}
}

// Flush waits for all pending Sentry events to be sent.
// Call this during graceful shutdown.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// Recover captures a panic and forwards it to Sentry.
// Should be used with defer in goroutines.
func Recover() {
	sentry.Recover()
}
