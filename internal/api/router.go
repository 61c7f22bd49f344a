package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"
	otelchimetric "github.com/riandyrn/otelchi/metric"
	"go.opentelemetry.io/otel"

	"github.com/socialchef/moodchef/internal/middleware"
	"github.com/socialchef/moodchef/internal/sentry"
)

// NewRouter wires the middleware stack and routes.
func NewRouter(s *Server, serviceName string) http.Handler {
	r := chi.NewRouter()

	r.Use(otelchi.Middleware(serviceName,
		otelchi.WithChiRoutes(r),
		otelchi.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
	))

	metricCfg := otelchimetric.NewBaseConfig(serviceName, otelchimetric.WithMeterProvider(otel.GetMeterProvider()))
	r.Use(otelchimetric.NewRequestDurationMillis(metricCfg))
	r.Use(otelchimetric.NewRequestInFlight(metricCfg))
	r.Use(otelchimetric.NewResponseSizeBytes(metricCfg))

	r.Use(middleware.RequestLogger)
	r.Use(sentry.HTTPMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Recipe-Saved"},
	}))

	r.Get("/", s.HandleRoot)
	r.Get("/health", s.HandleHealth)
	r.Get("/test-image", s.HandleTestImage)

	r.Get("/recipes/{mood}", s.HandleRecipeByMood)
	r.Get("/recipes/{mood}/suggestions", s.HandleSuggestions)

	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))
	r.Handle("/static/*", fs)

	return r
}
