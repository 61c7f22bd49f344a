package api

import (
	"context"

	"github.com/socialchef/moodchef/internal/services/generator"
	"github.com/socialchef/moodchef/internal/store"
)

// Recipe sources a Server can answer from.
const (
	SourceGenerate = "generate"
	SourceStore    = "store"
)

// DefaultSuggestionCount and MaxSuggestionCount bound ?count= on the
// suggestions endpoint.
const (
	DefaultSuggestionCount = 3
	MaxSuggestionCount     = 10
)

const rootMessage = "API is running. Please access the frontend application."

// RecipeGenerator is the generation pipeline the handlers drive.
type RecipeGenerator interface {
	Generate(ctx context.Context, mood, cuisine string) (*generator.Outcome, error)
	Suggestions(ctx context.Context, mood string, count int) ([]generator.Outcome, error)
}

type Server struct {
	source    string
	generator RecipeGenerator
	store     store.Store
	staticDir string
}

// NewServer creates the handler set. In store mode the generator may be nil.
func NewServer(source string, gen RecipeGenerator, s store.Store, staticDir string) *Server {
	if source == "" {
		source = SourceGenerate
	}
	return &Server{
		source:    source,
		generator: gen,
		store:     s,
		staticDir: staticDir,
	}
}
