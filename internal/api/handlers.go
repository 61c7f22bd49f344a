package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/metrics"
	"github.com/socialchef/moodchef/internal/recipe"
	"github.com/socialchef/moodchef/internal/services/generator"
	"github.com/socialchef/moodchef/internal/services/storage"
	"github.com/socialchef/moodchef/internal/store"
)

func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleRecipeByMood serves GET /recipes/{mood}?cuisine_type=.
func (s *Server) HandleRecipeByMood(w http.ResponseWriter, r *http.Request) {
	mood := recipe.NormalizeMood(chi.URLParam(r, "mood"))
	if mood == "" {
		writeError(w, r, apperrors.NewValidationError("mood is required"))
		return
	}

	if s.source == SourceStore {
		candidates, err := s.candidates(r, mood)
		if err != nil {
			writeError(w, r, err)
			return
		}
		picked, err := store.PickRandom(candidates)
		if err != nil {
			writeError(w, r, err)
			return
		}
		metrics.RecordServed(r.Context(), SourceStore)
		writeJSON(w, http.StatusOK, picked)
		return
	}

	out, err := s.generator.Generate(r.Context(), mood, strings.TrimSpace(r.URL.Query().Get("cuisine_type")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	markUnsaved(w, *out)
	metrics.RecordServed(r.Context(), SourceGenerate)
	writeJSON(w, http.StatusOK, out.Recipe)
}

// HandleSuggestions serves GET /recipes/{mood}/suggestions?count=.
func (s *Server) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	mood := recipe.NormalizeMood(chi.URLParam(r, "mood"))
	if mood == "" {
		writeError(w, r, apperrors.NewValidationError("mood is required"))
		return
	}

	count, err := parseCount(r.URL.Query().Get("count"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if s.source == SourceStore {
		candidates, err := s.candidates(r, mood)
		if err != nil {
			writeError(w, r, err)
			return
		}
		picks := make([]recipe.Recipe, 0, count)
		for range count {
			picked, err := store.PickRandom(candidates)
			if err != nil {
				writeError(w, r, err)
				return
			}
			picks = append(picks, picked)
		}
		metrics.RecordServed(r.Context(), SourceStore)
		writeJSON(w, http.StatusOK, picks)
		return
	}

	outs, err := s.generator.Suggestions(r.Context(), mood, count)
	if err != nil {
		writeError(w, r, err)
		return
	}
	for _, o := range outs {
		markUnsaved(w, o)
	}
	metrics.RecordServed(r.Context(), SourceGenerate)
	writeJSON(w, http.StatusOK, generator.Recipes(outs))
}

// HandleTestImage serves the diagnostic image at <static>/images/test.png.
func (s *Server) HandleTestImage(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.staticDir, storage.ImagesDir, "test.png")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Test image not found"})
			return
		}
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

func (s *Server) candidates(r *http.Request, mood string) ([]recipe.Recipe, error) {
	candidates, err := s.store.FindByMood(r.Context(), mood)
	if err != nil {
		metrics.RecordStoreError(r.Context(), "find_by_mood")
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperrors.NewEmptyCandidateSetError("No recipes found for mood: " + mood)
	}
	return candidates, nil
}

func parseCount(raw string) (int, error) {
	if raw == "" {
		return DefaultSuggestionCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxSuggestionCount {
		return 0, apperrors.NewValidationError(fmt.Sprintf("count must be an integer between 1 and %d", MaxSuggestionCount))
	}
	return n, nil
}

// markUnsaved flags responses that carry a recipe the store did not accept.
func markUnsaved(w http.ResponseWriter, o generator.Outcome) {
	if !o.Saved {
		w.Header().Set("X-Recipe-Saved", "false")
	}
}
