package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/logger"
	"github.com/socialchef/moodchef/internal/sentry"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

// writeError answers with {"detail": ...}. The status comes from the error
// type; anything unclassified is a 500 and is reported to Sentry.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"path", r.URL.Path,
			"error", err,
			logger.WithTraceContext(r.Context()))
		sentry.CaptureError(r.Context(), err, map[string]string{"path": r.URL.Path})
	}
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}
