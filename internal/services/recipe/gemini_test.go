package recipe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/socialchef/moodchef/internal/config"
	apperrors "github.com/socialchef/moodchef/internal/errors"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), "gemini-key", "", option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestGeminiProvider_Generate(t *testing.T) {
	var path string
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"name\":"},{"text":"\"Cozy Stew\"}"}]},"finishReason":"STOP"}]}`))
	})

	text, err := p.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, `{"name":"Cozy Stew"}`, text)
	assert.True(t, strings.HasSuffix(path, DefaultGeminiModel+":generateContent"), "path %s", path)
}

func TestGeminiProvider_UpstreamStatus(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend exploded","status":"INTERNAL"}}`))
	})

	_, err := p.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeUpstream, appErr.Type)
	assert.Equal(t, http.StatusInternalServerError, appErr.UpstreamStatus)
	assert.Equal(t, string(ProviderGemini), appErr.Provider)
}

func TestGeminiProvider_NoCandidates(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := p.Generate(context.Background(), "prompt")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
}

func TestFactory_Gemini(t *testing.T) {
	provider, err := NewProvider(context.Background(), config.GenerationConfig{Provider: "gemini"}, "", "", "test-gemini-key", http.DefaultClient)
	require.NoError(t, err)

	gemini, ok := provider.(*GeminiProvider)
	require.True(t, ok, "expected GeminiProvider, got %T", provider)
	assert.NoError(t, gemini.Close())
}
