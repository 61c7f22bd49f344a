package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/socialchef/moodchef/internal/errors"
)

type stubProvider struct {
	text string
	err  error
}

func (s stubProvider) Generate(context.Context, string) (string, error) {
	return s.text, s.err
}

func TestHuggingFaceProvider_Generate(t *testing.T) {
	var got hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"generated_text":"Sure! {\"name\":\"Sunny Bowl\"}"}]`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("hf-key", "", srv.Client()).WithEndpoint(srv.URL)
	text, err := p.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, `Sure! {"name":"Sunny Bowl"}`, text)
	assert.Equal(t, "prompt", got.Inputs)
	assert.Equal(t, MaxNewTokens, got.Parameters.MaxNewTokens)
	assert.InDelta(t, 0.7, got.Parameters.Temperature, 1e-9)
	assert.InDelta(t, 0.9, got.Parameters.TopP, 1e-9)
	assert.True(t, got.Parameters.DoSample)
	assert.False(t, got.Parameters.ReturnFullText)
}

func TestHuggingFaceProvider_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("hf-key", "", srv.Client()).WithEndpoint(srv.URL)
	_, err := p.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeUpstream, appErr.Type)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.UpstreamStatus)
	assert.Contains(t, appErr.Message, "model is loading")
}

func TestHuggingFaceProvider_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("hf-key", "", srv.Client()).WithEndpoint(srv.URL)
	_, err := p.Generate(context.Background(), "prompt")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
}

func TestGroqProvider_Generate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer groq-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"name\":\"Calm Soup\"}"}}]}`))
	}))
	defer srv.Close()

	p := NewGroqProvider("groq-key", "", srv.Client()).WithEndpoint(srv.URL)
	text, err := p.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, `{"name":"Calm Soup"}`, text)
	assert.Equal(t, DefaultGroqModel, got.Model)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "prompt", got.Messages[0].Content)
}

func TestGroqProvider_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewGroqProvider("groq-key", "", srv.Client()).WithEndpoint(srv.URL)
	_, err := p.Generate(context.Background(), "prompt")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusTooManyRequests, appErr.UpstreamStatus)
}

func TestClient_RequestRecipe(t *testing.T) {
	c := NewClient(stubProvider{text: "Here you go: " + wellFormed}, "stub")

	d, err := c.RequestRecipe(context.Background(), "prompt", " Happy ")
	require.NoError(t, err)
	assert.Equal(t, "X", d.Name)
	assert.Equal(t, "happy", d.Mood)
}

func TestClient_RequestRecipe_Malformed(t *testing.T) {
	c := NewClient(stubProvider{text: "I would rather not."}, "stub")

	_, err := c.RequestRecipe(context.Background(), "prompt", "happy")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedRecipe))
}

func TestClient_RequestRecipe_WrapsPlainErrors(t *testing.T) {
	c := NewClient(stubProvider{err: errors.New("connection reset")}, "stub")

	_, err := c.RequestRecipe(context.Background(), "prompt", "happy")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
	assert.ErrorContains(t, err, "connection reset")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	// "é" is two bytes; cutting inside it backs up to the rune start.
	assert.Equal(t, "a...", truncate("aéb", 2))
	assert.Equal(t, "aé...", truncate("aébc", 3))
}
