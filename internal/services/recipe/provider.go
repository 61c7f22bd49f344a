package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/httpclient"
)

// ProviderType represents the type of text-generation provider
type ProviderType string

const (
	ProviderHuggingFace ProviderType = "huggingface"
	ProviderGroq        ProviderType = "groq"
	ProviderGemini      ProviderType = "gemini"
)

// Fixed generation parameters shared by every provider.
const (
	MaxNewTokens = 1000
	Temperature  = 0.7
	TopP         = 0.9
)

// TextProvider sends a prompt to a remote text-generation API and returns
// the raw generated text.
type TextProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// postJSON sends payload to url and returns the response body. Transport
// failures and non-2xx statuses become UpstreamErrors.
func postJSON(ctx context.Context, client *http.Client, provider, url, apiKey string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", provider, err)
	}

	req, err := http.NewRequestWithContext(httpclient.WithProvider(ctx, provider), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", provider, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(provider, 0, fmt.Sprintf("%s request failed", provider), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(provider, resp.StatusCode, fmt.Sprintf("%s response could not be read", provider), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamError(provider, resp.StatusCode,
			fmt.Sprintf("%s API error (status %d): %s", provider, resp.StatusCode, truncate(string(respBody), 300)), nil)
	}

	return respBody, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
