package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/httpclient"
	"github.com/socialchef/moodchef/internal/metrics"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider implements TextProvider for Google Gemini.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider creates a Gemini provider in JSON output mode. Extra
// client options are applied after the API key.
func NewGeminiProvider(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiProvider, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetTemperature(Temperature)
	m.SetTopP(TopP)
	m.SetMaxOutputTokens(MaxNewTokens)
	m.ResponseMIMEType = "application/json"

	return &GeminiProvider{client: client, model: m}, nil
}

// Close releases the underlying client connection.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// Generate returns the concatenated text parts of the first candidate.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()
	outcome := "error"
	defer func() { metrics.RecordExternalCall(ctx, string(ProviderGemini), outcome, startTime) }()

	ctx, cancel := context.WithTimeout(ctx, httpclient.TextTimeout)
	defer cancel()

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		status := 0
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			status = apiErr.Code
		}
		return "", apperrors.NewUpstreamError(string(ProviderGemini), status, "gemini request failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.NewUpstreamError(string(ProviderGemini), http.StatusOK, "empty response from gemini", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	outcome = "ok"
	return sb.String(), nil
}
