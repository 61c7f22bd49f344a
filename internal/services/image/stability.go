package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/httpclient"
	"github.com/socialchef/moodchef/internal/metrics"
	"github.com/socialchef/moodchef/internal/recipe"
	"github.com/socialchef/moodchef/internal/services/ai"
)

const stabilityURL = "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type stabilityRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CfgScale    int          `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
	StylePreset string       `json:"style_preset"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

// StabilityStrategy renders an SDXL image and returns it inline as a
// base64 data URI.
type StabilityStrategy struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewStabilityStrategy(apiKey string, client *http.Client) *StabilityStrategy {
	return &StabilityStrategy{apiKey: apiKey, endpoint: stabilityURL, client: client}
}

// WithEndpoint overrides the text-to-image URL.
func (s *StabilityStrategy) WithEndpoint(url string) *StabilityStrategy {
	s.endpoint = url
	return s
}

func (s *StabilityStrategy) Name() string { return "stability" }

func (s *StabilityStrategy) Produce(ctx context.Context, d recipe.Draft) (string, error) {
	startTime := time.Now()
	outcome := "error"
	defer func() { metrics.RecordExternalCall(ctx, s.Name(), outcome, startTime) }()

	payload, err := json.Marshal(stabilityRequest{
		TextPrompts: []textPrompt{
			{Text: ai.BuildImagePrompt(d), Weight: 1},
			{Text: ai.ImageNegativePrompt, Weight: -1},
		},
		CfgScale:    8,
		Height:      1024,
		Width:       1024,
		Samples:     1,
		Steps:       40,
		StylePreset: "photographic",
	})
	if err != nil {
		return "", fmt.Errorf("marshal stability request: %w", err)
	}

	req, err := http.NewRequestWithContext(httpclient.WithProvider(ctx, s.Name()), http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build stability request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError(s.Name(), 0, "stability request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.NewUpstreamError(s.Name(), resp.StatusCode,
			fmt.Sprintf("stability API error (status %d): %s", resp.StatusCode, string(body)), nil)
	}

	var result stabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperrors.NewUpstreamError(s.Name(), resp.StatusCode, "unexpected stability response", err)
	}
	if len(result.Artifacts) == 0 || result.Artifacts[0].Base64 == "" {
		return "", apperrors.NewUpstreamError(s.Name(), resp.StatusCode, "no image in stability response", nil)
	}

	outcome = "ok"
	return "data:image/png;base64," + result.Artifacts[0].Base64, nil
}
