package image

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/httpclient"
	"github.com/socialchef/moodchef/internal/metrics"
	"github.com/socialchef/moodchef/internal/recipe"
	"github.com/socialchef/moodchef/internal/services/ai"
	"github.com/socialchef/moodchef/internal/services/storage"
)

const (
	DefaultImageModel   = "stabilityai/stable-diffusion-xl-base-1.0"
	huggingFaceModelURL = "https://api-inference.huggingface.co/models/"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "recipe"
	}
	return slug
}

// FileName builds a collision-resistant image file name for a recipe.
func FileName(name string) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%s.png", Slugify(name), hex.EncodeToString(id[:8]))
}

// FileStrategy asks the HuggingFace inference API for raw image bytes and
// writes them through a storage.Sink.
type FileStrategy struct {
	apiKey   string
	endpoint string
	client   *http.Client
	sink     storage.Sink
}

func NewFileStrategy(apiKey, model string, client *http.Client, sink storage.Sink) *FileStrategy {
	if model == "" {
		model = DefaultImageModel
	}
	return &FileStrategy{
		apiKey:   apiKey,
		endpoint: huggingFaceModelURL + model,
		client:   client,
		sink:     sink,
	}
}

// WithEndpoint overrides the inference URL.
func (s *FileStrategy) WithEndpoint(url string) *FileStrategy {
	s.endpoint = url
	return s
}

func (s *FileStrategy) Name() string { return "huggingface-image" }

func (s *FileStrategy) Produce(ctx context.Context, d recipe.Draft) (string, error) {
	data, err := s.fetch(ctx, ai.BuildImagePrompt(d))
	if err != nil {
		return "", err
	}

	ref, err := s.sink.Save(ctx, FileName(d.Name), data, storage.DetectContentType(data))
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return ref, nil
}

func (s *FileStrategy) fetch(ctx context.Context, prompt string) ([]byte, error) {
	startTime := time.Now()
	outcome := "error"
	defer func() { metrics.RecordExternalCall(ctx, s.Name(), outcome, startTime) }()

	payload, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(httpclient.WithProvider(ctx, s.Name()), http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(s.Name(), 0, "image request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(s.Name(), resp.StatusCode, "image response could not be read", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(s.Name(), resp.StatusCode,
			fmt.Sprintf("image API error (status %d): %.300s", resp.StatusCode, string(body)), nil)
	}
	if len(body) == 0 || strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return nil, apperrors.NewUpstreamError(s.Name(), resp.StatusCode, "image API returned no image bytes", nil)
	}

	outcome = "ok"
	return body, nil
}
