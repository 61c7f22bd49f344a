package recipe

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/metrics"
)

const (
	DefaultHuggingFaceModel = "HuggingFaceH4/zephyr-7b-beta"
	huggingFaceInferenceURL = "https://api-inference.huggingface.co/models/"
)

// HuggingFaceProvider implements TextProvider for the HuggingFace inference API
type HuggingFaceProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewHuggingFaceProvider creates a provider for the given model. An empty
// model selects DefaultHuggingFaceModel.
func NewHuggingFaceProvider(apiKey, model string, client *http.Client) *HuggingFaceProvider {
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	return &HuggingFaceProvider{
		apiKey:   apiKey,
		endpoint: huggingFaceInferenceURL + model,
		client:   client,
	}
}

// WithEndpoint overrides the inference URL.
func (p *HuggingFaceProvider) WithEndpoint(url string) *HuggingFaceProvider {
	p.endpoint = url
	return p
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

// Generate runs text generation and returns the first generated text.
func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()
	outcome := "error"
	defer func() { metrics.RecordExternalCall(ctx, string(ProviderHuggingFace), outcome, startTime) }()

	body, err := postJSON(ctx, p.client, string(ProviderHuggingFace), p.endpoint, p.apiKey, hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:   MaxNewTokens,
			Temperature:    Temperature,
			TopP:           TopP,
			DoSample:       true,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	var generations []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &generations); err != nil {
		return "", apperrors.NewUpstreamError(string(ProviderHuggingFace), http.StatusOK, "unexpected huggingface response", err)
	}
	if len(generations) == 0 {
		return "", apperrors.NewUpstreamError(string(ProviderHuggingFace), http.StatusOK, "no response from huggingface", nil)
	}

	outcome = "ok"
	return generations[0].GeneratedText, nil
}
