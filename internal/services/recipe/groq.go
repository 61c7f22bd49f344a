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
	DefaultGroqModel = "llama-3.3-70b-versatile"
	groqChatURL      = "https://api.groq.com/openai/v1/chat/completions"
)

// GroqProvider implements TextProvider for Groq's OpenAI-compatible chat API
type GroqProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGroqProvider creates a new Groq text provider
func NewGroqProvider(apiKey, model string, client *http.Client) *GroqProvider {
	if model == "" {
		model = DefaultGroqModel
	}
	return &GroqProvider{
		apiKey:   apiKey,
		model:    model,
		endpoint: groqChatURL,
		client:   client,
	}
}

// WithEndpoint overrides the chat completions URL.
func (p *GroqProvider) WithEndpoint(url string) *GroqProvider {
	p.endpoint = url
	return p
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	MaxTokens      int           `json:"max_tokens"`
	Temperature    float64       `json:"temperature"`
	TopP           float64       `json:"top_p"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

// Generate sends the prompt as a single user message in JSON mode.
func (p *GroqProvider) Generate(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()
	outcome := "error"
	defer func() { metrics.RecordExternalCall(ctx, string(ProviderGroq), outcome, startTime) }()

	req := chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   MaxNewTokens,
		Temperature: Temperature,
		TopP:        TopP,
	}
	req.ResponseFormat.Type = "json_object"

	body, err := postJSON(ctx, p.client, string(ProviderGroq), p.endpoint, p.apiKey, req)
	if err != nil {
		return "", err
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", apperrors.NewUpstreamError(string(ProviderGroq), http.StatusOK, "unexpected groq response", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", apperrors.NewUpstreamError(string(ProviderGroq), http.StatusOK, "no response from groq", nil)
	}

	outcome = "ok"
	return chatResp.Choices[0].Message.Content, nil
}
