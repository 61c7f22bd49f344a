package recipe

import (
	"context"
	"fmt"
	"net/http"

	"github.com/socialchef/moodchef/internal/config"
)

// NewProvider creates the text provider selected by the configuration.
// An empty provider name selects HuggingFace.
func NewProvider(ctx context.Context, cfg config.GenerationConfig, huggingFaceKey, groqKey, geminiKey string, client *http.Client) (TextProvider, error) {
	switch ProviderType(cfg.Provider) {
	case ProviderHuggingFace, "":
		return NewHuggingFaceProvider(huggingFaceKey, cfg.Model, client), nil
	case ProviderGroq:
		return NewGroqProvider(groqKey, cfg.Model, client), nil
	case ProviderGemini:
		p, err := NewGeminiProvider(ctx, geminiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.Provider)
	}
}
