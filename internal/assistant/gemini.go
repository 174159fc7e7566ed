package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/brquant/screener/pkg/config"
)

// GeminiProvider implements Provider on Google's Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a provider from the assistant config.
func NewGeminiProvider(cfg config.AssistantConfig) *GeminiProvider {
	return &GeminiProvider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// Complete sends a single generateContent request and returns the response
// text. No retry and no streaming; one round trip per question.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	result, err := client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.2)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	return result.Text(), nil
}
