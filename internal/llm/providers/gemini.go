package providers

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"hiremind-api/internal/config"
	"hiremind-api/internal/llm"
)

func init() {
	llm.Register("gemini", func(cfg *config.Config) (llm.Provider, error) {
		return NewGeminiProvider(cfg)
	})
}

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.LLM.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       cfg.LLM.Gemini.Model,
		maxTokens:   int32(cfg.LLM.MaxTokens),
		temperature: cfg.LLM.Temperature,
	}, nil
}

// Generate sends the prompt to Gemini and returns the raw response text
func (p *GeminiProvider) Generate(ctx context.Context, prompt, system string) (string, error) {
	response, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(p.temperature),
		MaxOutputTokens:   p.maxTokens,
	})
	if err != nil {
		return "", wrapGeminiError(p.Name(), err)
	}

	text := response.Text()
	if text == "" {
		return "", &llm.ProviderError{Provider: p.Name(), Err: errors.New("no text content in response")}
	}
	return text, nil
}

// Name returns the provider identifier
func (p *GeminiProvider) Name() string {
	return "gemini"
}

func wrapGeminiError(provider string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{
			Provider:   provider,
			StatusCode: apiErr.Code,
			Err:        fmt.Errorf("gemini API call failed: %w", err),
		}
	}
	return &llm.ProviderError{Provider: provider, Err: err}
}
