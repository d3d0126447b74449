package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"hiremind-api/internal/config"
	"hiremind-api/internal/llm"
)

func init() {
	llm.Register("openai", func(cfg *config.Config) (llm.Provider, error) {
		return NewOpenAIProvider(cfg), nil
	})
}

// OpenAIProvider implements the Provider interface using OpenAI chat completions
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewOpenAIProvider creates a new OpenAI provider instance
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	client := openai.NewClient(
		option.WithAPIKey(cfg.LLM.OpenAI.APIKey),
	)

	return &OpenAIProvider{
		client:      client,
		model:       cfg.LLM.OpenAI.Model,
		maxTokens:   int64(cfg.LLM.MaxTokens),
		temperature: float64(cfg.LLM.Temperature),
	}
}

// Generate sends the prompt to OpenAI and returns the raw response text
func (p *OpenAIProvider) Generate(ctx context.Context, prompt, system string) (string, error) {
	response, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(p.model),
		MaxTokens:   openai.F(p.maxTokens),
		Temperature: openai.F(p.temperature),
	})
	if err != nil {
		return "", wrapOpenAIError(p.Name(), err)
	}

	if len(response.Choices) == 0 {
		return "", &llm.ProviderError{Provider: p.Name(), Err: errors.New("empty response")}
	}

	text := response.Choices[0].Message.Content
	if text == "" {
		return "", &llm.ProviderError{Provider: p.Name(), Err: errors.New("no text content in response")}
	}
	return text, nil
}

// Name returns the provider identifier
func (p *OpenAIProvider) Name() string {
	return "openai"
}

func wrapOpenAIError(provider string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{
			Provider:   provider,
			StatusCode: apiErr.StatusCode,
			Err:        fmt.Errorf("openai API call failed: %w", err),
		}
	}
	return &llm.ProviderError{Provider: provider, Err: err}
}
