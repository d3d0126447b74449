package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"hiremind-api/internal/config"
	"hiremind-api/internal/llm"
)

func init() {
	llm.Register("claude", func(cfg *config.Config) (llm.Provider, error) {
		return NewClaudeProvider(cfg), nil
	})
}

// ClaudeProvider implements the Provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.Claude.APIKey),
	)

	return &ClaudeProvider{
		client:      client,
		model:       cfg.LLM.Claude.Model,
		maxTokens:   int64(cfg.LLM.MaxTokens),
		temperature: float64(cfg.LLM.Temperature),
	}
}

// Generate sends the prompt to Claude and returns the raw response text
func (p *ClaudeProvider) Generate(ctx context.Context, prompt, system string) (string, error) {
	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   p.maxTokens,
		Temperature: anthropic.Float(p.temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", wrapClaudeError(p.Name(), err)
	}

	if len(response.Content) == 0 {
		return "", &llm.ProviderError{Provider: p.Name(), Err: errors.New("empty response")}
	}

	var text string
	for _, content := range response.Content {
		textContent := content.AsText()
		text = textContent.Text
		break
	}
	if text == "" {
		return "", &llm.ProviderError{Provider: p.Name(), Err: errors.New("no text content in response")}
	}
	return text, nil
}

// Name returns the provider identifier
func (p *ClaudeProvider) Name() string {
	return "claude"
}

func wrapClaudeError(provider string, err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{
			Provider:   provider,
			StatusCode: apiErr.StatusCode,
			Err:        fmt.Errorf("claude API call failed: %w", err),
		}
	}
	return &llm.ProviderError{Provider: provider, Err: err}
}
