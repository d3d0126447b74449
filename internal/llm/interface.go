package llm

import (
	"context"
)

// Provider defines the interface for text-generation providers. New providers
// register a constructor in the registry rather than extending a switch.
type Provider interface {
	// Generate sends a prompt with a system instruction and returns the raw
	// generated text. The output shape is the caller's responsibility.
	Generate(ctx context.Context, prompt, system string) (string, error)

	// Name returns the provider identifier
	Name() string
}
