package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hiremind-api/internal/config"
	"hiremind-api/internal/logging"
)

// Manager executes text-generation requests against an ordered chain of
// providers, falling through to the next provider on retryable failures.
// It holds no mutable state after construction; concurrent use is safe.
type Manager struct {
	providers []Provider
	timeout   time.Duration
	logger    logging.Logger
}

// NewManager builds the fallback chain from configuration. Providers in the
// priority list without a credential are skipped without counting as a
// failure; unknown identifiers are skipped with a warning.
func NewManager(cfg *config.Config) (*Manager, error) {
	logger := logging.GetGlobalLogger()

	var providers []Provider
	for _, name := range cfg.LLM.Priority {
		if !isRegistered(name) {
			logger.Warn("Unknown AI provider in priority list, skipping", map[string]interface{}{
				"provider":  name,
				"supported": SupportedProviders(),
			})
			continue
		}
		if !cfg.ProviderConfigured(name) {
			logger.Info("AI provider has no credential, skipping", map[string]interface{}{
				"provider": name,
			})
			continue
		}

		provider, err := newProvider(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider %s: %w", name, err)
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		logger.Warn("No AI provider configured - generation requests will fail until a credential is set")
	}

	return &Manager{
		providers: providers,
		timeout:   cfg.LLM.Timeout,
		logger:    logger,
	}, nil
}

// NewManagerWithProviders builds a manager around an explicit provider chain
func NewManagerWithProviders(timeout time.Duration, providers ...Provider) *Manager {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Manager{
		providers: providers,
		timeout:   timeout,
		logger:    logging.GetGlobalLogger(),
	}
}

// ProviderNames returns the configured chain in priority order
func (m *Manager) ProviderNames() []string {
	names := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		names = append(names, p.Name())
	}
	return names
}

// Generate tries each configured provider in priority order and returns the
// first successful output. Providers are tried strictly sequentially; racing
// them would duplicate billed calls. An invalid credential aborts the whole
// chain immediately rather than falling through.
func (m *Manager) Generate(ctx context.Context, prompt, system string) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProviderConfigured
	}

	var attempts []AttemptRecord

	for _, provider := range m.providers {
		// A dead caller context would fail every remaining provider the same
		// way; surface the cancellation instead of an exhausted chain.
		if err := ctx.Err(); err != nil {
			return "", err
		}

		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		text, err := provider.Generate(callCtx, prompt, system)
		cancel()

		if err == nil {
			m.logger.Info("Text generation succeeded", map[string]interface{}{
				"provider":        provider.Name(),
				"failed_attempts": len(attempts),
			})
			return text, nil
		}

		if isCredentialFailure(err) {
			m.logger.Error("AI provider rejected its credential, aborting fallback chain", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
			return "", &CredentialError{Provider: provider.Name(), Err: err}
		}

		record := AttemptRecord{
			Provider: provider.Name(),
			Message:  err.Error(),
		}
		var perr *ProviderError
		if errors.As(err, &perr) {
			record.StatusCode = perr.StatusCode
		}
		attempts = append(attempts, record)

		if isRetryable(err) {
			m.logger.Warn("AI provider failed with a retryable error, trying next provider", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
		} else {
			// Unexpected provider-specific failure: record it and keep the
			// chain alive rather than aborting the whole request.
			m.logger.Warn("AI provider failed unexpectedly, trying next provider", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
		}
	}

	m.logger.Error("All AI providers failed", map[string]interface{}{
		"attempts": attempts,
	})
	return "", &AllProvidersFailedError{Attempts: attempts}
}
