package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Generate(ctx context.Context, prompt, system string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeProvider) Name() string {
	return f.name
}

func rateLimited(name string) error {
	return &ProviderError{Provider: name, StatusCode: 429, Err: errors.New("rate limit exceeded")}
}

func TestFallbackFirstSuccessWins(t *testing.T) {
	p1 := &fakeProvider{name: "openai", text: "from openai"}
	p2 := &fakeProvider{name: "gemini", text: "from gemini"}
	m := NewManagerWithProviders(time.Second, p1, p2)

	text, err := m.Generate(context.Background(), "prompt", "system")
	require.NoError(t, err)
	assert.Equal(t, "from openai", text)
	assert.Equal(t, 1, p1.calls)
	assert.Equal(t, 0, p2.calls, "second provider must not be invoked after a success")
}

func TestFallbackOnRateLimit(t *testing.T) {
	p1 := &fakeProvider{name: "openai", err: rateLimited("openai")}
	p2 := &fakeProvider{name: "gemini", text: "from gemini"}
	m := NewManagerWithProviders(time.Second, p1, p2)

	text, err := m.Generate(context.Background(), "prompt", "system")
	require.NoError(t, err)
	assert.Equal(t, "from gemini", text)
	assert.Equal(t, 1, p1.calls)
	assert.Equal(t, 1, p2.calls)
}

func TestFallbackOnServerError(t *testing.T) {
	p1 := &fakeProvider{name: "openai", err: &ProviderError{Provider: "openai", StatusCode: 503, Err: errors.New("service unavailable")}}
	p2 := &fakeProvider{name: "gemini", text: "ok"}
	m := NewManagerWithProviders(time.Second, p1, p2)

	text, err := m.Generate(context.Background(), "prompt", "system")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestCredentialFailureAbortsChain(t *testing.T) {
	p1 := &fakeProvider{name: "openai", err: &ProviderError{Provider: "openai", StatusCode: 401, Err: errors.New("invalid api key")}}
	p2 := &fakeProvider{name: "gemini", text: "would succeed"}
	m := NewManagerWithProviders(time.Second, p1, p2)

	_, err := m.Generate(context.Background(), "prompt", "system")
	require.Error(t, err)

	var credErr *CredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "openai", credErr.Provider)
	assert.Equal(t, 0, p2.calls, "remaining providers must not be invoked after a credential failure")
}

func TestUnexpectedErrorContinuesChain(t *testing.T) {
	p1 := &fakeProvider{name: "openai", err: &ProviderError{Provider: "openai", StatusCode: 422, Err: errors.New("content policy refusal")}}
	p2 := &fakeProvider{name: "gemini", text: "ok"}
	m := NewManagerWithProviders(time.Second, p1, p2)

	text, err := m.Generate(context.Background(), "prompt", "system")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestCanceledContextStopsChain(t *testing.T) {
	p1 := &fakeProvider{name: "openai", err: rateLimited("openai")}
	p2 := &fakeProvider{name: "gemini", text: "would succeed"}
	m := NewManagerWithProviders(time.Second, p1, p2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, "prompt", "system")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, p1.calls)
	assert.Equal(t, 0, p2.calls, "no provider should be invoked once the caller is gone")
}

func TestNoProviderConfigured(t *testing.T) {
	m := NewManagerWithProviders(time.Second)

	_, err := m.Generate(context.Background(), "prompt", "system")
	assert.ErrorIs(t, err, ErrNoProviderConfigured)
}

func TestAllProvidersFailed(t *testing.T) {
	p1 := &fakeProvider{name: "openai", err: rateLimited("openai")}
	p2 := &fakeProvider{name: "gemini", err: &ProviderError{Provider: "gemini", StatusCode: 500, Err: errors.New("internal error")}}
	m := NewManagerWithProviders(time.Second, p1, p2)

	_, err := m.Generate(context.Background(), "prompt", "system")
	require.Error(t, err)

	var allErr *AllProvidersFailedError
	require.ErrorAs(t, err, &allErr)
	require.Len(t, allErr.Attempts, 2)
	assert.Equal(t, "openai", allErr.Attempts[0].Provider)
	assert.Equal(t, 429, allErr.Attempts[0].StatusCode)
	assert.Equal(t, "gemini", allErr.Attempts[1].Provider)
	assert.Equal(t, 500, allErr.Attempts[1].StatusCode)
}

func TestProviderNames(t *testing.T) {
	m := NewManagerWithProviders(time.Second,
		&fakeProvider{name: "openai"},
		&fakeProvider{name: "gemini"},
	)
	assert.Equal(t, []string{"openai", "gemini"}, m.ProviderNames())
}
