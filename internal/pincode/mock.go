package pincode

import (
	"context"
)

// MockProvider is a test implementation of Provider.
type MockProvider struct {
	ProviderName string
	LookupFunc   func(ctx context.Context, pin string) (*Info, error)
}

// NewMockProvider creates a new mock lookup provider for testing.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{ProviderName: name}
}

// Name identifies the mock in logs and metrics.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Lookup delegates to the configured function or reports exhaustion.
func (m *MockProvider) Lookup(ctx context.Context, pin string) (*Info, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, pin)
	}
	return nil, ErrAllProvidersUnavailable
}
