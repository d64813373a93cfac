package address

import (
	"context"
)

// MockValidator is a test implementation of Validator.
type MockValidator struct {
	ValidateAddressFunc func(ctx context.Context, addr Address) *ValidationResult
	ValidatePinCodeFunc func(ctx context.Context, pin string) *PinCodeResult
}

// NewMockValidator creates a new mock address validator for testing.
func NewMockValidator() *MockValidator {
	return &MockValidator{}
}

// ValidateAddress delegates to the configured function or returns a valid result.
func (m *MockValidator) ValidateAddress(ctx context.Context, addr Address) *ValidationResult {
	if m.ValidateAddressFunc != nil {
		return m.ValidateAddressFunc(ctx, addr)
	}
	return &ValidationResult{IsValid: true}
}

// ValidatePinCode delegates to the configured function or returns a valid result.
func (m *MockValidator) ValidatePinCode(ctx context.Context, pin string) *PinCodeResult {
	if m.ValidatePinCodeFunc != nil {
		return m.ValidatePinCodeFunc(ctx, pin)
	}
	return &PinCodeResult{IsValid: true, Source: SourceLocal}
}
