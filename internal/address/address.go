package address

import (
	"context"

	"github.com/voltcart/addressd/internal/pincode"
)

// Validator defines the interface for address validation.
// The real implementation (Service) enhances local rules with an external
// PIN lookup chain; collaborators that only need the contract (checkout,
// address book) accept this interface and can swap in MockValidator.
//
// Implementations never return a Go error for user-input problems or
// provider outages: every outcome resolves to a structured result, and
// callers inspect IsValid/Errors instead of catching failures.
type Validator interface {
	// ValidateAddress checks every field of an address and, when the whole
	// address is valid and the PIN lookup succeeded, standardizes it.
	ValidateAddress(ctx context.Context, addr Address) *ValidationResult

	// ValidatePinCode gives live feedback for a single PIN code field.
	ValidatePinCode(ctx context.Context, pin string) *PinCodeResult
}

// Field names used as keys in ValidationResult.Errors.
// They match the JSON field names of Address.
const (
	FieldFullName = "full_name"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldCity     = "city"
	FieldPinCode  = "pincode"
)

// Address represents a raw user-entered shipping address.
type Address struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Line1    string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pincode"`
}

// ValidationResult contains the outcome of full-address validation.
// IsValid is true iff Errors is empty. Standardized is populated only when
// the address is valid AND the PIN lookup chain resolved; the local-table
// fallback path never standardizes because it cannot vouch for a city
// override.
type ValidationResult struct {
	IsValid      bool              `json:"is_valid"`
	Errors       map[string]string `json:"errors,omitempty"`
	LocationInfo *pincode.Info     `json:"location_info,omitempty"`
	Suggestions  []Suggestion      `json:"suggestions,omitempty"`
	Standardized *Address          `json:"standardized,omitempty"`
	Improvements []string          `json:"improvements,omitempty"`
	Warnings     []string          `json:"warnings,omitempty"`
}

// Where a PinCodeResult's location info came from.
const (
	SourceProvider = "provider"
	SourceLocal    = "local"
)

// PinCodeResult contains the outcome of single-field PIN validation,
// used for live as-you-type feedback.
type PinCodeResult struct {
	IsValid      bool          `json:"is_valid"`
	Error        string        `json:"error,omitempty"`
	LocationInfo *pincode.Info `json:"location_info,omitempty"`
	Suggestions  []Suggestion  `json:"suggestions,omitempty"`
	Source       string        `json:"source,omitempty"`
}

// SuggestionType classifies an address suggestion. This package derives
// only area and locality entries from PIN lookups; landmark is reserved for
// UI collaborators that merge their own nearby-landmark suggestions into
// the same list.
type SuggestionType string

const (
	SuggestionArea     SuggestionType = "area"
	SuggestionLocality SuggestionType = "locality"
	SuggestionLandmark SuggestionType = "landmark"
)

// Suggestion is a candidate locality/area name derived from a successful
// PIN lookup. Ephemeral: generated fresh per lookup, never stored.
type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Name     string         `json:"name"`
	PinCode  string         `json:"pincode"`
	District string         `json:"district"`
	State    string         `json:"state"`
}

// FieldResult is the outcome of a single-field format check.
type FieldResult struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

func validField() FieldResult {
	return FieldResult{IsValid: true}
}

func invalidField(msg string) FieldResult {
	return FieldResult{Error: msg}
}
