package pincode

import "context"

// Provider defines the interface for postal PIN code lookups.
// Implementations wrap a single external postal-code API and normalize its
// response shape into Info. A provider that receives a well-formed response
// it does not recognize returns (nil, nil) so a fallback chain can continue
// with the next provider instead of failing the lookup.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Lookup resolves a 6-digit PIN code to location metadata.
	Lookup(ctx context.Context, pin string) (*Info, error)
}

// Info is the normalized result of a PIN code lookup.
// Only State and District are guaranteed populated by every provider;
// the remaining fields are best-effort.
type Info struct {
	PinCode  string `json:"pincode"`
	Country  string `json:"country"`
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city,omitempty"`
	Area     string `json:"area,omitempty"`
	Division string `json:"division,omitempty"`
	Region   string `json:"region,omitempty"`
	Circle   string `json:"circle,omitempty"`
}
