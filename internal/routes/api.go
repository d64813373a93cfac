package routes

import (
	"github.com/voltcart/addressd/internal/router"
)

// RegisterAPIRoutes registers the JSON address validation API.
// These routes are consumed by the storefront checkout and the admin
// address-management frontends.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Full address validation with standardization
	r.Post("/api/v1/address/validate", deps.AddressHandler.ValidateAddress)

	// Pure formatting pass, no network enhancement
	r.Post("/api/v1/address/standardize", deps.AddressHandler.StandardizeAddress)

	// Live as-you-type PIN feedback
	r.Get("/api/v1/pincode/{pin}", deps.AddressHandler.ValidatePinCode)
}
