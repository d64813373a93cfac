package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/voltcart/addressd/internal/address"
	"github.com/voltcart/addressd/internal/domain"
	"github.com/voltcart/addressd/internal/middleware"
)

// AddressHandler serves the address validation endpoints consumed by the
// storefront checkout and address-management frontends.
type AddressHandler struct {
	service  address.Validator
	validate *validator.Validate
}

// NewAddressHandler creates a new address API handler.
func NewAddressHandler(service address.Validator) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type validateAddressRequest struct {
	Address address.Address `json:"address" validate:"required"`
}

// ValidateAddress handles POST /api/v1/address/validate.
// Field-level problems come back inside the result body with a 200 status;
// only malformed requests are rejected with a 4xx.
func (h *AddressHandler) ValidateAddress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req validateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.WrapError(err, domain.EINVALID, "api.validate_address", "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, requestValidationError("api.validate_address", err))
		return
	}

	result := h.service.ValidateAddress(r.Context(), req.Address)

	logger.Debug("address validated",
		"is_valid", result.IsValid,
		"error_fields", len(result.Errors),
	)

	respondJSON(w, r, http.StatusOK, result)
}

// ValidatePinCode handles GET /api/v1/pincode/{pin}.
// Used for live as-you-type PIN feedback, so even an invalid PIN answers 200
// with is_valid=false rather than an error status.
func (h *AddressHandler) ValidatePinCode(w http.ResponseWriter, r *http.Request) {
	pin := r.PathValue("pin")

	result := h.service.ValidatePinCode(r.Context(), pin)

	middleware.GetLogger(r.Context()).Debug("pincode validated",
		"is_valid", result.IsValid,
		"source", result.Source,
	)

	respondJSON(w, r, http.StatusOK, result)
}

type standardizeRequest struct {
	Address address.Address `json:"address" validate:"required"`
}

// StandardizeAddress handles POST /api/v1/address/standardize.
// Pure formatting pass with no network enhancement; collaborators call it to
// rewrite fields before submission.
func (h *AddressHandler) StandardizeAddress(w http.ResponseWriter, r *http.Request) {
	var req standardizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.WrapError(err, domain.EINVALID, "api.standardize", "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, requestValidationError("api.standardize", err))
		return
	}

	result := address.Standardize(req.Address, nil)

	respondJSON(w, r, http.StatusOK, result)
}

// requestValidationError converts validator.Struct failures into a
// field-keyed domain.ValidationError so the response carries one entry per
// missing field rather than a single opaque message.
func requestValidationError(op string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.WrapError(err, domain.EINVALID, op, "Invalid request body")
	}

	var verr error
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		msg := fmt.Sprintf("%s is required", fe.Field())
		if verr == nil {
			verr = domain.NewValidationError(op, field, msg)
		} else {
			verr = domain.AddFieldError(verr, field, msg)
		}
	}
	return verr
}
