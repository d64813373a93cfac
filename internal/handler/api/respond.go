package api

import (
	"encoding/json"
	"net/http"

	"github.com/voltcart/addressd/internal/domain"
	"github.com/voltcart/addressd/internal/middleware"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		middleware.GetLogger(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// respondError writes a structured JSON error derived from a domain error.
// Field-level validation errors carry their fields map in the body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidationError(err) {
		middleware.GetLogger(r.Context()).Info("request validation failed", "error", err.Error())
		respondJSON(w, r, http.StatusBadRequest, map[string]interface{}{
			"error": map[string]interface{}{
				"code":    domain.EINVALID,
				"message": "Validation failed",
				"fields":  domain.GetValidationFields(err),
			},
		})
		return
	}

	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := errorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if status >= 500 {
		logger.Error("handler error", attrs...)
	} else {
		logger.Info("handler error", attrs...)
	}

	respondJSON(w, r, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge // 413
	case domain.EUNAVAILABLE:
		return http.StatusServiceUnavailable // 503
	case domain.ENOTIMPL:
		return http.StatusNotImplemented // 501
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
