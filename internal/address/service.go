package address

import (
	"context"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"

	"github.com/voltcart/addressd/internal/pincode"
	"github.com/voltcart/addressd/internal/telemetry"
)

// Service is the production Validator. It composes the per-field format
// rules, the external PIN lookup chain, and standardization.
//
// The lookup chain is an enhancement, not a hard dependency: format and
// range checks always run locally, and when every provider is down the
// service degrades to the static Gujarat table instead of failing.
type Service struct {
	lookup pincode.Provider
	logger *slog.Logger
}

// NewService creates an address validation service. lookup is usually a
// *pincode.Chain; logger defaults to slog.Default().
func NewService(lookup pincode.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{lookup: lookup, logger: logger}
}

// ValidatePinCode validates a PIN code with provider enhancement.
//
// Malformed or out-of-range input fails locally with no network call. When
// the lookup chain resolves, the provider's state is the second opinion on
// Gujarat membership and can reject a PIN the local ranges accepted. When
// the chain is exhausted, the local table's info is returned with no
// suggestions.
func (s *Service) ValidatePinCode(ctx context.Context, pin string) *PinCodeResult {
	field, localInfo := ValidatePinCode(pin)
	if !field.IsValid {
		s.countValidation("invalid")
		return &PinCodeResult{Error: field.Error}
	}

	info, err := s.lookup.Lookup(ctx, localInfo.PinCode)
	if err != nil {
		s.logger.Debug("PIN lookup degraded to local table",
			"pincode", localInfo.PinCode,
			"district", localInfo.District,
			"error", err,
		)
		s.countValidation("fallback")
		return &PinCodeResult{
			IsValid:      true,
			LocationInfo: localInfo,
			Source:       SourceLocal,
		}
	}

	if !strings.EqualFold(info.State, GujaratState) {
		s.logger.Info("provider state overrides local range match",
			"pincode", localInfo.PinCode,
			"state", info.State,
		)
		// A PIN inside the delivery ranges that the provider places in
		// another state means the local table is stale for that range.
		telemetry.CaptureMessage("local delivery range disagrees with provider state", sentry.LevelWarning, map[string]interface{}{
			"pincode": localInfo.PinCode,
			"state":   info.State,
		})
		s.countValidation("invalid")
		return &PinCodeResult{Error: MsgOutsideGujarat}
	}

	s.countValidation("valid")
	return &PinCodeResult{
		IsValid:      true,
		LocationInfo: info,
		Suggestions:  Suggestions(info),
		Source:       SourceProvider,
	}
}

// ValidateAddress validates every field independently and aggregates all
// failures; it never short-circuits on the first bad field. Only a fully
// valid address with a provider-resolved PIN is standardized.
func (s *Service) ValidateAddress(ctx context.Context, addr Address) *ValidationResult {
	errs := make(map[string]string)

	if r := ValidateFullName(addr.FullName); !r.IsValid {
		errs[FieldFullName] = r.Error
	}
	if r := ValidatePhone(addr.Phone); !r.IsValid {
		errs[FieldPhone] = r.Error
	}
	if r := ValidateLine(addr.Line1); !r.IsValid {
		errs[FieldAddress] = r.Error
	}

	var warnings []string
	if r := ValidateCity(addr.City); !r.IsValid {
		errs[FieldCity] = r.Error
	} else if !KnownCity(addr.City) {
		warnings = append(warnings, "City is not on the known Gujarat city list; please double-check the spelling")
	}

	pinResult := s.ValidatePinCode(ctx, addr.PinCode)
	if !pinResult.IsValid {
		errs[FieldPinCode] = pinResult.Error
	}

	result := &ValidationResult{
		IsValid:      len(errs) == 0,
		LocationInfo: pinResult.LocationInfo,
		Suggestions:  pinResult.Suggestions,
		Warnings:     warnings,
	}
	if len(errs) > 0 {
		result.Errors = errs
		return result
	}

	if pinResult.Source == SourceProvider {
		std := Standardize(addr, pinResult.LocationInfo)
		result.Standardized = &std.Standardized
		result.Improvements = std.Improvements
	}

	return result
}

func (s *Service) countValidation(outcome string) {
	if telemetry.Lookup != nil {
		telemetry.Lookup.ValidationResults.WithLabelValues(outcome).Inc()
	}
}
