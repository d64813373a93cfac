package address

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/voltcart/addressd/internal/pincode"
)

// Field limits.
const (
	minNameLen = 2
	maxNameLen = 100
	minLineLen = 10
	maxLineLen = 200
	minCityLen = 2
	maxCityLen = 50
)

var (
	fullNameRegex = regexp.MustCompile(`^[a-zA-Z\s.']+$`)
	phoneRegex    = regexp.MustCompile(`^(\+?91)?[6-9]\d{9}$`)
	cityRegex     = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	pinRegex      = regexp.MustCompile(`^[1-9]\d{5}$`)
	digitRegex    = regexp.MustCompile(`\d`)
	letterRegex   = regexp.MustCompile(`[a-zA-Z]`)
)

// User-facing messages. The Gujarat-only message is shared by the local
// range check and the provider state override.
const (
	MsgOutsideGujarat = "We currently only deliver within Gujarat"
	msgInvalidPin     = "PIN code must be a valid 6-digit code"
)

// ValidateFullName checks a recipient name: 2-100 characters, letters,
// spaces, periods and apostrophes only, and at least two words.
func ValidateFullName(name string) FieldResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidField("Full name is required")
	}
	if utf8.RuneCountInString(name) < minNameLen {
		return invalidField("Full name must be at least 2 characters")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return invalidField("Full name must not exceed 100 characters")
	}
	if !fullNameRegex.MatchString(name) {
		return invalidField("Full name can only contain letters, spaces, periods and apostrophes")
	}
	if len(strings.Fields(name)) < 2 {
		return invalidField("Please enter your full name (first and last)")
	}
	return validField()
}

// ValidatePhone checks for a 10-digit Indian mobile number, optionally
// prefixed with the 91 country code. Spaces, hyphens and parentheses are
// stripped before matching.
func ValidatePhone(phone string) FieldResult {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)

	if cleaned == "" {
		return invalidField("Phone number is required")
	}
	if !phoneRegex.MatchString(cleaned) {
		return invalidField("Please enter a valid 10-digit Indian mobile number")
	}
	return validField()
}

// ValidateLine checks the free-text street address: 10-200 characters and
// must contain both a digit and a letter, a cheap heuristic for "has a
// house number and a street name".
func ValidateLine(line string) FieldResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return invalidField("Address is required")
	}
	if utf8.RuneCountInString(line) < minLineLen {
		return invalidField("Address must be at least 10 characters")
	}
	if utf8.RuneCountInString(line) > maxLineLen {
		return invalidField("Address must not exceed 200 characters")
	}
	if !digitRegex.MatchString(line) || !letterRegex.MatchString(line) {
		return invalidField("Address must include a house or flat number and a street name")
	}
	return validField()
}

// ValidateCity checks the city field: 2-50 characters, letters, spaces,
// hyphens, apostrophes and periods only. The known-city list is advisory
// and never blocks; see KnownCity.
func ValidateCity(city string) FieldResult {
	city = strings.TrimSpace(city)
	if city == "" {
		return invalidField("City is required")
	}
	if utf8.RuneCountInString(city) < minCityLen {
		return invalidField("City must be at least 2 characters")
	}
	if utf8.RuneCountInString(city) > maxCityLen {
		return invalidField("City must not exceed 50 characters")
	}
	if !cityRegex.MatchString(city) {
		return invalidField("City can only contain letters, spaces, hyphens, apostrophes and periods")
	}
	return validField()
}

// ValidatePinCode checks PIN format and the Gujarat-only delivery rule
// against the static range tables. On success the second return value holds
// the local table's location info: state, named district where a sub-range
// matches, generic "Gujarat" otherwise. No network call is made.
func ValidatePinCode(pin string) (FieldResult, *pincode.Info) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, pin)

	if cleaned == "" {
		return invalidField("PIN code is required"), nil
	}
	if !pinRegex.MatchString(cleaned) {
		return invalidField(msgInvalidPin), nil
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return invalidField(msgInvalidPin), nil
	}
	if !inDeliveryRange(n) {
		return invalidField(MsgOutsideGujarat), nil
	}

	return validField(), &pincode.Info{
		PinCode:  cleaned,
		Country:  "India",
		State:    GujaratState,
		District: districtFor(n),
	}
}
