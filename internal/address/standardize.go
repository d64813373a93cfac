package address

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/voltcart/addressd/internal/pincode"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	commaRuns      = regexp.MustCompile(`\s*,[\s,]*`)
	dotRuns        = regexp.MustCompile(`\s*\.[\s.]*`)
)

// StandardizeResult holds a cleaned-up address plus advisory notes for UI
// display. Improvements never drive control flow.
type StandardizeResult struct {
	Standardized Address  `json:"standardized"`
	Improvements []string `json:"improvements"`
}

// Standardize normalizes an address for display and storage by a
// collaborator: whitespace, comma and period runs in the street line are
// collapsed, city and state are title-cased, and stray non-digits are
// stripped from the PIN code. When location info from a successful lookup
// is supplied and its city (district when city is absent) differs from the
// entered city, the entered city is overridden and the change recorded.
//
// Standardize is a pure function and idempotent: a second pass over its own
// output yields no further improvements.
func Standardize(addr Address, info *pincode.Info) StandardizeResult {
	out := addr
	var improvements []string

	out.FullName = whitespaceRuns.ReplaceAllString(strings.TrimSpace(addr.FullName), " ")
	out.Phone = strings.TrimSpace(addr.Phone)

	out.Line1 = normalizeLine(addr.Line1)
	if out.Line1 != addr.Line1 {
		improvements = append(improvements, "Cleaned up address formatting")
	}

	out.City = strings.TrimSpace(addr.City)
	if info != nil {
		lookupCity := info.City
		if lookupCity == "" {
			lookupCity = info.District
		}
		if lookupCity != "" && !strings.EqualFold(lookupCity, out.City) {
			out.City = lookupCity
			improvements = append(improvements, fmt.Sprintf("City corrected to %s based on PIN code", titleCase(lookupCity)))
		}
	}

	out.City = titleCase(out.City)
	out.State = titleCase(strings.TrimSpace(addr.State))

	out.PinCode = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, addr.PinCode)
	if out.PinCode != addr.PinCode {
		improvements = append(improvements, "Removed stray characters from PIN code")
	}

	return StandardizeResult{Standardized: out, Improvements: improvements}
}

// normalizeLine collapses whitespace, comma and period runs and trims
// dangling separators from the street line.
func normalizeLine(line string) string {
	line = strings.TrimSpace(line)
	line = commaRuns.ReplaceAllString(line, ", ")
	line = dotRuns.ReplaceAllString(line, ". ")
	line = whitespaceRuns.ReplaceAllString(line, " ")
	return strings.Trim(line, " ,.")
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
