package address

import (
	"strings"

	"github.com/voltcart/addressd/internal/pincode"
)

const maxSuggestions = 3

// Suggestions derives up to three locality suggestions from a successful
// lookup: the area when it differs from the city, the city, and always the
// district as a guaranteed fallback. No further deduplication is applied,
// so callers may see the district repeated when it equals the city.
func Suggestions(info *pincode.Info) []Suggestion {
	if info == nil {
		return nil
	}

	build := func(t SuggestionType, name string) Suggestion {
		return Suggestion{
			Type:     t,
			Name:     name,
			PinCode:  info.PinCode,
			District: info.District,
			State:    info.State,
		}
	}

	var out []Suggestion
	if info.Area != "" && !strings.EqualFold(info.Area, info.City) {
		out = append(out, build(SuggestionArea, info.Area))
	}
	if info.City != "" {
		out = append(out, build(SuggestionLocality, info.City))
	}
	out = append(out, build(SuggestionLocality, info.District))

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
