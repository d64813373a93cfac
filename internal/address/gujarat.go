package address

import "strings"

// Delivery is restricted to Gujarat. The two numeric PIN ranges below cover
// the Saurashtra/Kutch (36xxxx) and central/south (38xxxx-39xxxx) postal
// allocations; a PIN is serviceable when it falls in either.
var deliveryRanges = [...]struct{ lo, hi int }{
	{360001, 396445},
	{380001, 396590},
}

// GujaratState is the only serviceable state.
const GujaratState = "Gujarat"

// districtRange maps a numeric PIN sub-range to its district.
type districtRange struct {
	lo, hi   int
	district string
}

// districtRanges resolves an in-range PIN to a named district. The table is
// deliberately sparse: gaps inside the delivery ranges resolve to the
// generic "Gujarat" district.
var districtRanges = [...]districtRange{
	{360001, 360490, "Rajkot"},
	{361001, 361350, "Jamnagar"},
	{362001, 362740, "Junagadh"},
	{363001, 363440, "Surendranagar"},
	{364001, 364765, "Bhavnagar"},
	{365001, 365645, "Amreli"},
	{370001, 370675, "Kutch"},
	{380001, 382481, "Ahmedabad"},
	{382721, 382855, "Gandhinagar"},
	{384001, 384460, "Mehsana"},
	{387001, 387810, "Kheda"},
	{388001, 388640, "Anand"},
	{390001, 391780, "Vadodara"},
	{392001, 393155, "Bharuch"},
	{395001, 396445, "Surat"},
}

// knownCities is advisory only: a city outside this list produces a warning,
// never a field error.
var knownCities = [...]string{
	"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar",
	"Junagadh", "Gandhinagar", "Anand", "Nadiad", "Mehsana", "Bharuch",
	"Vapi", "Navsari", "Morbi", "Surendranagar", "Gandhidham", "Veraval",
	"Porbandar", "Godhra",
}

// inDeliveryRange reports whether a numeric PIN is serviceable.
func inDeliveryRange(pin int) bool {
	for _, r := range deliveryRanges {
		if pin >= r.lo && pin <= r.hi {
			return true
		}
	}
	return false
}

// districtFor resolves a serviceable PIN to a district name, defaulting to
// the generic "Gujarat" when no named sub-range matches.
func districtFor(pin int) string {
	for _, r := range districtRanges {
		if pin >= r.lo && pin <= r.hi {
			return r.district
		}
	}
	return GujaratState
}

// KnownCity reports whether the city appears in the advisory city list.
func KnownCity(city string) bool {
	city = strings.TrimSpace(city)
	for _, known := range knownCities {
		if strings.EqualFold(city, known) {
			return true
		}
	}
	return false
}
