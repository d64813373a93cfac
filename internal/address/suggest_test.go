package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltcart/addressd/internal/address"
	"github.com/voltcart/addressd/internal/pincode"
)

func TestSuggestions_AreaCityDistrict(t *testing.T) {
	info := &pincode.Info{
		PinCode:  "380015",
		State:    "Gujarat",
		District: "Ahmedabad",
		City:     "Ahmedabad City",
		Area:     "Vastrapur",
	}

	suggestions := address.Suggestions(info)

	require.Len(t, suggestions, 3)
	assert.Equal(t, address.SuggestionArea, suggestions[0].Type)
	assert.Equal(t, "Vastrapur", suggestions[0].Name)
	assert.Equal(t, address.SuggestionLocality, suggestions[1].Type)
	assert.Equal(t, "Ahmedabad City", suggestions[1].Name)
	assert.Equal(t, "Ahmedabad", suggestions[2].Name)

	for _, s := range suggestions {
		assert.Equal(t, "380015", s.PinCode)
		assert.Equal(t, "Gujarat", s.State)
		assert.Equal(t, "Ahmedabad", s.District)
	}
}

func TestSuggestions_AreaEqualCitySkipped(t *testing.T) {
	info := &pincode.Info{
		PinCode:  "395001",
		State:    "Gujarat",
		District: "Surat",
		City:     "Surat",
		Area:     "surat",
	}

	suggestions := address.Suggestions(info)

	// Area folds into city; district is still appended even though it
	// repeats the city.
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Surat", suggestions[0].Name)
	assert.Equal(t, "Surat", suggestions[1].Name)
}

func TestSuggestions_DistrictAlwaysPresent(t *testing.T) {
	info := &pincode.Info{
		PinCode:  "370001",
		State:    "Gujarat",
		District: "Kutch",
	}

	suggestions := address.Suggestions(info)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Kutch", suggestions[0].Name)
}

func TestSuggestions_NilInfo(t *testing.T) {
	assert.Nil(t, address.Suggestions(nil))
}
