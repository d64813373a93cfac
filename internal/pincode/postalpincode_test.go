package pincode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltcart/addressd/internal/pincode"
)

const successBody = `[{
	"Message": "Number of pincode(s) found:1",
	"Status": "Success",
	"PostOffice": [{
		"Name": "Vastrapur",
		"Block": "Ahmadabad City",
		"District": "Ahmedabad",
		"Division": "Ahmedabad City",
		"Region": "Ahmedabad HQ",
		"Circle": "Gujarat",
		"State": "Gujarat",
		"Country": "India",
		"Pincode": "380015"
	}]
}]`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *pincode.PostalPincodeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := pincode.NewPostalPincodeProvider(pincode.PostalPincodeConfig{
		BaseURL: srv.URL + "/pincode",
		Client:  srv.Client(),
	})
	require.NoError(t, err)
	return p
}

func TestNewPostalPincodeProvider_RequiresBaseURL(t *testing.T) {
	_, err := pincode.NewPostalPincodeProvider(pincode.PostalPincodeConfig{})
	assert.ErrorIs(t, err, pincode.ErrMissingBaseURL)
}

func TestPostalPincodeLookup_Success(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pincode/380015", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(successBody))
	})

	info, err := p.Lookup(context.Background(), "380015")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "380015", info.PinCode)
	assert.Equal(t, "Gujarat", info.State)
	assert.Equal(t, "Ahmedabad", info.District)
	assert.Equal(t, "Ahmadabad City", info.City)
	assert.Equal(t, "Vastrapur", info.Area)
	assert.Equal(t, "India", info.Country)
}

func TestPostalPincodeLookup_BlockNAFallsBackToDistrict(t *testing.T) {
	body := `[{"Status":"Success","PostOffice":[{"Name":"Bhuj","Block":"NA","District":"Kutch","State":"Gujarat","Country":"India","Pincode":"370001"}]}]`
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	info, err := p.Lookup(context.Background(), "370001")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Kutch", info.City)
}

// "Error" status and empty record lists are unrecognized, not failures, so
// a chain moves on without counting the provider as broken.
func TestPostalPincodeLookup_UnrecognizedResponses(t *testing.T) {
	bodies := []string{
		`[{"Message":"No records found","Status":"Error","PostOffice":null}]`,
		`[{"Status":"Success","PostOffice":[]}]`,
		`[]`,
	}
	for _, body := range bodies {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		info, err := p.Lookup(context.Background(), "999999")

		assert.NoError(t, err, "body %s", body)
		assert.Nil(t, info, "body %s", body)
	}
}

func TestPostalPincodeLookup_NonOKStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	info, err := p.Lookup(context.Background(), "380015")

	assert.Nil(t, info)
	require.Error(t, err)

	var le *pincode.LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "unavailable", le.ErrorCode())
}

// A 404 carries the not-found code so callers can tell a missing record
// apart from a provider outage.
func TestPostalPincodeLookup_NotFoundStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	info, err := p.Lookup(context.Background(), "380015")

	assert.Nil(t, info)
	require.Error(t, err)

	var le *pincode.LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "not_found", le.ErrorCode())
}

func TestPostalPincodeLookup_MalformedBody(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	info, err := p.Lookup(context.Background(), "380015")

	assert.Nil(t, info)
	assert.Error(t, err)
}

func TestPostalPincodeLookup_ContextCancelled(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info, err := p.Lookup(ctx, "380015")

	assert.Nil(t, info)
	assert.Error(t, err)
}
