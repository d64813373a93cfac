package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const postalPincodeName = "postalpincode.in"

// PostalPincodeProvider implements Provider against the free
// api.postalpincode.in India Post lookup API.
// The API serves GET {base}/{pincode} and answers with a single-element
// array carrying a Status string and a PostOffice list.
type PostalPincodeProvider struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// PostalPincodeConfig contains configuration for the provider.
type PostalPincodeConfig struct {
	// BaseURL is the endpoint prefix, e.g. "https://api.postalpincode.in/pincode".
	BaseURL string

	// Client is optional; defaults to http.DefaultClient. Call deadlines are
	// enforced by the caller's context, not the client.
	Client *http.Client

	// Logger is optional; defaults to slog.Default().
	Logger *slog.Logger
}

// NewPostalPincodeProvider creates a provider for the India Post lookup API.
func NewPostalPincodeProvider(cfg PostalPincodeConfig) (*PostalPincodeProvider, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PostalPincodeProvider{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  client,
		logger:  logger,
	}, nil
}

// Name identifies the provider in logs and metrics.
func (p *PostalPincodeProvider) Name() string {
	return postalPincodeName
}

// postalPincodeEnvelope is the wire shape of an api.postalpincode.in response.
type postalPincodeEnvelope []struct {
	Message    string              `json:"Message"`
	Status     string              `json:"Status"`
	PostOffice []postalPostOffice `json:"PostOffice"`
}

type postalPostOffice struct {
	Name     string `json:"Name"`
	Block    string `json:"Block"`
	District string `json:"District"`
	Division string `json:"Division"`
	Region   string `json:"Region"`
	Circle   string `json:"Circle"`
	State    string `json:"State"`
	Country  string `json:"Country"`
	Pincode  string `json:"Pincode"`
}

// Lookup resolves a PIN through the India Post API and normalizes the first
// post-office record. A response the provider does not recognize (wrong
// status, empty record list) yields (nil, nil) so a chain can continue.
func (p *PostalPincodeProvider) Lookup(ctx context.Context, pin string) (*Info, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, pin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnexpectedStatus(p.Name(), resp.StatusCode)
	}

	var envelope postalPincodeEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	info := p.normalize(envelope)
	if info == nil {
		p.logger.Debug("unrecognized lookup response", "provider", p.Name(), "pincode", pin)
	}
	return info, nil
}

// normalize maps the first post-office record into the canonical Info shape.
// Returns nil when the envelope carries no usable record.
func (p *PostalPincodeProvider) normalize(envelope postalPincodeEnvelope) *Info {
	if len(envelope) == 0 {
		return nil
	}

	first := envelope[0]
	if !strings.EqualFold(first.Status, "Success") || len(first.PostOffice) == 0 {
		return nil
	}

	office := first.PostOffice[0]

	// Block is the closest the API has to a city; District is the reliable
	// fallback when Block is absent or the catch-all "NA".
	city := office.Block
	if city == "" || strings.EqualFold(city, "NA") {
		city = office.District
	}

	return &Info{
		PinCode:  office.Pincode,
		Country:  office.Country,
		State:    office.State,
		District: office.District,
		City:     city,
		Area:     office.Name,
		Division: office.Division,
		Region:   office.Region,
		Circle:   office.Circle,
	}
}
