package imaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultReverseURL = "https://nominatim.openstreetmap.org/reverse"
	userAgent         = "homedoc/1.0"
)

// Position is a geolocation fix.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a reverse-geocoded human-readable address.
type Place struct {
	Country      string `json:"country"`
	City         string `json:"city"`
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	PostalCode   string `json:"postalCode"`
}

// String joins the non-empty parts in display order.
func (p Place) String() string {
	var parts []string
	for _, s := range []string{p.Country, p.City, p.Street, p.StreetNumber, p.PostalCode} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Geolocator abstracts the location fix and its reverse geocoding.
type Geolocator interface {
	RequestPermission(ctx context.Context) error
	CurrentPosition(ctx context.Context) (Position, error)
	ReverseGeocode(ctx context.Context, pos Position) (Place, error)
}

// Geocoder resolves positions against a Nominatim-style reverse
// geocoding API. The current position is fixed at construction; a
// server process has no GPS of its own.
type Geocoder struct {
	httpClient *http.Client
	position   Position

	// Overridable URL for testing.
	reverseURL string
}

// NewGeocoder creates a geocoder reporting pos as the current position.
func NewGeocoder(pos Position) *Geocoder {
	return &Geocoder{
		httpClient: &http.Client{},
		position:   pos,
		reverseURL: defaultReverseURL,
	}
}

// RequestPermission always grants; denial is a device concern.
func (g *Geocoder) RequestPermission(_ context.Context) error { return nil }

// CurrentPosition returns the configured fix.
func (g *Geocoder) CurrentPosition(_ context.Context) (Position, error) {
	return g.position, nil
}

// reverseResponse is the Nominatim reverse geocoding response.
type reverseResponse struct {
	Address struct {
		Country     string `json:"country"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		Postcode    string `json:"postcode"`
	} `json:"address"`
}

// ReverseGeocode resolves a position to a Place.
func (g *Geocoder) ReverseGeocode(ctx context.Context, pos Position) (Place, error) {
	params := url.Values{
		"lat":    {strconv.FormatFloat(pos.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(pos.Lon, 'f', -1, 64)},
		"format": {"jsonv2"},
	}

	req, err := http.NewRequestWithContext(ctx, "GET", g.reverseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("sending request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = fmt.Errorf("%w (also failed to close body: %v)", err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var result reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Place{}, fmt.Errorf("decoding response: %w", err)
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}

	return Place{
		Country:      result.Address.Country,
		City:         city,
		Street:       result.Address.Road,
		StreetNumber: result.Address.HouseNumber,
		PostalCode:   result.Address.Postcode,
	}, nil
}
