package imaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPlaceString(t *testing.T) {
	p := Place{Country: "Israel", City: "Tel Aviv", Street: "Dizengoff", StreetNumber: "100", PostalCode: "64332"}
	if got := p.String(); got != "Israel, Tel Aviv, Dizengoff, 100, 64332" {
		t.Errorf("string = %q", got)
	}

	// Empty parts are skipped, not rendered as blanks.
	p = Place{Country: "Israel", Street: "Dizengoff"}
	if got := p.String(); got != "Israel, Dizengoff" {
		t.Errorf("string = %q", got)
	}

	if got := (Place{}).String(); got != "" {
		t.Errorf("empty place string = %q", got)
	}
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "jsonv2" {
			t.Errorf("format = %q, want jsonv2", got)
		}
		if got := r.URL.Query().Get("lat"); got != "32.0853" {
			t.Errorf("lat = %q, want 32.0853", got)
		}
		if got := r.Header.Get("User-Agent"); got != "homedoc/1.0" {
			t.Errorf("user-agent = %q", got)
		}
		if _, err := w.Write([]byte(`{"address":{"country":"Israel","city":"Tel Aviv","road":"Dizengoff","house_number":"100","postcode":"64332"}}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	g := NewGeocoder(Position{Lat: 32.0853, Lon: 34.7818})
	SetTestReverseURL(g, srv.URL)

	place, err := g.ReverseGeocode(context.Background(), Position{Lat: 32.0853, Lon: 34.7818})
	if err != nil {
		t.Fatalf("reverse geocode: %v", err)
	}
	if place.City != "Tel Aviv" || place.Street != "Dizengoff" || place.StreetNumber != "100" {
		t.Errorf("place = %+v", place)
	}
}

func TestReverseGeocodeCityFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"city", `{"address":{"city":"Tel Aviv","town":"T","village":"V"}}`, "Tel Aviv"},
		{"town", `{"address":{"town":"Ramat Gan"}}`, "Ramat Gan"},
		{"village", `{"address":{"village":"Neve Tzedek"}}`, "Neve Tzedek"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Fatalf("write: %v", err)
				}
			}))
			defer srv.Close()

			g := NewGeocoder(Position{})
			SetTestReverseURL(g, srv.URL)

			place, err := g.ReverseGeocode(context.Background(), Position{})
			if err != nil {
				t.Fatalf("reverse geocode: %v", err)
			}
			if place.City != tt.want {
				t.Errorf("city = %q, want %q", place.City, tt.want)
			}
		})
	}
}

func TestReverseGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeocoder(Position{})
	SetTestReverseURL(g, srv.URL)

	if _, err := g.ReverseGeocode(context.Background(), Position{}); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestCurrentPositionIsFixed(t *testing.T) {
	g := NewGeocoder(Position{Lat: 1.5, Lon: 2.5})

	pos, err := g.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("current position: %v", err)
	}
	if pos.Lat != 1.5 || pos.Lon != 2.5 {
		t.Errorf("pos = %+v", pos)
	}
}
