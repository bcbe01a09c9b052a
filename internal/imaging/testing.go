package imaging

// SetTestReverseURL overrides the reverse geocoding URL on a geocoder.
// This should only be used in tests.
func SetTestReverseURL(g *Geocoder, reverseURL string) {
	if reverseURL != "" {
		g.reverseURL = reverseURL
	}
}
