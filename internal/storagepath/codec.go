// Package storagepath rewrites blob-store download URLs so that the
// images/ folder prefix survives as a single path segment.
package storagepath

import "strings"

// queryMarker separates the object path from the download query suffix.
const queryMarker = "?alt=media"

// Codec rewrites stored image URLs for display.
//
// The zero value reproduces the historical behavior: when the query
// marker is missing, the entire string is treated as the path and
// rewritten. Set RequireMarker to leave marker-less URLs untouched
// instead (S3-style URLs never carry the marker).
type Codec struct {
	RequireMarker bool
}

// Encode percent-encodes the slash after the images/ folder prefix in
// the path portion of url, leaving the query suffix untouched. Encoding
// is idempotent: already-encoded input comes back unchanged.
func (c Codec) Encode(url string) string {
	i := strings.Index(url, queryMarker)
	if i < 0 {
		if c.RequireMarker {
			return url
		}
		i = len(url)
	}

	path := url[:i]
	encoded := strings.ReplaceAll(path, "/images/", "/images%2F")
	return encoded + url[i:]
}

// Encode applies the zero-value Codec.
func Encode(url string) string {
	return Codec{}.Encode(url)
}
