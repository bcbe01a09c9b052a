package cli

import (
	"testing"
)

func TestDisplayURL(t *testing.T) {
	tests := []struct {
		name   string
		legacy bool
		in     string
		want   string
	}{
		{
			name: "marker present",
			in:   "https://storage.example.com/v0/b/app/o/images/abc.png?alt=media&token=t1",
			want: "https://storage.example.com/v0/b/app/o/images%2Fabc.png?alt=media&token=t1",
		},
		{
			name: "no marker left alone",
			in:   "https://bucket.s3.us-east-1.amazonaws.com/images/abc.png",
			want: "https://bucket.s3.us-east-1.amazonaws.com/images/abc.png",
		},
		{
			name:   "no marker legacy encodes whole string",
			legacy: true,
			in:     "https://bucket.s3.us-east-1.amazonaws.com/images/abc.png",
			want:   "https://bucket.s3.us-east-1.amazonaws.com/images%2Fabc.png",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := flagLegacyURLs
			flagLegacyURLs = tt.legacy
			defer func() { flagLegacyURLs = prev }()

			got := displayURL(tt.in)
			if got != tt.want {
				t.Errorf("displayURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"this is a long string", 10, "this is..."},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(""); got != "-" {
		t.Errorf("orDash(\"\") = %q, want -", got)
	}
	if got := orDash("x"); got != "x" {
		t.Errorf("orDash(\"x\") = %q, want x", got)
	}
}
