package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/homedoc/homedoc/internal/imaging"
)

type uploadRequest struct {
	// Base64-encoded image payload, optionally with a data: prefix.
	Data string `json:"data"`
}

// handleImages accepts a raster upload and returns the durable URL of
// the stored blob. Keys are content-derived, so re-uploading the same
// payload lands on the same key.
func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Data == "" {
		apiError(w, "image data required", http.StatusBadRequest)
		return
	}

	payload := stripDataPrefix(req.Data)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		apiError(w, "invalid base64 payload", http.StatusBadRequest)
		return
	}

	url, err := s.blobs.Upload(r.Context(), imaging.RasterKey(data), data, "image/png")
	if err != nil {
		apiError(w, "upload failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	imageUploads.Inc()
	apiJSON(w, map[string]string{"url": url}, http.StatusCreated)
}

// stripDataPrefix drops a leading data:image/...;base64, marker.
func stripDataPrefix(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}
