package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homedoc/homedoc/internal/survey"
	"github.com/homedoc/homedoc/internal/tenant"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// domainError maps domain errors onto HTTP status codes. Validation
// failures return to the caller for correction; nothing is fatal.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, survey.ErrMissingAddress),
		errors.Is(err, survey.ErrMissingVerification),
		errors.Is(err, survey.ErrIncompleteEntry):
		apiError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, survey.ErrNotFound), errors.Is(err, tenant.ErrNotFound):
		apiError(w, err.Error(), http.StatusNotFound)
	default:
		apiError(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
