package web

import (
	"net/http"
	"strings"
)

// handleSurveys routes /api/surveys requests.
func (s *Server) handleSurveys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	surveys, err := s.surveys.List()
	if err != nil {
		domainError(w, err)
		return
	}
	apiJSON(w, surveys, http.StatusOK)
}

// handleSurveyByKey serves /api/surveys/{key}. The key is the
// "|"-joined address, URL-escaped by the client.
func (s *Server) handleSurveyByKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/api/surveys/")
	if key == "" {
		apiError(w, "survey key required", http.StatusBadRequest)
		return
	}

	st, err := s.surveys.Get(key)
	if err != nil {
		domainError(w, err)
		return
	}
	apiJSON(w, st, http.StatusOK)
}
