package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/homedoc/homedoc/internal/survey"
)

type inviteRequest struct {
	SurveyKey   string `json:"survey_key"`
	Landlord    string `json:"landlord"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type cornerRequest struct {
	Category string `json:"category"`
	Image    string `json:"image"`
}

type problemRequest struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

type verifyRequest struct {
	OTP string `json:"otp"`
}

// handleTenants routes /api/tenants — list or invite.
func (s *Server) handleTenants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tenants, err := s.tenants.List()
		if err != nil {
			domainError(w, err)
			return
		}
		apiJSON(w, tenants, http.StatusOK)
	case http.MethodPost:
		s.apiInviteTenant(w, r)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleTenantRoute routes /api/tenants/{name}/* requests.
func (s *Server) handleTenantRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/tenants/")

	if strings.HasSuffix(path, "/corners") {
		name := strings.TrimSuffix(path, "/corners")
		if name == "" {
			apiError(w, "tenant name is required", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiAppendCorner(w, r, name)
		return
	}

	if strings.HasSuffix(path, "/problems") {
		name := strings.TrimSuffix(path, "/problems")
		if name == "" {
			apiError(w, "tenant name is required", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiAppendProblem(w, r, name)
		return
	}

	if strings.HasSuffix(path, "/verify") {
		name := strings.TrimSuffix(path, "/verify")
		if name == "" {
			apiError(w, "tenant name is required", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiVerifyOTP(w, r, name)
		return
	}

	// /api/tenants/{name}
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	info, err := s.tenants.Get(path)
	if err != nil {
		domainError(w, err)
		return
	}
	apiJSON(w, info, http.StatusOK)
}

// apiInviteTenant links a tenant to a committed survey and sends the
// invitation OTP.
func (s *Server) apiInviteTenant(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SurveyKey == "" {
		apiError(w, "survey_key is required", http.StatusBadRequest)
		return
	}

	landlord := req.Landlord
	if landlord == "" {
		landlord = "Your landlord"
	}

	info, err := s.inviter.Invite(req.SurveyKey, landlord, req.Name, req.PhoneNumber)
	if err != nil {
		domainError(w, err)
		return
	}
	apiJSON(w, info, http.StatusCreated)
}

// apiAppendCorner appends a dated corner capture to the tenant's
// per-category history.
func (s *Server) apiAppendCorner(w http.ResponseWriter, r *http.Request, name string) {
	var req cornerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !survey.ValidCategory(req.Category) {
		apiError(w, "unknown category: "+req.Category, http.StatusBadRequest)
		return
	}

	corner, err := s.accumulator.AppendCorner(name, survey.Category(req.Category), req.Image)
	if err != nil {
		domainError(w, err)
		return
	}

	cornerAppends.Inc()
	apiJSON(w, corner, http.StatusCreated)
}

// apiAppendProblem appends a problem report to the tenant's list.
func (s *Server) apiAppendProblem(w http.ResponseWriter, r *http.Request, name string) {
	var req problemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	problem, err := s.accumulator.AppendProblem(name, req.Image, req.Description)
	if err != nil {
		domainError(w, err)
		return
	}
	apiJSON(w, problem, http.StatusCreated)
}

// apiVerifyOTP checks a tenant's one-time passcode.
func (s *Server) apiVerifyOTP(w http.ResponseWriter, r *http.Request, name string) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := s.inviter.VerifyOTP(name, req.OTP)
	if err != nil {
		domainError(w, err)
		return
	}
	apiJSON(w, info, http.StatusOK)
}
