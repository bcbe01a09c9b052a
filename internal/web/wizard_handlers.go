package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/homedoc/homedoc/internal/survey"
)

// Wizard endpoints carry the serialized survey fragment in and out of
// every step: state lives in the transport, not in the server.

type roomEntryInput struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

type categoryStepRequest struct {
	Fragment json.RawMessage  `json:"fragment,omitempty"`
	Category string           `json:"category"`
	Title    string           `json:"title,omitempty"`
	Count    *int             `json:"count,omitempty"`
	Entries  []roomEntryInput `json:"entries"`
}

type verificationStepRequest struct {
	Fragment       json.RawMessage `json:"fragment,omitempty"`
	IDImage        string          `json:"id_image"`
	OwnershipImage string          `json:"ownership_image"`
	HouseImage     string          `json:"house_image"`
}

type addressStepRequest struct {
	Fragment json.RawMessage `json:"fragment,omitempty"`
	Address  survey.Address  `json:"address"`
}

type commitRequest struct {
	Fragment json.RawMessage `json:"fragment,omitempty"`
}

type fragmentResponse struct {
	Fragment json.RawMessage `json:"fragment"`
}

// handleWizard routes /api/wizard/{step} requests.
func (s *Server) handleWizard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	step := strings.TrimPrefix(r.URL.Path, "/api/wizard/")
	switch step {
	case "category":
		s.wizardCategory(w, r)
	case "verification":
		s.wizardVerification(w, r)
	case "address":
		s.wizardAddress(w, r)
	case "commit":
		s.wizardCommit(w, r)
	default:
		apiError(w, "unknown wizard step", http.StatusNotFound)
	}
}

// wizardCategory applies one category screen: build the entry list
// through the editor, validate it, and merge the patch into the
// carried fragment.
func (s *Server) wizardCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !survey.ValidCategory(req.Category) {
		apiError(w, "unknown category: "+req.Category, http.StatusBadRequest)
		return
	}

	editor, err := survey.NewEditor(survey.Category(req.Category), req.Title)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	count := len(req.Entries)
	if req.Count != nil {
		count = *req.Count
	}
	if err := editor.Resize(count); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, entry := range req.Entries {
		if i >= editor.Count() {
			break
		}
		if entry.Name != "" {
			if err := editor.Rename(i, entry.Name); err != nil {
				domainError(w, err)
				return
			}
		}
		for _, img := range entry.Images {
			if err := editor.AttachImage(i, img); err != nil {
				domainError(w, err)
				return
			}
		}
	}

	patch, err := editor.Save()
	if err != nil {
		domainError(w, err)
		return
	}

	s.applyAndRespond(w, req.Fragment, patch)
}

// wizardVerification merges the three verification captures. All three
// are required before the screen may hand the fragment forward.
func (s *Server) wizardVerification(w http.ResponseWriter, r *http.Request) {
	var req verificationStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	images := survey.VerificationImages{
		IDImage:        req.IDImage,
		OwnershipImage: req.OwnershipImage,
		HouseImage:     req.HouseImage,
	}
	if !images.Complete() {
		domainError(w, survey.ErrMissingVerification)
		return
	}

	s.applyAndRespond(w, req.Fragment, survey.Patch{Verification: &images})
}

// wizardAddress merges the structured address. Completeness is checked
// at commit time.
func (s *Server) wizardAddress(w http.ResponseWriter, r *http.Request) {
	var req addressStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.applyAndRespond(w, req.Fragment, survey.Patch{Address: &req.Address})
}

// wizardCommit validates and persists the whole aggregate.
func (s *Server) wizardCommit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	agg, err := s.aggregator.Init(req.Fragment)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	key, err := s.aggregator.Commit(agg)
	if err != nil {
		surveyCommits.WithLabelValues("error").Inc()
		domainError(w, err)
		return
	}

	surveyCommits.WithLabelValues("ok").Inc()
	apiJSON(w, map[string]string{"key": key}, http.StatusCreated)
}

// applyAndRespond threads the fragment through the aggregator and
// returns the merged, re-serialized fragment.
func (s *Server) applyAndRespond(w http.ResponseWriter, fragment json.RawMessage, patch survey.Patch) {
	agg, err := s.aggregator.Init(fragment)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	agg, err = s.aggregator.ApplyPartial(agg, patch)
	if err != nil {
		domainError(w, err)
		return
	}

	merged, err := s.aggregator.Serialize(agg)
	if err != nil {
		domainError(w, err)
		return
	}

	apiJSON(w, fragmentResponse{Fragment: merged}, http.StatusOK)
}
