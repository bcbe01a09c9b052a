// Package web provides the HTTP JSON API for the homedoc service: the
// survey wizard steps, committed survey access, image upload, and the
// tenant corner/problem endpoints.
package web

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homedoc/homedoc/internal/blob"
	"github.com/homedoc/homedoc/internal/logging"
	"github.com/homedoc/homedoc/internal/notify"
	"github.com/homedoc/homedoc/internal/survey"
	"github.com/homedoc/homedoc/internal/tenant"
)

// Server is the homedoc API server.
type Server struct {
	surveys     *survey.Repository
	tenants     *tenant.Repository
	aggregator  *survey.Aggregator
	accumulator *tenant.Accumulator
	inviter     *tenant.Inviter
	blobs       blob.Store
	mux         *http.ServeMux
}

// NewServer creates an API server over the given database and blob
// store.
func NewServer(db *sql.DB, blobs blob.Store) (*Server, error) {
	if blobs == nil {
		return nil, fmt.Errorf("blob store is required")
	}

	surveys := survey.NewRepository(db)
	tenants := tenant.NewRepository(db)

	s := &Server{
		surveys:     surveys,
		tenants:     tenants,
		aggregator:  survey.NewAggregator(surveys),
		accumulator: tenant.NewAccumulator(tenants),
		inviter:     tenant.NewInviter(tenants, surveys, notify.LogNotifier{}),
		blobs:       blobs,
		mux:         http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())
	s.mux.HandleFunc("/api/wizard/", s.handleWizard)
	s.mux.HandleFunc("/api/surveys", s.handleSurveys)
	s.mux.HandleFunc("/api/surveys/", s.handleSurveyByKey)
	s.mux.HandleFunc("/api/images", s.handleImages)
	s.mux.HandleFunc("/api/tenants", s.handleTenants)
	s.mux.HandleFunc("/api/tenants/", s.handleTenantRoute)

	return s, nil
}

// SetNotifier swaps the SMS notifier used for tenant invitations.
func (s *Server) SetNotifier(n notify.Notifier) {
	s.inviter = tenant.NewInviter(s.tenants, s.surveys, n)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting homedoc API on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}
