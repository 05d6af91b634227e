// Package api exposes the ledger over JSON HTTP.
//
// Every route except /auth/login and /health requires a bearer token;
// mutating routes additionally require the admin role.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/kasrt/internal/auth"
	"github.com/mmynk/kasrt/internal/middleware"
	"github.com/mmynk/kasrt/internal/service"
)

// Server is the ledger HTTP API server.
type Server struct {
	authSvc     *service.AuthService
	ledger      *service.LedgerService
	settings    *service.SettingsService
	reports     *service.ReportService
	tokens      *auth.JWTManager
	withMetrics bool
}

// NewServer creates a new API server.
func NewServer(
	authSvc *service.AuthService,
	ledger *service.LedgerService,
	settings *service.SettingsService,
	reports *service.ReportService,
	tokens *auth.JWTManager,
) *Server {
	return &Server{
		authSvc:  authSvc,
		ledger:   ledger,
		settings: settings,
		reports:  reports,
		tokens:   tokens,
	}
}

// EnableMetrics enables the /metrics prometheus endpoint and per-request counters.
func (s *Server) EnableMetrics() { s.withMetrics = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	if s.withMetrics {
		r.Use(middleware.Metrics)
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/auth/login", s.handleLogin)

	// Authenticated reads; viewer and admin alike.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.tokens))

		r.Get("/residents", s.handleListResidents)
		r.Get("/payments", s.handleListPayments)
		r.Get("/expenses", s.handleListExpenses)
		r.Get("/settings", s.handleGetSettings)

		r.Get("/report/summary", s.handleSummary)
		r.Get("/report/recent", s.handleRecent)
		r.Get("/report/export.csv", s.handleExportCSV)

		// Writes; admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/residents", s.handleCreateResident)
			r.Put("/residents/{id}", s.handleUpdateResident)
			r.Delete("/residents/{id}", s.handleDeleteResident)

			r.Post("/payments", s.handleCreatePayment)
			r.Put("/payments/{id}", s.handleUpdatePayment)
			r.Delete("/payments/{id}", s.handleDeletePayment)

			r.Post("/expenses", s.handleCreateExpense)
			r.Put("/expenses/{id}", s.handleUpdateExpense)
			r.Delete("/expenses/{id}", s.handleDeleteExpense)

			r.Put("/settings", s.handleUpdateSettings)
		})
	})

	return r
}
