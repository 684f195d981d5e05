package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"banking-bpo/cmd/web"
	"banking-bpo/core/auth"
)

var tmpl *template.Template

func init() {
	funcMap := template.FuncMap{
		"money": func(f float64) string { return fmt.Sprintf("%.2f", f) },
	}
	tmpl = template.Must(template.New("").Funcs(funcMap).ParseFS(web.Files,
		"templates/*.go.html",
		"templates/partial/*.go.html",
	))
}

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", s.healthHandler)
	r.Get("/", s.Dashboard)

	r.Get("/documents", s.ListDocuments)
	r.Post("/documents/upload", s.UploadDocument)
	r.Post("/documents/samples", s.GenerateSamples)
	r.Post("/documents/samples/{name}/process", s.ProcessSample)

	r.Get("/customers", s.ListCustomers)
	r.Post("/customers/verify", s.VerifyCustomer)
	r.Post("/api/verify", s.VerifyCustomerJSON)

	r.Get("/accounts", s.AccountLookup)
	r.Post("/accounts/check", s.CheckAffordability)
	r.Post("/accounts/{customerID}/status", s.SetAccountStatus)
	r.Post("/accounts/{customerID}/overdraft", s.SetOverdraftLimit)
	r.Post("/api/affordability", s.CheckAffordabilityJSON)

	r.Get("/payments", s.ListPayments)
	r.Post("/payments", s.CreatePayment)
	r.Post("/payments/instructions", s.PaymentInstructions)

	r.Get("/cases", s.ListCases)
	r.Post("/cases", s.CreateCase)
	r.Post("/cases/status", s.BulkUpdateCaseStatus)
	r.Get("/cases/{caseID}", s.CaseDetail)
	r.Post("/cases/{caseID}/advance", s.AdvanceCase)
	r.Post("/cases/{caseID}/close", s.CloseCase)
	r.Post("/cases/{caseID}/summary", s.CaseSummary)

	return auth.Middleware(s.cfg.APIKey, tmpl, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "up"}
	if _, err := s.store.Stats(); err != nil {
		health["status"] = "down"
		health["error"] = err.Error()
	}
	s.renderJSON(w, http.StatusOK, health)
}
