package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"banking-bpo/core/models"
	"banking-bpo/core/workflow"
)

type casesView struct {
	Customers []models.Customer
	Cases     []models.Case
	Error     string
}

type caseDetailView struct {
	Case         models.Case
	Timeline     []workflow.TimelineEvent
	Transactions []models.Transaction
	Summary      string
	Error        string
}

func (s *Server) casesData() (casesView, error) {
	var view casesView
	var err error
	if view.Customers, err = s.store.Customers(); err != nil {
		return view, err
	}
	view.Cases, err = s.store.Cases()
	return view, err
}

func (s *Server) ListCases(w http.ResponseWriter, r *http.Request) {
	view, err := s.casesData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "cases.go.html", view)
}

func (s *Server) CreateCase(w http.ResponseWriter, r *http.Request) {
	customer, ok, err := s.store.CustomerByID(r.FormValue("customer_id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "unknown customer", http.StatusBadRequest)
		return
	}

	amountOwed, _ := strconv.ParseFloat(r.FormValue("amount_owed"), 64)
	garnishment, _ := strconv.ParseFloat(r.FormValue("garnishment_amount"), 64)

	caseID, err := s.store.CreateCase(models.Case{
		CustomerID:        customer.CustomerID,
		CustomerName:      customer.Name,
		CaseNumber:        r.FormValue("case_number"),
		Creditor:          r.FormValue("creditor"),
		AmountOwed:        amountOwed,
		GarnishmentAmount: garnishment,
		Notes:             r.FormValue("notes"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/cases/"+caseID, http.StatusSeeOther)
}

func (s *Server) BulkUpdateCaseStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	caseIDs := r.Form["case_id"]
	if len(caseIDs) > 0 {
		if err := s.store.BulkUpdateStatus(caseIDs, r.FormValue("status")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	http.Redirect(w, r, "/cases", http.StatusSeeOther)
}

func (s *Server) caseDetailData(caseID string) (caseDetailView, bool, error) {
	kase, ok, err := s.store.CaseByID(caseID)
	if err != nil || !ok {
		return caseDetailView{}, ok, err
	}
	transactions, err := s.store.TransactionsByCase(caseID)
	if err != nil {
		return caseDetailView{}, true, err
	}
	return caseDetailView{
		Case:         kase,
		Timeline:     workflow.Timeline(kase),
		Transactions: transactions,
	}, true, nil
}

func (s *Server) CaseDetail(w http.ResponseWriter, r *http.Request) {
	view, ok, err := s.caseDetailData(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.render(w, "case-detail.go.html", view)
}

func (s *Server) AdvanceCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	_, _, err := s.store.AdvanceCase(caseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/cases/"+caseID, http.StatusSeeOther)
}

func (s *Server) CloseCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	_, ok, err := s.store.CloseCase(caseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/cases/"+caseID, http.StatusSeeOther)
}

// CaseSummary asks the assistant for a prose writeup of the case, feeding it
// the most recent processed document linked to the case when one exists.
func (s *Server) CaseSummary(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	view, ok, err := s.caseDetailData(caseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	documents, err := s.store.ProcessedDocuments()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var documentInfo any = view.Case
	for _, doc := range documents {
		if doc.CaseID == caseID {
			documentInfo = doc
		}
	}

	customer, _, err := s.store.CustomerByID(view.Case.CustomerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	verification := map[string]any{
		"customer_id":    customer.CustomerID,
		"customer_name":  customer.Name,
		"account_number": customer.AccountNumber,
		"account_status": customer.Status,
	}

	summary, err := s.assistant.Summary(r.Context(), documentInfo, verification)
	if err != nil {
		view.Error = err.Error()
	}
	view.Summary = summary
	s.render(w, "case-detail.go.html", view)
}
