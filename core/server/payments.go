package server

import (
	"log/slog"
	"net/http"

	"banking-bpo/core/models"
	"banking-bpo/core/workflow"
)

type paymentsView struct {
	Cases        []models.Case
	Transactions []models.Transaction
	Created      *models.Transaction
	Check        *workflow.PaymentCheck
	Instructions string
	Error        string
}

func (s *Server) paymentsData() (paymentsView, error) {
	var view paymentsView
	cases, err := s.store.Cases()
	if err != nil {
		return view, err
	}
	// Only cases that still need a payment are offered.
	for _, c := range cases {
		if c.WorkflowStage != workflow.StageCompleted {
			view.Cases = append(view.Cases, c)
		}
	}
	view.Transactions, err = s.store.Transactions()
	return view, err
}

func (s *Server) ListPayments(w http.ResponseWriter, r *http.Request) {
	view, err := s.paymentsData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "payments.go.html", view)
}

// CreatePayment processes the garnishment payment for a case: it checks
// affordability, debits the customer balance and appends a ledger row. An
// unaffordable payment renders as a warning instead of a transaction.
func (s *Server) CreatePayment(w http.ResponseWriter, r *http.Request) {
	view, err := s.paymentsData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	caseID := r.FormValue("case_id")
	kase, ok, err := s.store.CaseByID(caseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		view.Error = "Unknown case " + caseID
		s.render(w, "payments.go.html", view)
		return
	}

	customer, ok, err := s.store.CustomerByID(kase.CustomerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		view.Error = "Case " + caseID + " is not linked to a known customer"
		s.render(w, "payments.go.html", view)
		return
	}

	check := workflow.CanPay(customer.Balance, customer.OverdraftLimit, kase.GarnishmentAmount)
	if !check.Possible {
		view.Check = &check
		s.render(w, "payments.go.html", view)
		return
	}

	txnID, err := s.store.CreateTransaction(models.Transaction{
		CaseID:          kase.CaseID,
		CustomerID:      customer.CustomerID,
		Amount:          kase.GarnishmentAmount,
		TransactionType: "Garnishment Payment",
		Status:          "Processing",
		Creditor:        kase.Creditor,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	err = s.store.UpdateCustomer(customer.CustomerID, func(c *models.Customer) {
		c.Balance -= kase.GarnishmentAmount
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("garnishment payment created",
		"transaction_id", txnID,
		"case_id", kase.CaseID,
		"amount", kase.GarnishmentAmount,
		"uses_overdraft", check.UsesOverdraft)

	view, err = s.paymentsData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for i := range view.Transactions {
		if view.Transactions[i].TransactionID == txnID {
			view.Created = &view.Transactions[i]
		}
	}
	s.render(w, "payments.go.html", view)
}

func (s *Server) PaymentInstructions(w http.ResponseWriter, r *http.Request) {
	view, err := s.paymentsData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	caseID := r.FormValue("case_id")
	kase, ok, err := s.store.CaseByID(caseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		view.Error = "Unknown case " + caseID
		s.render(w, "payments.go.html", view)
		return
	}

	customer, _, err := s.store.CustomerByID(kase.CustomerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	instructions, err := s.assistant.PaymentInstructions(r.Context(),
		customer.Name, customer.AccountNumber, kase.GarnishmentAmount, kase.Creditor)
	if err != nil {
		// Assistant failures render inline; the page itself keeps working.
		view.Error = err.Error()
	}
	view.Instructions = instructions
	s.render(w, "payments.go.html", view)
}
