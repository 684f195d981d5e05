package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"banking-bpo/core/models"
	"banking-bpo/core/workflow"
)

type accountsView struct {
	Account      string
	Customer     *models.Customer
	NotFound     bool
	Check        *workflow.PaymentCheck
	Cases        []models.Case
	Transactions []models.Transaction
}

func (s *Server) accountData(accountNumber string, check *workflow.PaymentCheck) (accountsView, error) {
	view := accountsView{Account: accountNumber, Check: check}
	if accountNumber == "" {
		return view, nil
	}

	customer, ok, err := s.store.CustomerByAccount(accountNumber)
	if err != nil {
		return view, err
	}
	if !ok {
		view.NotFound = true
		return view, nil
	}
	view.Customer = &customer

	if view.Cases, err = s.store.CasesByCustomer(customer.CustomerID); err != nil {
		return view, err
	}
	if view.Transactions, err = s.store.TransactionsByCustomer(customer.CustomerID); err != nil {
		return view, err
	}
	return view, nil
}

func (s *Server) AccountLookup(w http.ResponseWriter, r *http.Request) {
	view, err := s.accountData(r.URL.Query().Get("account"), nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "accounts.go.html", view)
}

func (s *Server) CheckAffordability(w http.ResponseWriter, r *http.Request) {
	account := r.FormValue("account")
	amount, _ := strconv.ParseFloat(r.FormValue("amount"), 64)

	customer, ok, err := s.store.CustomerByAccount(account)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var check *workflow.PaymentCheck
	if ok {
		c := workflow.CanPay(customer.Balance, customer.OverdraftLimit, amount)
		check = &c
	}

	view, err := s.accountData(account, check)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "accounts.go.html", view)
}

func (s *Server) SetAccountStatus(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	status := r.FormValue("status")
	if status != models.CustomerActive && status != models.CustomerFrozen && status != models.CustomerClosed {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	err := s.store.UpdateCustomer(customerID, func(c *models.Customer) {
		c.Status = status
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.redirectToAccount(w, r, customerID)
}

func (s *Server) SetOverdraftLimit(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	limit, err := strconv.ParseFloat(r.FormValue("overdraft_limit"), 64)
	if err != nil || limit < 0 {
		http.Error(w, "invalid overdraft limit", http.StatusBadRequest)
		return
	}

	err = s.store.UpdateCustomer(customerID, func(c *models.Customer) {
		c.OverdraftLimit = limit
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.redirectToAccount(w, r, customerID)
}

func (s *Server) redirectToAccount(w http.ResponseWriter, r *http.Request, customerID string) {
	customer, ok, err := s.store.CustomerByID(customerID)
	if err != nil || !ok {
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/accounts?account="+customer.AccountNumber, http.StatusSeeOther)
}

type affordabilityRequest struct {
	Balance        float64 `json:"balance"`
	OverdraftLimit float64 `json:"overdraft_limit"`
	RequiredAmount float64 `json:"required_amount"`
}

func (s *Server) CheckAffordabilityJSON(w http.ResponseWriter, r *http.Request) {
	var req affordabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.renderJSON(w, http.StatusOK, workflow.CanPay(req.Balance, req.OverdraftLimit, req.RequiredAmount))
}
