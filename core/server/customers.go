package server

import (
	"encoding/json"
	"net/http"

	"banking-bpo/core/match"
	"banking-bpo/core/models"
)

type customersView struct {
	Customers    []models.Customer
	Search       string
	Verification *match.Verification
}

func (s *Server) ListCustomers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	var customers []models.Customer
	var err error
	if search != "" {
		customers, err = s.store.SearchCustomers(search)
	} else {
		customers, err = s.store.Customers()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.render(w, "customers.go.html", customersView{Customers: customers, Search: search})
}

func (s *Server) VerifyCustomer(w http.ResponseWriter, r *http.Request) {
	q := match.Query{
		Name:          r.FormValue("name"),
		AccountNumber: r.FormValue("account_number"),
		Address:       r.FormValue("address"),
		Phone:         r.FormValue("phone"),
		Email:         r.FormValue("email"),
	}

	customers, err := s.store.Customers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	verification := match.Verify(q, customers)

	s.render(w, "customers.go.html", customersView{
		Customers:    customers,
		Verification: &verification,
	})
}

func (s *Server) VerifyCustomerJSON(w http.ResponseWriter, r *http.Request) {
	var q match.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customers, err := s.store.Customers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderJSON(w, http.StatusOK, match.Verify(q, customers))
}
