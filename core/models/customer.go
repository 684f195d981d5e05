package models

// Customer is one row of the customer registry. Customers are unique by
// account number and are never deleted, only updated.
type Customer struct {
	CustomerID     string  `json:"customer_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	AccountNumber  string  `json:"account_number"`
	Balance        float64 `json:"balance"`
	OverdraftLimit float64 `json:"overdraft_limit"`
	Status         string  `json:"status"`
	Address        string  `json:"address"`
	DateOpened     string  `json:"date_opened"`
}

// Customer account statuses.
const (
	CustomerActive = "Active"
	CustomerFrozen = "Frozen"
	CustomerClosed = "Closed"
)
