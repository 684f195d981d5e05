package models

// Transaction is one row of the payment ledger.
type Transaction struct {
	TransactionID   string  `json:"transaction_id"`
	CaseID          string  `json:"case_id"`
	CustomerID      string  `json:"customer_id"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	Status          string  `json:"status"`
	DateProcessed   string  `json:"date_processed"`
	Creditor        string  `json:"creditor"`
	ReferenceNumber string  `json:"reference_number"`
}
