package models

// Case tracks one garnishment case through the back-office workflow.
//
// Status is a coarse human label while WorkflowStage is the fine-grained
// position in the fixed five-step process. The two are loosely coupled: bulk
// status updates change Status without touching WorkflowStage, so they can
// diverge. Dates are stored as they appear in the case file: DateCreated and
// LastUpdated as "2006-01-02".
type Case struct {
	CaseID            string   `json:"case_id"`
	CustomerID        string   `json:"customer_id"`
	CustomerName      string   `json:"customer_name"`
	CaseNumber        string   `json:"case_number"`
	Creditor          string   `json:"creditor"`
	AmountOwed        float64  `json:"amount_owed"`
	GarnishmentAmount float64  `json:"garnishment_amount"`
	Status            string   `json:"status"`
	DateCreated       string   `json:"date_created"`
	LastUpdated       string   `json:"last_updated"`
	Documents         []string `json:"documents"`
	Notes             string   `json:"notes"`
	WorkflowStage     string   `json:"workflow_stage"`
}
