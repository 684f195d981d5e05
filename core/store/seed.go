package store

import (
	"banking-bpo/core/models"
	"banking-bpo/core/workflow"
)

// seed writes sample records into any data file that does not exist yet.
// Missing-file and permission errors on first access are preempted this way:
// the store always starts from a usable state.
func (s *Store) seed() error {
	if !fileExists(s.customersFile) {
		if err := s.writeCustomers(seedCustomers); err != nil {
			return err
		}
	}
	if !fileExists(s.casesFile) {
		if err := s.writeCases(seedCases); err != nil {
			return err
		}
	}
	if !fileExists(s.transactionsFile) {
		if err := s.writeTransactions(seedTransactions); err != nil {
			return err
		}
	}
	if !fileExists(s.documentsFile) {
		if _, err := s.SaveProcessedDocument(seedDocuments[0]); err != nil {
			return err
		}
		if _, err := s.SaveProcessedDocument(seedDocuments[1]); err != nil {
			return err
		}
	}
	return nil
}

var seedCustomers = []models.Customer{
	{
		CustomerID:     "CUST-001",
		Name:           "John Michael Doe",
		Email:          "john.doe@email.com",
		Phone:          "(555) 123-4567",
		AccountNumber:  "ACC-2024-001234",
		Balance:        2500.00,
		OverdraftLimit: 500.00,
		Status:         models.CustomerActive,
		Address:        "123 Main Street, San Francisco, CA 94102",
		DateOpened:     "2020-01-15",
	},
	{
		CustomerID:     "CUST-002",
		Name:           "Jane Elizabeth Smith",
		Email:          "jane.smith@email.com",
		Phone:          "(555) 234-5678",
		AccountNumber:  "ACC-2024-005678",
		Balance:        1800.50,
		OverdraftLimit: 300.00,
		Status:         models.CustomerActive,
		Address:        "456 Oak Avenue, San Francisco, CA 94103",
		DateOpened:     "2019-06-20",
	},
	{
		CustomerID:     "CUST-003",
		Name:           "Robert James Johnson",
		Email:          "robert.johnson@email.com",
		Phone:          "(555) 345-6789",
		AccountNumber:  "ACC-2024-009876",
		Balance:        3200.75,
		OverdraftLimit: 750.00,
		Status:         models.CustomerActive,
		Address:        "789 Pine Street, San Francisco, CA 94104",
		DateOpened:     "2021-03-10",
	},
	{
		CustomerID:     "CUST-004",
		Name:           "Maria Elena Rodriguez",
		Email:          "maria.rodriguez@email.com",
		Phone:          "(555) 456-7890",
		AccountNumber:  "ACC-2024-112233",
		Balance:        950.25,
		OverdraftLimit: 200.00,
		Status:         models.CustomerFrozen,
		Address:        "321 Elm Street, San Francisco, CA 94105",
		DateOpened:     "2022-08-05",
	},
	{
		CustomerID:     "CUST-005",
		Name:           "David Michael Chen",
		Email:          "david.chen@email.com",
		Phone:          "(555) 567-8901",
		AccountNumber:  "ACC-2024-445566",
		Balance:        4150.00,
		OverdraftLimit: 1000.00,
		Status:         models.CustomerActive,
		Address:        "654 Maple Drive, San Francisco, CA 94106",
		DateOpened:     "2018-11-30",
	},
}

var seedCases = []models.Case{
	{
		CaseID:            "CASE-2024-001",
		CustomerID:        "CUST-001",
		CustomerName:      "John Michael Doe",
		CaseNumber:        "CV-2024-001234",
		Creditor:          "ABC Collections Agency",
		AmountOwed:        5000.00,
		GarnishmentAmount: 1250.00,
		Status:            "Active",
		DateCreated:       "2024-01-15",
		LastUpdated:       "2024-01-20",
		Documents:         []string{"garnishment_order_1.pdf"},
		Notes:             "Initial garnishment order received and processed",
		WorkflowStage:     workflow.StageDocumentProcessing,
	},
	{
		CaseID:            "CASE-2024-002",
		CustomerID:        "CUST-002",
		CustomerName:      "Jane Elizabeth Smith",
		CaseNumber:        "CV-2024-005678",
		Creditor:          "XYZ Legal Services",
		AmountOwed:        3400.00,
		GarnishmentAmount: 850.00,
		Status:            "Under Review",
		DateCreated:       "2024-01-18",
		LastUpdated:       "2024-01-22",
		Documents:         []string{"court_notice_2.pdf"},
		Notes:             "Customer verification in progress",
		WorkflowStage:     workflow.StageCustomerVerification,
	},
	{
		CaseID:            "CASE-2024-003",
		CustomerID:        "CUST-004",
		CustomerName:      "Maria Elena Rodriguez",
		CaseNumber:        "CV-2024-009876",
		Creditor:          "Legal Recovery Associates",
		AmountOwed:        8400.00,
		GarnishmentAmount: 2100.00,
		Status:            "Payment Processing",
		DateCreated:       "2024-01-10",
		LastUpdated:       "2024-01-25",
		Documents:         []string{"account_freeze_order_3.pdf", "garnishment_order_3.pdf"},
		Notes:             "Account frozen, payment processing initiated",
		WorkflowStage:     workflow.StagePaymentProcessing,
	},
}

var seedTransactions = []models.Transaction{
	{
		TransactionID:   "TXN-001",
		CaseID:          "CASE-2024-001",
		CustomerID:      "CUST-001",
		Amount:          1250.00,
		TransactionType: "Garnishment Payment",
		Status:          "Completed",
		DateProcessed:   "2024-01-20",
		Creditor:        "ABC Collections Agency",
		ReferenceNumber: "REF-001234",
	},
	{
		TransactionID:   "TXN-002",
		CaseID:          "CASE-2024-002",
		CustomerID:      "CUST-002",
		Amount:          850.00,
		TransactionType: "Garnishment Payment",
		Status:          "Processing",
		DateProcessed:   "2024-01-22",
		Creditor:        "XYZ Legal Services",
		ReferenceNumber: "REF-005678",
	},
	{
		TransactionID:   "TXN-003",
		CaseID:          "CASE-2024-003",
		CustomerID:      "CUST-004",
		Amount:          2100.00,
		TransactionType: "Account Freeze",
		Status:          "Pending",
		DateProcessed:   "2024-01-25",
		Creditor:        "Legal Recovery Associates",
		ReferenceNumber: "REF-009876",
	},
}

var seedDocuments = []models.ProcessedDocument{
	{
		Filename:        "garnishment_order_001.pdf",
		DocumentType:    "garnishment_order",
		CaseID:          "CASE-2024-001",
		CustomerName:    "John Michael Doe",
		ConfidenceScore: 94.2,
		Status:          "Processed",
		ExtractedData: map[string]any{
			"amount":      1250.00,
			"case_number": "CV-2024-001234",
			"creditor":    "ABC Collections Agency",
		},
	},
	{
		Filename:        "court_notice_002.pdf",
		DocumentType:    "court_notice",
		CaseID:          "CASE-2024-002",
		CustomerName:    "Jane Elizabeth Smith",
		ConfidenceScore: 91.8,
		Status:          "Processed",
		ExtractedData: map[string]any{
			"amount":      850.00,
			"case_number": "CV-2024-005678",
			"creditor":    "XYZ Legal Services",
		},
	},
}
