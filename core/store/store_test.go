package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-bpo/core/models"
	"banking-bpo/core/workflow"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestOpenSeedsMissingFiles(t *testing.T) {
	s := openTestStore(t)

	customers, err := s.Customers()
	require.NoError(t, err)
	assert.Len(t, customers, 5)
	assert.Equal(t, "John Michael Doe", customers[0].Name)
	assert.Equal(t, 2500.00, customers[0].Balance)

	cases, err := s.Cases()
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	transactions, err := s.Transactions()
	require.NoError(t, err)
	assert.Len(t, transactions, 3)

	documents, err := s.ProcessedDocuments()
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "DOC-001", documents[0].DocumentID)
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.CreateCase(models.Case{CustomerID: "CUST-001", CustomerName: "John Michael Doe"})
	require.NoError(t, err)

	// Reopening must not re-seed over existing data.
	s2, err := Open(dir)
	require.NoError(t, err)
	cases, err := s2.Cases()
	require.NoError(t, err)
	assert.Len(t, cases, 4)
}

func TestCustomerLookups(t *testing.T) {
	s := openTestStore(t)

	c, ok, err := s.CustomerByID("CUST-003")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Robert James Johnson", c.Name)

	c, ok, err = s.CustomerByAccount("ACC-2024-112233")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "CUST-004", c.CustomerID)

	_, ok, err = s.CustomerByID("CUST-999")
	require.NoError(t, err)
	assert.False(t, ok, "unknown id is not an error, just absent")
}

func TestSearchCustomers(t *testing.T) {
	s := openTestStore(t)

	byName, err := s.SearchCustomers("jane")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "CUST-002", byName[0].CustomerID)

	byAccount, err := s.SearchCustomers("001234")
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, "CUST-001", byAccount[0].CustomerID)

	none, err := s.SearchCustomers("zzz-no-such")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateCustomer(t *testing.T) {
	s := openTestStore(t)

	err := s.UpdateCustomer("CUST-001", func(c *models.Customer) {
		c.Status = models.CustomerFrozen
		c.OverdraftLimit = 0
	})
	require.NoError(t, err)

	c, ok, err := s.CustomerByID("CUST-001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.CustomerFrozen, c.Status)
	assert.Equal(t, 0.0, c.OverdraftLimit)
}

func TestCreateCaseDefaults(t *testing.T) {
	s := openTestStore(t)

	id, err := s.CreateCase(models.Case{
		CustomerID:        "CUST-002",
		CustomerName:      "Jane Elizabeth Smith",
		CaseNumber:        "CV-2024-424242",
		Creditor:          "Some Creditor",
		AmountOwed:        1000,
		GarnishmentAmount: 250,
	})
	require.NoError(t, err)

	year := time.Now().Format("2006")
	assert.Equal(t, "CASE-"+year+"-004", id)

	c, ok, err := s.CaseByID(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Active", c.Status)
	assert.Equal(t, workflow.StageDocumentProcessing, c.WorkflowStage)
	assert.Equal(t, time.Now().Format("2006-01-02"), c.DateCreated)
	assert.NotNil(t, c.Documents)
}

func TestAdvanceCasePersists(t *testing.T) {
	s := openTestStore(t)

	c, advanced, err := s.AdvanceCase("CASE-2024-001")
	require.NoError(t, err)
	assert.True(t, advanced)
	assert.Equal(t, workflow.StageCustomerVerification, c.WorkflowStage)

	reloaded, ok, err := s.CaseByID("CASE-2024-001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, workflow.StageCustomerVerification, reloaded.WorkflowStage)
}

func TestAdvanceCompletedCaseIsNoOp(t *testing.T) {
	s := openTestStore(t)

	_, _, err := s.CloseCase("CASE-2024-001")
	require.NoError(t, err)
	closed, ok, err := s.CaseByID("CASE-2024-001")
	require.NoError(t, err)
	require.True(t, ok)

	c, advanced, err := s.AdvanceCase("CASE-2024-001")
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, workflow.StageCompleted, c.WorkflowStage)
	assert.Equal(t, closed.LastUpdated, c.LastUpdated)
}

func TestAdvanceUnknownCase(t *testing.T) {
	s := openTestStore(t)
	_, advanced, err := s.AdvanceCase("CASE-0000-000")
	require.NoError(t, err)
	assert.False(t, advanced)
}

func TestBulkUpdateStatusLeavesStageAlone(t *testing.T) {
	s := openTestStore(t)

	err := s.BulkUpdateStatus([]string{"CASE-2024-001", "CASE-2024-002"}, "Completed")
	require.NoError(t, err)

	c, _, err := s.CaseByID("CASE-2024-001")
	require.NoError(t, err)
	assert.Equal(t, "Completed", c.Status)
	assert.Equal(t, workflow.StageDocumentProcessing, c.WorkflowStage,
		"bulk status update must not touch the workflow stage")

	untouched, _, err := s.CaseByID("CASE-2024-003")
	require.NoError(t, err)
	assert.Equal(t, "Payment Processing", untouched.Status)
}

func TestCreateTransaction(t *testing.T) {
	s := openTestStore(t)

	id, err := s.CreateTransaction(models.Transaction{
		CaseID:          "CASE-2024-001",
		CustomerID:      "CUST-001",
		Amount:          1250,
		TransactionType: "Garnishment Payment",
		Status:          "Processing",
		Creditor:        "ABC Collections Agency",
	})
	require.NoError(t, err)
	assert.Equal(t, "TXN-004", id)

	transactions, err := s.TransactionsByCase("CASE-2024-001")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	created := transactions[1]
	assert.Equal(t, "TXN-004", created.TransactionID)
	assert.Contains(t, created.ReferenceNumber, "REF-")
	assert.Equal(t, time.Now().Format("2006-01-02"), created.DateProcessed)
}

func TestSaveProcessedDocument(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveProcessedDocument(models.ProcessedDocument{
		Filename:        "garnishment_order_099.pdf",
		DocumentType:    "garnishment_order",
		ConfidenceScore: 88,
		Status:          "Processed",
		ExtractedData:   map[string]any{"case_number": "CV-2024-999999"},
	})
	require.NoError(t, err)
	assert.Equal(t, "DOC-003", id)

	documents, err := s.ProcessedDocuments()
	require.NoError(t, err)
	require.Len(t, documents, 3)
	assert.Equal(t, "CV-2024-999999", documents[2].ExtractedData["case_number"])
}

func TestStats(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalCustomers)
	assert.Equal(t, 4, stats.ActiveCustomers)
	assert.Equal(t, 3, stats.TotalCases)
	assert.Equal(t, 1, stats.ActiveCases)
	assert.Equal(t, 3, stats.TotalTransactions)
	assert.Equal(t, 1, stats.CompletedTransactions)
	assert.InDelta(t, 2520.30, stats.AverageBalance, 0.01)
	assert.InDelta(t, 4200.00, stats.TotalGarnishmentAmount, 0.01)
}
