package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-bpo/core/config"
	"banking-bpo/core/extract"
	"banking-bpo/core/match"
	"banking-bpo/core/pipeline"
	"banking-bpo/core/store"
	"banking-bpo/core/workflow"
)

type stubExtractor struct {
	result extract.Result
}

func (s *stubExtractor) Extract(ctx context.Context, text string) extract.Result {
	return s.result
}

func (s *stubExtractor) OCRImage(ctx context.Context, dataURL string) (string, error) {
	return "", nil
}

type stubAssistant struct {
	summary      string
	instructions string
}

func (s *stubAssistant) Summary(ctx context.Context, documentInfo, verification any) (string, error) {
	return s.summary, nil
}

func (s *stubAssistant) PaymentInstructions(ctx context.Context, customerName, accountNumber string, amount float64, creditor string) (string, error) {
	return s.instructions, nil
}

func newTestServer(t *testing.T, cfg config.Config) (*Server, http.Handler) {
	t.Helper()

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	srv := &Server{
		cfg:   cfg,
		store: st,
		processor: pipeline.New(st, &stubExtractor{result: extract.Result{
			Status:       extract.StatusProcessed,
			DocumentType: extract.TypeGarnishmentOrder,
			Fields: map[string]any{
				"customer_name":  "John Michael Doe",
				"account_number": "ACC-2024-001234",
				"case_number":    "CV-2024-001234",
			},
			ConfidenceScore: 90,
		}}),
		assistant: &stubAssistant{
			summary:      "Garnishment case summary for review.",
			instructions: "Wire the garnishment amount to the creditor.",
		},
	}
	return srv, srv.RegisterRoutes()
}

func do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "up", health["status"])
}

func TestDashboard(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CASE-2024-001")
}

func TestVerifyCustomerJSON(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	body, _ := json.Marshal(match.Query{
		Name:          "John Michael Doe",
		AccountNumber: "ACC-2024-001234",
		Email:         "john.doe@email.com",
	})
	rec := do(handler, httptest.NewRequest(http.MethodPost, "/api/verify", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var v match.Verification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, match.StatusVerified, v.Status)
	assert.True(t, v.MatchFound)
	require.NotEmpty(t, v.Candidates)
	assert.Equal(t, "CUST-001", v.Candidates[0].Customer.CustomerID)
}

func TestCheckAffordabilityJSON(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	body := `{"balance": 1000, "overdraft_limit": 500, "required_amount": 1200}`
	rec := do(handler, httptest.NewRequest(http.MethodPost, "/api/affordability", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var check workflow.PaymentCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	assert.True(t, check.Possible)
	assert.True(t, check.UsesOverdraft)
	assert.Equal(t, 200.0, check.OverdraftAmount)
	assert.Equal(t, 300.0, check.RemainingAfterPayment)
}

func TestUploadDocument(t *testing.T) {
	srv, handler := newTestServer(t, config.Config{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "writ.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("WRIT OF EXECUTION for John Michael Doe"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/documents/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := do(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "writ.txt")

	documents, err := srv.store.ProcessedDocuments()
	require.NoError(t, err)
	require.Len(t, documents, 3)
	assert.Equal(t, "DOC-003", documents[2].DocumentID)
	assert.Equal(t, "CASE-2024-001", documents[2].CaseID)
}

func TestCreateCase(t *testing.T) {
	srv, handler := newTestServer(t, config.Config{})

	form := "customer_id=CUST-003&case_number=CV-2024-777&creditor=Acme+Recovery&amount_owed=2000&garnishment_amount=500&notes=new"
	req := httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(handler, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	wantID := fmt.Sprintf("CASE-%s-004", time.Now().Format("2006"))
	assert.Equal(t, "/cases/"+wantID, rec.Header().Get("Location"))

	kase, ok, err := srv.store.CaseByID(wantID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Robert James Johnson", kase.CustomerName)
	assert.Equal(t, workflow.StageDocumentProcessing, kase.WorkflowStage)
}

func TestAdvanceAndCloseCase(t *testing.T) {
	srv, handler := newTestServer(t, config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/cases/CASE-2024-001/advance", nil)
	rec := do(handler, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	kase, _, err := srv.store.CaseByID("CASE-2024-001")
	require.NoError(t, err)
	assert.Equal(t, workflow.StageCustomerVerification, kase.WorkflowStage)

	req = httptest.NewRequest(http.MethodPost, "/cases/CASE-2024-001/close", nil)
	rec = do(handler, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	kase, _, err = srv.store.CaseByID("CASE-2024-001")
	require.NoError(t, err)
	assert.Equal(t, workflow.StageCompleted, kase.WorkflowStage)
	assert.Equal(t, "Completed", kase.Status)
}

func TestBulkUpdateCaseStatus(t *testing.T) {
	srv, handler := newTestServer(t, config.Config{})

	form := "case_id=CASE-2024-001&case_id=CASE-2024-002&status=Under+Review"
	req := httptest.NewRequest(http.MethodPost, "/cases/status", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(handler, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	kase, _, err := srv.store.CaseByID("CASE-2024-001")
	require.NoError(t, err)
	assert.Equal(t, "Under Review", kase.Status)
	assert.Equal(t, workflow.StageDocumentProcessing, kase.WorkflowStage)
}

func TestCreatePayment(t *testing.T) {
	srv, handler := newTestServer(t, config.Config{})

	// CASE-2024-001 garnishes 1250.00 against a 2500.00 balance.
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader("case_id=CASE-2024-001"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TXN-004")

	customer, _, err := srv.store.CustomerByID("CUST-001")
	require.NoError(t, err)
	assert.Equal(t, 1250.0, customer.Balance)

	transactions, err := srv.store.TransactionsByCase("CASE-2024-001")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Processing", transactions[1].Status)
	assert.Equal(t, "Garnishment Payment", transactions[1].TransactionType)
}

func TestCreatePaymentInsufficientFunds(t *testing.T) {
	srv, handler := newTestServer(t, config.Config{})

	// CASE-2024-003 garnishes 2100.00; CUST-004 has 950.25 plus a 200.00
	// overdraft limit, not enough even with the overdraft.
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader("case_id=CASE-2024-003"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment Not Possible")

	customer, _, err := srv.store.CustomerByID("CUST-004")
	require.NoError(t, err)
	assert.Equal(t, 950.25, customer.Balance)

	transactions, err := srv.store.Transactions()
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestPaymentInstructions(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/payments/instructions", strings.NewReader("case_id=CASE-2024-001"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wire the garnishment amount to the creditor.")
}

func TestCaseSummary(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	rec := do(handler, httptest.NewRequest(http.MethodPost, "/cases/CASE-2024-001/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Garnishment case summary for review.")
}

func TestCaseDetailNotFound(t *testing.T) {
	_, handler := newTestServer(t, config.Config{})

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/cases/CASE-1999-999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthGatesDashboard(t *testing.T) {
	_, handler := newTestServer(t, config.Config{APIKey: "secret"})

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/cases", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_key")

	// Health stays reachable without a key.
	rec = do(handler, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Logging in sets the cookie; replaying it unlocks the dashboard.
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader("api_key=secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = do(handler, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/cases", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = do(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Case Management")
}
