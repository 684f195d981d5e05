// Package pipeline turns an uploaded court document into an extraction
// result, a customer verification and a processed-document log entry.
package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"banking-bpo/core/extract"
	"banking-bpo/core/match"
	"banking-bpo/core/models"
	"banking-bpo/core/store"
)

// Extractor is the hosted-model boundary the pipeline depends on.
type Extractor interface {
	Extract(ctx context.Context, text string) extract.Result
	OCRImage(ctx context.Context, dataURL string) (string, error)
}

// Processor orchestrates one document from raw bytes to a stored record.
type Processor struct {
	store     *store.Store
	extractor Extractor
}

func New(s *store.Store, e Extractor) *Processor {
	return &Processor{store: s, extractor: e}
}

// Outcome is everything one processed upload produced.
type Outcome struct {
	DocumentID   string             `json:"document_id,omitempty"`
	Filename     string             `json:"filename"`
	Extraction   extract.Result     `json:"extraction"`
	Verification match.Verification `json:"verification"`
}

// Process extracts text from the uploaded file, runs field extraction,
// verifies the extracted identity against the customer registry and appends
// a record to the processed-document log. Extraction failures do not abort:
// they are recorded and surfaced in the outcome with their status.
func (p *Processor) Process(ctx context.Context, filename string, data []byte) (Outcome, error) {
	outcome := Outcome{Filename: filename}

	text, err := p.extractText(ctx, filename, data)
	if err != nil {
		slog.Error("text extraction failed", "filename", filename, "error", err)
		outcome.Extraction = extract.Result{
			Status: extract.StatusError,
			Fields: map[string]any{},
			Error:  err.Error(),
		}
	} else {
		outcome.Extraction = p.extractor.Extract(ctx, text)
	}

	customers, err := p.store.Customers()
	if err != nil {
		return outcome, fmt.Errorf("failed to load customers: %w", err)
	}
	outcome.Verification = match.Verify(queryFromFields(outcome.Extraction), customers)

	doc := models.ProcessedDocument{
		Filename:        filename,
		DocumentType:    outcome.Extraction.DocumentType,
		ConfidenceScore: outcome.Extraction.ConfidenceScore,
		Status:          recordStatus(outcome.Extraction.Status),
		ExtractedData:   outcome.Extraction.Fields,
	}
	if len(outcome.Verification.Candidates) > 0 {
		doc.CustomerName = outcome.Verification.Candidates[0].Customer.Name
	}
	if caseID, err := p.linkedCase(outcome.Extraction); err == nil {
		doc.CaseID = caseID
	}

	docID, err := p.store.SaveProcessedDocument(doc)
	if err != nil {
		return outcome, fmt.Errorf("failed to record processed document: %w", err)
	}
	outcome.DocumentID = docID

	slog.Info("document processed",
		"filename", filename,
		"document_id", docID,
		"type", outcome.Extraction.DocumentType,
		"status", outcome.Extraction.Status,
		"verification", outcome.Verification.Status)
	return outcome, nil
}

func (p *Processor) extractText(ctx context.Context, filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(data)
	case ".html", ".htm":
		return extractHTMLText(data)
	case ".png", ".jpg", ".jpeg":
		mimeType := "image/png"
		if strings.ToLower(filepath.Ext(filename)) != ".png" {
			mimeType = "image/jpeg"
		}
		dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
		return p.extractor.OCRImage(ctx, dataURL)
	default:
		return string(data), nil
	}
}

// queryFromFields pulls the identity fields out of an extraction, trying the
// aliases the per-document-type prompts use. Missing fields stay empty so
// they contribute nothing to the match.
func queryFromFields(r extract.Result) match.Query {
	return match.Query{
		Name:          rawField(r, "customer_name", "defendant_customer", "account_holder"),
		AccountNumber: rawField(r, "account_number"),
		Address:       rawField(r, "address", "customer_address"),
		Phone:         rawField(r, "phone", "phone_number"),
		Email:         rawField(r, "email"),
	}
}

func rawField(r extract.Result, keys ...string) string {
	for _, key := range keys {
		if s, ok := r.Fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// linkedCase matches an extracted court case number against existing cases.
func (p *Processor) linkedCase(r extract.Result) (string, error) {
	caseNumber := rawField(r, "case_number")
	if caseNumber == "" {
		return "", nil
	}
	cases, err := p.store.Cases()
	if err != nil {
		return "", err
	}
	for _, c := range cases {
		if strings.EqualFold(c.CaseNumber, caseNumber) {
			return c.CaseID, nil
		}
	}
	return "", nil
}

func recordStatus(extractionStatus string) string {
	switch extractionStatus {
	case extract.StatusProcessed:
		return "Processed"
	case extract.StatusPartial:
		return "Partial Success"
	default:
		return "Error"
	}
}
