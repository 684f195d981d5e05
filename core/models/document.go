package models

// ProcessedDocument is one entry of the processed-document log. ExtractedData
// is sparse: only the fields the extractor actually found are present.
type ProcessedDocument struct {
	DocumentID      string         `json:"document_id"`
	Filename        string         `json:"filename"`
	DocumentType    string         `json:"document_type"`
	CaseID          string         `json:"case_id,omitempty"`
	CustomerName    string         `json:"customer_name,omitempty"`
	ProcessingDate  string         `json:"processing_date"`
	ConfidenceScore float64        `json:"confidence_score"`
	Status          string         `json:"status"`
	ExtractedData   map[string]any `json:"extracted_data"`
}
