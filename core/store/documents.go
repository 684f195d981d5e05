package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"banking-bpo/core/models"
)

type documentFile struct {
	ProcessedDocuments []models.ProcessedDocument `json:"processed_documents"`
}

// ProcessedDocuments returns the processed-document log.
func (s *Store) ProcessedDocuments() ([]models.ProcessedDocument, error) {
	data, err := os.ReadFile(s.documentsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read documents file: %w", err)
	}
	var df documentFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse documents file: %w", err)
	}
	return df.ProcessedDocuments, nil
}

// SaveProcessedDocument assigns a DOC-NNN id, stamps the processing time and
// appends the record to the log.
func (s *Store) SaveProcessedDocument(doc models.ProcessedDocument) (string, error) {
	documents, err := s.ProcessedDocuments()
	if err != nil {
		return "", err
	}

	doc.DocumentID = fmt.Sprintf("DOC-%03d", len(documents)+1)
	doc.ProcessingDate = time.Now().Format(time.RFC3339)
	documents = append(documents, doc)

	data, err := json.MarshalIndent(documentFile{ProcessedDocuments: documents}, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(s.documentsFile, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write documents file: %w", err)
	}
	return doc.DocumentID, nil
}
