package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"banking-bpo/core/models"
	"banking-bpo/core/workflow"
)

type caseFile struct {
	Cases []models.Case `json:"cases"`
}

// Cases returns every case on file.
func (s *Store) Cases() ([]models.Case, error) {
	data, err := os.ReadFile(s.casesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases file: %w", err)
	}
	var cf caseFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse cases file: %w", err)
	}
	return cf.Cases, nil
}

func (s *Store) writeCases(cases []models.Case) error {
	data, err := json.MarshalIndent(caseFile{Cases: cases}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.casesFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cases file: %w", err)
	}
	return nil
}

// CaseByID looks up a case by id.
func (s *Store) CaseByID(caseID string) (models.Case, bool, error) {
	cases, err := s.Cases()
	if err != nil {
		return models.Case{}, false, err
	}
	for _, c := range cases {
		if c.CaseID == caseID {
			return c, true, nil
		}
	}
	return models.Case{}, false, nil
}

// CasesByCustomer returns every case linked to a customer.
func (s *Store) CasesByCustomer(customerID string) ([]models.Case, error) {
	cases, err := s.Cases()
	if err != nil {
		return nil, err
	}
	var matched []models.Case
	for _, c := range cases {
		if c.CustomerID == customerID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// CreateCase assigns an id in the CASE-<year>-NNN series, stamps creation
// dates and fills status/stage defaults, then appends the case to the file.
func (s *Store) CreateCase(c models.Case) (string, error) {
	cases, err := s.Cases()
	if err != nil {
		return "", err
	}

	now := time.Now()
	c.CaseID = fmt.Sprintf("CASE-%s-%03d", now.Format("2006"), len(cases)+1)
	c.DateCreated = now.Format("2006-01-02")
	c.LastUpdated = now.Format("2006-01-02")
	if c.Status == "" {
		c.Status = "Active"
	}
	if c.WorkflowStage == "" {
		c.WorkflowStage = workflow.StageDocumentProcessing
	}
	if c.Documents == nil {
		c.Documents = []string{}
	}

	cases = append(cases, c)
	if err := s.writeCases(cases); err != nil {
		return "", err
	}
	return c.CaseID, nil
}

// UpdateCase applies a mutation to a case and bumps its LastUpdated stamp.
// Unknown ids are a silent no-op.
func (s *Store) UpdateCase(caseID string, update func(*models.Case)) error {
	cases, err := s.Cases()
	if err != nil {
		return err
	}
	for i := range cases {
		if cases[i].CaseID == caseID {
			update(&cases[i])
			cases[i].LastUpdated = time.Now().Format("2006-01-02")
			break
		}
	}
	return s.writeCases(cases)
}

// AdvanceCase moves a case one workflow stage forward. Advancing a terminal
// case changes nothing on disk and reports false.
func (s *Store) AdvanceCase(caseID string) (models.Case, bool, error) {
	cases, err := s.Cases()
	if err != nil {
		return models.Case{}, false, err
	}
	for i := range cases {
		if cases[i].CaseID != caseID {
			continue
		}
		if !workflow.Advance(&cases[i], time.Now()) {
			return cases[i], false, nil
		}
		if err := s.writeCases(cases); err != nil {
			return models.Case{}, false, err
		}
		return cases[i], true, nil
	}
	return models.Case{}, false, nil
}

// CloseCase forces a case straight to completed, bypassing intermediate
// stages.
func (s *Store) CloseCase(caseID string) (models.Case, bool, error) {
	cases, err := s.Cases()
	if err != nil {
		return models.Case{}, false, err
	}
	for i := range cases {
		if cases[i].CaseID != caseID {
			continue
		}
		workflow.Close(&cases[i], time.Now())
		if err := s.writeCases(cases); err != nil {
			return models.Case{}, false, err
		}
		return cases[i], true, nil
	}
	return models.Case{}, false, nil
}

// BulkUpdateStatus sets the display status on every listed case. It leaves
// workflow stages alone, so status and stage can diverge; that looseness is
// part of the existing contract.
func (s *Store) BulkUpdateStatus(caseIDs []string, status string) error {
	cases, err := s.Cases()
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(caseIDs))
	for _, id := range caseIDs {
		ids[id] = true
	}
	now := time.Now().Format("2006-01-02")
	for i := range cases {
		if ids[cases[i].CaseID] {
			cases[i].Status = status
			cases[i].LastUpdated = now
		}
	}
	return s.writeCases(cases)
}
