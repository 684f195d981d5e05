package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"banking-bpo/core/models"
)

var transactionColumns = []string{
	"transaction_id", "case_id", "customer_id", "amount", "transaction_type",
	"status", "date_processed", "creditor", "reference_number",
}

// Transactions returns the whole payment ledger.
func (s *Store) Transactions() ([]models.Transaction, error) {
	f, err := os.Open(s.transactionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	transactions := make([]models.Transaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(transactionColumns) {
			return nil, fmt.Errorf("malformed transaction row: got %d columns, want %d", len(row), len(transactionColumns))
		}
		amount, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", row[3], err)
		}
		transactions = append(transactions, models.Transaction{
			TransactionID:   row[0],
			CaseID:          row[1],
			CustomerID:      row[2],
			Amount:          amount,
			TransactionType: row[4],
			Status:          row[5],
			DateProcessed:   row[6],
			Creditor:        row[7],
			ReferenceNumber: row[8],
		})
	}
	return transactions, nil
}

func (s *Store) writeTransactions(transactions []models.Transaction) error {
	f, err := os.Create(s.transactionsFile)
	if err != nil {
		return fmt.Errorf("failed to write transactions file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(transactionColumns); err != nil {
		return err
	}
	for _, t := range transactions {
		row := []string{
			t.TransactionID,
			t.CaseID,
			t.CustomerID,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.TransactionType,
			t.Status,
			t.DateProcessed,
			t.Creditor,
			t.ReferenceNumber,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// TransactionsByCustomer filters the ledger to a single customer.
func (s *Store) TransactionsByCustomer(customerID string) ([]models.Transaction, error) {
	transactions, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	var matched []models.Transaction
	for _, t := range transactions {
		if t.CustomerID == customerID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// TransactionsByCase filters the ledger to a single case.
func (s *Store) TransactionsByCase(caseID string) ([]models.Transaction, error) {
	transactions, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	var matched []models.Transaction
	for _, t := range transactions {
		if t.CaseID == caseID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// CreateTransaction assigns a TXN-NNN id, stamps the processing date and
// generates a reference number when none is given, then appends the row.
func (s *Store) CreateTransaction(t models.Transaction) (string, error) {
	transactions, err := s.Transactions()
	if err != nil {
		return "", err
	}

	t.TransactionID = fmt.Sprintf("TXN-%03d", len(transactions)+1)
	t.DateProcessed = time.Now().Format("2006-01-02")
	if t.ReferenceNumber == "" {
		t.ReferenceNumber = "REF-" + uuid.NewString()[:8]
	}

	transactions = append(transactions, t)
	if err := s.writeTransactions(transactions); err != nil {
		return "", err
	}
	return t.TransactionID, nil
}
