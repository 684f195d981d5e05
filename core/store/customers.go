package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"banking-bpo/core/models"
)

var customerColumns = []string{
	"customer_id", "name", "email", "phone", "account_number",
	"balance", "overdraft_limit", "status", "address", "date_opened",
}

// Customers returns every customer in the registry.
func (s *Store) Customers() ([]models.Customer, error) {
	f, err := os.Open(s.customersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open customers file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read customers file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	customers := make([]models.Customer, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(customerColumns) {
			return nil, fmt.Errorf("malformed customer row: got %d columns, want %d", len(row), len(customerColumns))
		}
		balance, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("bad balance %q: %w", row[5], err)
		}
		limit, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return nil, fmt.Errorf("bad overdraft limit %q: %w", row[6], err)
		}
		customers = append(customers, models.Customer{
			CustomerID:     row[0],
			Name:           row[1],
			Email:          row[2],
			Phone:          row[3],
			AccountNumber:  row[4],
			Balance:        balance,
			OverdraftLimit: limit,
			Status:         row[7],
			Address:        row[8],
			DateOpened:     row[9],
		})
	}
	return customers, nil
}

func (s *Store) writeCustomers(customers []models.Customer) error {
	f, err := os.Create(s.customersFile)
	if err != nil {
		return fmt.Errorf("failed to write customers file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(customerColumns); err != nil {
		return err
	}
	for _, c := range customers {
		row := []string{
			c.CustomerID,
			c.Name,
			c.Email,
			c.Phone,
			c.AccountNumber,
			strconv.FormatFloat(c.Balance, 'f', 2, 64),
			strconv.FormatFloat(c.OverdraftLimit, 'f', 2, 64),
			c.Status,
			c.Address,
			c.DateOpened,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// CustomerByID looks up a customer by id. A missing customer is reported via
// the bool, not an error.
func (s *Store) CustomerByID(customerID string) (models.Customer, bool, error) {
	customers, err := s.Customers()
	if err != nil {
		return models.Customer{}, false, err
	}
	for _, c := range customers {
		if c.CustomerID == customerID {
			return c, true, nil
		}
	}
	return models.Customer{}, false, nil
}

// CustomerByAccount looks up a customer by account number.
func (s *Store) CustomerByAccount(accountNumber string) (models.Customer, bool, error) {
	customers, err := s.Customers()
	if err != nil {
		return models.Customer{}, false, err
	}
	for _, c := range customers {
		if c.AccountNumber == accountNumber {
			return c, true, nil
		}
	}
	return models.Customer{}, false, nil
}

// SearchCustomers returns customers whose name, email or account number
// contains the term, case-insensitively.
func (s *Store) SearchCustomers(term string) ([]models.Customer, error) {
	customers, err := s.Customers()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)

	var matched []models.Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.AccountNumber), term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// UpdateCustomer applies a mutation to the customer with the given id and
// rewrites the registry. Unknown ids are a silent no-op.
func (s *Store) UpdateCustomer(customerID string, update func(*models.Customer)) error {
	customers, err := s.Customers()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].CustomerID == customerID {
			update(&customers[i])
			break
		}
	}
	return s.writeCustomers(customers)
}
