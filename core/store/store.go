// Package store persists customers, cases, transactions and the
// processed-document log as flat files under a data directory. Every read
// loads a file in full and every mutation rewrites it in full; record counts
// are small enough that nothing smarter is warranted. The store assumes a
// single in-process writer -- concurrent writers can overwrite each other.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	dataDir          string
	customersFile    string
	casesFile        string
	transactionsFile string
	documentsFile    string
}

// Open creates the data directory if needed and seeds any missing data file
// with sample records, so a missing or empty deployment never errors on
// first access.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		dataDir:          dataDir,
		customersFile:    filepath.Join(dataDir, "customers.csv"),
		casesFile:        filepath.Join(dataDir, "cases.json"),
		transactionsFile: filepath.Join(dataDir, "transactions.csv"),
		documentsFile:    filepath.Join(dataDir, "processed_documents.json"),
	}

	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed data files: %w", err)
	}
	return s, nil
}

// DataDir returns the directory the store writes under.
func (s *Store) DataDir() string {
	return s.dataDir
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
