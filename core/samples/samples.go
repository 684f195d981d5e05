// Package samples writes sample court documents into the data directory so
// the dashboard can be exercised without real uploads.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const sampleSubdir = "sample_documents"

var sampleDocuments = map[string]string{
	"garnishment_order_sample.txt": `SUPERIOR COURT OF CALIFORNIA, COUNTY OF SAN FRANCISCO

WRIT OF EXECUTION (EARNINGS WITHHOLDING ORDER)

Case Number: CV-2024-001234
Plaintiff/Creditor: ABC Collections Agency
Defendant: John Michael Doe
Account Number: ACC-2024-001234
Bank: First National Bank

TO THE FINANCIAL INSTITUTION: You are ordered to withhold the sum of
$1,250.00 from the above-named account holder and remit payment to the
creditor named above.

Amount Owed: $5,000.00
Garnishment Amount: $1,250.00
Date Filed: 2024-01-15
`,
	"court_notice_sample.txt": `SUPERIOR COURT OF CALIFORNIA, COUNTY OF SAN FRANCISCO

NOTICE TO FINANCIAL INSTITUTION (LEVY NOTICE)

Case Number: CV-2024-005678
Creditor: XYZ Legal Services
Customer: Jane Elizabeth Smith
Account Number: ACC-2024-005678

You are hereby notified that a levy has been placed on the above account.
Amount to Withhold: $850.00
Response Deadline: 2024-02-15
Date Filed: 2024-01-18
`,
	"account_freeze_order_sample.txt": `SUPERIOR COURT OF CALIFORNIA, COUNTY OF SAN FRANCISCO

ACCOUNT FREEZE ORDER

Case Number: CV-2024-009876
Creditor: Legal Recovery Associates
Account Holder: Maria Elena Rodriguez
Account Number: ACC-2024-112233

By order of the court the above account is subject to an immediate freeze
order pending resolution of the attached garnishment proceedings.
Freeze Amount: $2,100.00
Date Effective: 2024-01-10
`,
}

// Generate writes any missing sample documents under dataDir and returns the
// file names on disk, sorted.
func Generate(dataDir string) ([]string, error) {
	dir := filepath.Join(dataDir, sampleSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create samples dir: %w", err)
	}

	names := make([]string, 0, len(sampleDocuments))
	for name, content := range sampleDocuments {
		names = append(names, name)
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write sample %s: %w", name, err)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the contents of one generated sample by file name. The name
// must be one of the known samples; path segments are rejected.
func Read(dataDir, name string) ([]byte, error) {
	if _, ok := sampleDocuments[name]; !ok {
		return nil, fmt.Errorf("unknown sample document %q", name)
	}
	return os.ReadFile(filepath.Join(dataDir, sampleSubdir, name))
}

// List returns the known sample file names, sorted.
func List() []string {
	names := make([]string, 0, len(sampleDocuments))
	for name := range sampleDocuments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
