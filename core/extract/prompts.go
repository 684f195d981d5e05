package extract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const systemPrompt = "You are an expert legal document analyzer. Extract information accurately and return only valid JSON. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON."

const genericPrompt = `Analyze this legal document and extract the following information in JSON format:

Please extract:
1. document_type (e.g., "garnishment_order", "court_notice", "account_freeze_order", "legal_notice")
2. customer_name
3. account_number
4. case_number
5. creditor_name
6. amount (if specified)
7. date_filed
8. bank_name
9. confidence_score (0-100)
10. summary (brief description)

Return only valid JSON format.

DOCUMENT TEXT:
{document_text}`

const garnishmentPrompt = `This is a garnishment order (writ of execution / earnings withholding order).
Extract the following fields as JSON: document_type, case_number, court_name, county,
defendant_customer, account_number, plaintiff_creditor, garnishment_amount,
amount_owed, date_filed, effective_date, bank_name, confidence_score (0-100), summary.
Return only valid JSON.

DOCUMENT TEXT:
{document_text}`

const courtNoticePrompt = `This is a court notice to a financial institution (levy notice).
Extract the following fields as JSON: document_type, case_number, court_name, county,
customer_name, account_number, creditor_name, amount_to_withhold, date_filed,
response_deadline, bank_name, confidence_score (0-100), summary.
Return only valid JSON.

DOCUMENT TEXT:
{document_text}`

const accountFreezePrompt = `This is an account freeze order.
Extract the following fields as JSON: document_type, case_number, court_name,
account_holder, account_number, creditor_name, freeze_amount, date_effective,
bank_name, confidence_score (0-100), summary.
Return only valid JSON.

DOCUMENT TEXT:
{document_text}`

// PromptSet maps document types to extraction prompt templates. Templates
// use a {document_text} placeholder.
type PromptSet struct {
	prompts map[string]string
}

// DefaultPrompts returns the built-in prompt registry.
func DefaultPrompts() *PromptSet {
	return &PromptSet{prompts: map[string]string{
		TypeGarnishmentOrder:   garnishmentPrompt,
		TypeCourtNotice:        courtNoticePrompt,
		TypeAccountFreezeOrder: accountFreezePrompt,
	}}
}

// LoadPrompts builds the prompt registry, overriding built-in templates from
// a YAML file mapping document type to template when a path is given. A
// missing file falls back to the defaults.
func LoadPrompts(path string) (*PromptSet, error) {
	set := DefaultPrompts()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}
	for docType, tmpl := range overrides {
		set.prompts[docType] = tmpl
	}
	return set, nil
}

// For returns the extraction prompt for a document type with the text filled
// in; unknown types get the generic prompt.
func (p *PromptSet) For(documentType, documentText string) string {
	tmpl, ok := p.prompts[documentType]
	if !ok {
		tmpl = genericPrompt
	}
	return strings.ReplaceAll(tmpl, "{document_text}", documentText)
}
