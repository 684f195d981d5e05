package extract

import "strings"

// Known document types.
const (
	TypeGarnishmentOrder   = "garnishment_order"
	TypeCourtNotice        = "court_notice"
	TypeAccountFreezeOrder = "account_freeze_order"
	TypeUnknown            = "unknown"
)

// DetectDocumentType classifies a court document by keyword before any model
// call, so the right extraction prompt can be chosen.
func DetectDocumentType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "writ of execution") || strings.Contains(lower, "earnings withholding"):
		return TypeGarnishmentOrder
	case strings.Contains(lower, "notice to financial institution") || strings.Contains(lower, "levy notice"):
		return TypeCourtNotice
	case strings.Contains(lower, "account freeze") || strings.Contains(lower, "freeze order"):
		return TypeAccountFreezeOrder
	default:
		return TypeUnknown
	}
}
