// Package workflow models the fixed five-step case process and the payment
// affordability check.
package workflow

import (
	"time"

	"banking-bpo/core/models"
)

// Workflow stages, in strict forward order. No skipping, no backward moves.
const (
	StageDocumentProcessing   = "document_processing"
	StageCustomerVerification = "customer_verification"
	StageAccountManagement    = "account_management"
	StagePaymentProcessing    = "payment_processing"
	StageCompleted            = "completed"
)

// Stages lists every stage in workflow order.
var Stages = []string{
	StageDocumentProcessing,
	StageCustomerVerification,
	StageAccountManagement,
	StagePaymentProcessing,
	StageCompleted,
}

var nextStage = map[string]string{
	StageDocumentProcessing:   StageCustomerVerification,
	StageCustomerVerification: StageAccountManagement,
	StageAccountManagement:    StagePaymentProcessing,
	StagePaymentProcessing:    StageCompleted,
}

// StageIndex returns the position of a stage in the workflow, or -1 for an
// unknown stage.
func StageIndex(stage string) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

// ValidStage reports whether the value is one of the five workflow stages.
func ValidStage(stage string) bool {
	return StageIndex(stage) >= 0
}

// Advance moves a case one stage forward and bumps LastUpdated. A case
// already in the terminal stage is left untouched and Advance reports false;
// this is a no-op, not an error.
func Advance(c *models.Case, now time.Time) bool {
	next, ok := nextStage[c.WorkflowStage]
	if !ok {
		return false
	}
	c.WorkflowStage = next
	c.LastUpdated = now.Format("2006-01-02")
	return true
}

// Close forces a case to the terminal stage in one step, bypassing any
// intermediate stages. It sets both the display status and the workflow
// stage; the escape hatch for cases that do not need every workflow step.
func Close(c *models.Case, now time.Time) {
	c.Status = "Completed"
	c.WorkflowStage = StageCompleted
	c.LastUpdated = now.Format("2006-01-02")
}

// StatusLabel is the coarse display label a stage loosely maps to. It is a
// rendering convenience only; a case's stored Status can diverge from it.
func StatusLabel(stage string) string {
	switch stage {
	case StageDocumentProcessing:
		return "Active"
	case StageCustomerVerification:
		return "Under Review"
	case StageAccountManagement:
		return "Account Action"
	case StagePaymentProcessing:
		return "Payment Processing"
	case StageCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
