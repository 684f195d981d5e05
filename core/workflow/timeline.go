package workflow

import (
	"time"

	"banking-bpo/core/models"
)

// TimelineEvent is one synthesized entry of a case's history view.
type TimelineEvent struct {
	Stage       string `json:"stage"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Days between synthesized events.
const timelineStepDays = 2

var stageDescriptions = map[string]string{
	StageDocumentProcessing:   "Court document received and processed",
	StageCustomerVerification: "Customer identity verified against records",
	StageAccountManagement:    "Account restrictions applied",
	StagePaymentProcessing:    "Garnishment payment initiated",
	StageCompleted:            "Case completed and closed",
}

// Timeline reconstructs a display-only history for a case: one event per
// stage up to and including the current one, dated at fixed offsets from the
// creation date. Only LastUpdated survives a transition, so real transition
// times cannot be replayed; this view is a cosmetic approximation, not an
// authoritative log.
func Timeline(c models.Case) []TimelineEvent {
	current := StageIndex(c.WorkflowStage)
	if current < 0 {
		return nil
	}

	created, err := time.Parse("2006-01-02", c.DateCreated)
	if err != nil {
		created = time.Time{}
	}

	events := make([]TimelineEvent, 0, current+1)
	for i := 0; i <= current; i++ {
		stage := Stages[i]
		events = append(events, TimelineEvent{
			Stage:       stage,
			Description: stageDescriptions[stage],
			Date:        created.AddDate(0, 0, i*timelineStepDays).Format("2006-01-02"),
		})
	}
	return events
}
