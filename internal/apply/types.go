package apply

import (
	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/model"
)

// ActionStatus reports what happened to one proposed action during apply.
type ActionStatus string

const (
	StatusApplied ActionStatus = "applied"
	StatusSkipped ActionStatus = "skipped"
)

// ApplyInput carries the confirmed actions to execute, in order.
type ApplyInput struct {
	Actions []assistant.ProposedAction
}

// ActionResult is the per-action outcome. Skipped actions carry the reason;
// applied creates carry the new record's ID.
type ActionResult struct {
	Summary      string       `json:"summary"`
	Status       ActionStatus `json:"status"`
	EntityID     string       `json:"entity_id,omitempty"`
	Reason       string       `json:"reason,omitempty"`
	CalendarLink string       `json:"calendar_link,omitempty"`
}

// ApplyOutput aggregates the per-action results. A partial failure is not a
// call error: skipped actions are reported alongside applied ones.
type ApplyOutput struct {
	Results []ActionResult
	Applied int
	Skipped int
}

// ActivityInput selects how much of the audit trail to return.
type ActivityInput struct {
	Limit int
}

// ActivityOutput carries audit entries, most recent first.
type ActivityOutput struct {
	Records []model.AuditRecord
}
