package parser

import (
	"strings"

	"legal-practice-assistant/internal/assistant"
)

// templateFor returns the subtask checklist for a task topic. Matching is by
// keyword containment, most specific template first; anything unrecognized
// gets the generic plan/execute/review/finalize breakdown.
func templateFor(topic string) []assistant.Subtask {
	t := strings.ToLower(topic)

	switch {
	case strings.Contains(t, "discovery"):
		return []assistant.Subtask{
			{Title: "Prepare initial disclosure documents", DueOffsetDays: 7},
			{Title: "Draft interrogatories", DueOffsetDays: 14},
			{Title: "Draft requests for production", DueOffsetDays: 21},
			{Title: "Review opposing party's discovery requests", DueOffsetDays: 30},
			{Title: "Prepare responses to interrogatories", DueOffsetDays: 40},
			{Title: "Schedule depositions", DueOffsetDays: 50},
			{Title: "Review produced documents", DueOffsetDays: 60},
			{Title: "Compile discovery summary", DueOffsetDays: 75},
		}
	case strings.Contains(t, "trial") || strings.Contains(t, "hearing"):
		return []assistant.Subtask{
			{Title: "Prepare witness list", DueOffsetDays: 7},
			{Title: "Draft direct examination outlines", DueOffsetDays: 14},
			{Title: "Prepare exhibit list", DueOffsetDays: 21},
			{Title: "File pretrial motions", DueOffsetDays: 28},
			{Title: "Prepare opening statement", DueOffsetDays: 35},
			{Title: "Conduct mock examination", DueOffsetDays: 42},
			{Title: "Finalize trial binder", DueOffsetDays: 49},
		}
	case strings.Contains(t, "filing") || strings.Contains(t, "complaint") || strings.Contains(t, "motion"):
		return []assistant.Subtask{
			{Title: "Research applicable law", DueOffsetDays: 3},
			{Title: "Draft initial version", DueOffsetDays: 7},
			{Title: "Internal review and revisions", DueOffsetDays: 10},
			{Title: "Client review and approval", DueOffsetDays: 14},
			{Title: "Finalize and file with court", DueOffsetDays: 17},
			{Title: "Calendar response deadlines", DueOffsetDays: 18},
		}
	case strings.Contains(t, "mediation") || strings.Contains(t, "settlement"):
		return []assistant.Subtask{
			{Title: "Prepare settlement position summary", DueOffsetDays: 5},
			{Title: "Compile supporting documents", DueOffsetDays: 10},
			{Title: "Draft mediation statement", DueOffsetDays: 14},
			{Title: "Client preparation session", DueOffsetDays: 18},
			{Title: "Attend mediation session", DueOffsetDays: 21},
			{Title: "Document settlement terms", DueOffsetDays: 25},
		}
	case strings.Contains(t, "client") && strings.Contains(t, "intake"):
		return []assistant.Subtask{
			{Title: "Send engagement letter", DueOffsetDays: 1},
			{Title: "Collect client documents", DueOffsetDays: 3},
			{Title: "Run conflict check", DueOffsetDays: 5},
			{Title: "Open case file", DueOffsetDays: 7},
			{Title: "Initial strategy meeting", DueOffsetDays: 10},
			{Title: "Send welcome packet", DueOffsetDays: 12},
		}
	default:
		return []assistant.Subtask{
			{Title: "Plan " + topic, DueOffsetDays: 3},
			{Title: "Execute " + topic, DueOffsetDays: 7},
			{Title: "Review " + topic, DueOffsetDays: 10},
			{Title: "Finalize " + topic, DueOffsetDays: 14},
		}
	}
}
