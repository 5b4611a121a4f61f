// Package render formats parse results as the markdown reply shown to the
// user. It is pure text assembly; all decision making happens in the parser.
package render

import (
	"fmt"
	"strings"

	"legal-practice-assistant/internal/assistant"
)

const helpText = `Here's what I can help you with:

**Time Tracking**
- "log 1.5 hours for client call under code CONSULT"
- "bill 2 hours drafting"

**Cases**
- "create case Smith v. Jones type Civil priority High"
- "close case" / "reopen case" / "archive case"
- "set priority to High", "update hearing to next friday"

**Contacts**
- "add contact Jane Roe jane@roe.law at Roe & Partners"
- "update contact Jane Roe set email to jane@new.law"

**Tasks**
- "create task file motion due next friday priority high"
- "create tasks for discovery with subtasks"
- "complete task draft motion"

**Calendar**
- "schedule hearing at courtroom 3 on next friday"
- "remind me to call the clerk in 2 days"

**Invoices**
- "generate invoice for document review amount $1,500 due next friday"

**Notes**
- "write note reviewed the produced documents"
- "post case comment: client approved settlement"

Nothing happens until you confirm a proposed action.`

const statusText = `Your practice summary lives on the dashboard. ` +
	`Open the dashboard for tracked time, upcoming calendar events, and open tasks.`

const fallbackText = `I didn't recognize that as a command. ` +
	`Try rephrasing, or say "help" to see everything I understand.`

// Render converts a parse result into the reply text. Exactly one branch
// applies: help catalog, status pointer, fallback, or the numbered list of
// proposed actions with a confirm-or-rephrase call to action.
func Render(res assistant.ParseResult) string {
	switch {
	case res.IsHelpQuery:
		return helpText
	case res.IsStatusQuery:
		return statusText
	case len(res.Actions) == 0:
		return fallbackText
	}

	var b strings.Builder
	if len(res.Actions) == 1 {
		b.WriteString("I'll propose the following action:\n\n")
	} else {
		fmt.Fprintf(&b, "I'll propose the following %d actions:\n\n", len(res.Actions))
	}

	for i, a := range res.Actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a.Summary)
		for _, st := range a.Subtasks {
			fmt.Fprintf(&b, "   - %s (due in %d days)\n", st.Title, st.DueOffsetDays)
		}
	}

	b.WriteString("\nApply these actions, or rephrase if something looks off.")
	return b.String()
}
