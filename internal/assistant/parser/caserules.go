package parser

import (
	"fmt"
	"regexp"

	"legal-practice-assistant/internal/assistant"
)

var (
	caseCreateRe   = regexp.MustCompile(`^(?:create|new|open|add)\s+(?:a\s+)?case(?:\s+(titled|named|for)\b)?\s*(.*)$`)
	caseStatusRe   = regexp.MustCompile(`^(close|reopen|archive)(?:\s+this)?\s+case$`)
	caseKeyTypeRe  = regexp.MustCompile(`\btype\b\s*`)
	caseKeyDescRe  = regexp.MustCompile(`\bdescription\b\s*`)
	caseClientRe   = regexp.MustCompile(`\b(?:client|for)\b\s*`)
	caseClientOnly = regexp.MustCompile(`\bclient\b\s*`)
	caseStopRe     = regexp.MustCompile(`\b(?:type|priority|client|for|description)\b`)
	casePriorityRe = regexp.MustCompile(`\bpriority\s+(high|medium|low|urgent)\b`)

	caseFieldUpdateRe = regexp.MustCompile(`^(?:update|set|change|edit)\s+(?:case\s+)?(?:the\s+)?(next hearing|hearing|assigned to|billing type|hourly rate|status|priority|type|description|title)\s+(?:to\s+)?(.+)$`)
)

// canonicalCaseFields maps spoken field names to stored field names.
var canonicalCaseFields = map[string]string{
	"status":       "status",
	"priority":     "priority",
	"type":         "type",
	"hearing":      "nextHearing",
	"next hearing": "nextHearing",
	"description":  "description",
	"title":        "title",
	"assigned to":  "assignedTo",
	"billing type": "billingType",
	"hourly rate":  "hourlyRate",
}

// parseCaseCreate handles "create case Smith v. Jones type Civil priority High".
// Optional clauses (type, priority, client, description) are peeled off the
// working string in sequence; whatever remains is the title.
func (p *Parser) parseCaseCreate(m message) ([]assistant.ProposedAction, bool) {
	loc := caseCreateRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	connector := ""
	if loc[2] >= 0 {
		connector = m.lower[loc[2]:loc[3]]
	}
	working := m.span(loc[4], loc[5])

	caseType, working, hasType := peelClause(working, caseKeyTypeRe, caseStopRe)
	priority, working, hasPriority := peelMatch(working, casePriorityRe)

	// "case for <name>" already consumed "for" as the title connector; in
	// that form only an explicit "client" keyword introduces the client.
	clientKey := caseClientRe
	if connector == "for" {
		clientKey = caseClientOnly
	}
	client, working, hasClient := peelClause(working, clientKey, caseStopRe)

	desc, working, hasDesc := peelClause(working, caseKeyDescRe, caseStopRe)

	title := working.orig
	if title == "" {
		title = "Untitled Case"
	}
	if !hasType || caseType == "" {
		caseType = "General"
	}
	if !hasPriority || priority == "" {
		priority = "Medium"
	}

	fields := map[string]any{
		"title":    title,
		"type":     caseType,
		"priority": priority,
		"status":   "Active",
	}
	if hasClient && client != "" {
		fields["clientName"] = client
	}
	if hasDesc && desc != "" {
		fields["description"] = desc
	}

	summary := fmt.Sprintf("Create case %q (type %s, priority %s)", title, caseType, priority)
	if hasClient && client != "" {
		summary += fmt.Sprintf(" for client %q", client)
	}

	return []assistant.ProposedAction{{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityCase,
		Fields:  fields,
		Summary: summary,
	}}, true
}

// parseCaseStatus handles "close case" / "reopen this case" / "archive case".
// Needs a linked case; without one the utterance falls through.
func (p *Parser) parseCaseStatus(m message) ([]assistant.ProposedAction, bool) {
	match := caseStatusRe.FindStringSubmatch(m.lower)
	if match == nil || !m.sc.HasCase() {
		return nil, false
	}

	status := map[string]string{
		"close":   "Closed",
		"reopen":  "Active",
		"archive": "Archived",
	}[match[1]]

	return []assistant.ProposedAction{{
		Type:     assistant.ActionUpdate,
		Entity:   assistant.EntityCase,
		EntityID: m.sc.CaseID,
		Fields:   map[string]any{"status": status},
		Summary:  fmt.Sprintf("Mark current case as %s", status),
	}}, true
}

// parseCaseFieldUpdate handles "set priority to High", "update hearing to
// next friday", etc. against the linked case. The value is kept verbatim.
func (p *Parser) parseCaseFieldUpdate(m message) ([]assistant.ProposedAction, bool) {
	loc := caseFieldUpdateRe.FindStringSubmatchIndex(m.lower)
	if loc == nil || !m.sc.HasCase() {
		return nil, false
	}

	field := canonicalCaseFields[m.lower[loc[2]:loc[3]]]
	value := m.orig[loc[4]:loc[5]]

	return []assistant.ProposedAction{{
		Type:     assistant.ActionUpdate,
		Entity:   assistant.EntityCase,
		EntityID: m.sc.CaseID,
		Fields:   map[string]any{field: value},
		Summary:  fmt.Sprintf("Update case %s to %q", field, value),
	}}, true
}
