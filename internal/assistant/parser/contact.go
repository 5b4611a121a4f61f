package parser

import (
	"fmt"
	"regexp"
	"strings"

	"legal-practice-assistant/internal/assistant"
)

var (
	contactCreateRe = regexp.MustCompile(`^(?:add|create|new)\s+(?:(opposing counsel|client|expert|vendor|court)\s+)?contact\s+(.*)$`)
	contactUpdateRe = regexp.MustCompile(`^(?:edit|update|change)\s+contact\s+(.+?)\s+(?:set\s+)?(name|email|phone|mobile|organization|title|category|notes|address|city|state|zip)\s+(?:to\s+)?(.+)$`)

	emailRe = regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().-]{5,}\d`)

	contactOrgKeyRe   = regexp.MustCompile(`\b(?:organization|org|at|from|company)\b\s*`)
	contactOrgStopRe  = regexp.MustCompile(`\b(?:category|title|notes)\b`)
	contactCatRe      = regexp.MustCompile(`\bcategory\s+(\S+)`)
	contactTitleKeyRe = regexp.MustCompile(`\btitle\b\s*`)
	contactNoteStopRe = regexp.MustCompile(`\bnotes\b`)
	contactNotesKeyRe = regexp.MustCompile(`\bnotes\b\s*`)
)

// parseContactCreate handles forms like
//
//	"add contact Jane Roe jane@roe.law at Roe & Partners"
//	"add opposing counsel contact John Doe phone 555-0100"
//
// Email and phone are recognized anywhere in the tail; the leftover text
// before any keyword clause is the contact's name.
func (p *Parser) parseContactCreate(m message) ([]assistant.ProposedAction, bool) {
	loc := contactCreateRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	hint := ""
	if loc[2] >= 0 {
		hint = m.lower[loc[2]:loc[3]]
	}
	working := m.span(loc[4], loc[5])

	email, working, hasEmail := peelMatch(working, emailRe)
	phone, working, hasPhone := peelMatch(working, phoneRe)
	org, working, hasOrg := peelClause(working, contactOrgKeyRe, contactOrgStopRe)
	category, working, hasCategory := peelMatch(working, contactCatRe)
	title, working, hasTitle := peelClause(working, contactTitleKeyRe, contactNoteStopRe)
	notes, working, hasNotes := peelClause(working, contactNotesKeyRe, nil)

	name := working.orig
	if name == "" {
		name = "Unnamed Contact"
	}

	if !hasCategory || category == "" {
		if hint != "" {
			category = strings.ReplaceAll(hint, " ", "-")
		} else {
			category = "general"
		}
	}

	fields := map[string]any{
		"name":     name,
		"category": category,
	}
	if hasEmail {
		fields["email"] = strings.ToLower(email)
	}
	if hasPhone {
		fields["phone"] = phone
	}
	if hasOrg && org != "" {
		fields["organization"] = org
	}
	if hasTitle && title != "" {
		fields["title"] = title
	}
	if hasNotes && notes != "" {
		fields["notes"] = notes
	}

	summary := fmt.Sprintf("Add contact %q (%s)", name, category)
	if hasOrg && org != "" {
		summary += fmt.Sprintf(" at %q", org)
	}

	return []assistant.ProposedAction{{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityContact,
		Fields:  fields,
		Summary: summary,
	}}, true
}

// parseContactUpdate handles "update contact Jane Roe set email to x@y.com".
// The contact is located later by name search, not by ID.
func (p *Parser) parseContactUpdate(m message) ([]assistant.ProposedAction, bool) {
	loc := contactUpdateRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	searchBy := m.orig[loc[2]:loc[3]]
	field := m.lower[loc[4]:loc[5]]
	value := m.orig[loc[6]:loc[7]]
	if field == "email" {
		value = strings.ToLower(value)
	}

	return []assistant.ProposedAction{{
		Type:     assistant.ActionUpdate,
		Entity:   assistant.EntityContact,
		SearchBy: searchBy,
		Fields:   map[string]any{field: value},
		Summary:  fmt.Sprintf("Update contact %q: set %s to %q", searchBy, field, value),
	}}, true
}
