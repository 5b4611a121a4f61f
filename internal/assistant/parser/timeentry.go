package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"legal-practice-assistant/internal/assistant"
)

var (
	timeEntryRe   = regexp.MustCompile(`^(?:log|record|track|add|enter)\s+(\d+(?:\.\d+)?)\s*(hours?|hrs?|minutes?|mins?)\b\s*(.*)$`)
	quickBillRe   = regexp.MustCompile(`^bill\s+(\d+(?:\.\d+)?)\s*(hours?|hrs?|minutes?|mins?)\b\s*(.*)$`)
	billingCodeRe = regexp.MustCompile(`\bunder\s+code\s+(\S+)`)
	descLeadRe    = regexp.MustCompile(`^(?:for|on)\s+`)
)

// parseTimeEntry handles "log 1.5 hrs for client call under code CONSULT".
func (p *Parser) parseTimeEntry(m message) ([]assistant.ProposedAction, bool) {
	loc := timeEntryRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	amount, err := strconv.ParseFloat(m.lower[loc[2]:loc[3]], 64)
	if err != nil {
		return nil, false
	}
	unit := m.lower[loc[4]:loc[5]]
	rest := m.span(loc[6], loc[7])

	code, rest, hasCode := peelMatch(rest, billingCodeRe)
	return []assistant.ProposedAction{p.buildTimeEntry(m, amount, unit, rest, code, hasCode)}, true
}

// parseQuickBill is the "bill 2 hrs drafting" alias for the time entry rule,
// minus the billing code slot.
func (p *Parser) parseQuickBill(m message) ([]assistant.ProposedAction, bool) {
	loc := quickBillRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	amount, err := strconv.ParseFloat(m.lower[loc[2]:loc[3]], 64)
	if err != nil {
		return nil, false
	}
	unit := m.lower[loc[4]:loc[5]]
	rest := m.span(loc[6], loc[7])

	return []assistant.ProposedAction{p.buildTimeEntry(m, amount, unit, rest, "", false)}, true
}

func (p *Parser) buildTimeEntry(m message, amount float64, unit string, rest text, code string, hasCode bool) assistant.ProposedAction {
	minutes := int(math.Round(amount * 60))
	if strings.HasPrefix(unit, "min") {
		minutes = int(math.Round(amount))
	}

	if loc := descLeadRe.FindStringIndex(rest.lower); loc != nil {
		_, rest = rest.cut(loc[0], loc[1])
	}
	desc := rest.orig

	fields := map[string]any{
		"description":           desc,
		"durationMinutesRaw":    minutes,
		"durationMinutesBilled": minutes,
		"status":                "draft",
		"date":                  m.now.Format(time.RFC3339),
		"matterId":              m.matterID(),
	}
	if hasCode {
		fields["billingCode"] = code
	}

	summary := fmt.Sprintf("Log %d min time entry: %q", minutes, desc)
	if hasCode {
		summary += fmt.Sprintf(" (code %s)", code)
	}
	if !m.sc.HasCase() {
		summary += " (no case linked)"
	}

	return assistant.ProposedAction{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityTimeEntry,
		Fields:  fields,
		Summary: summary,
	}
}
