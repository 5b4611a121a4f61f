package parser

import (
	"fmt"
	"regexp"
	"time"

	"legal-practice-assistant/internal/assistant"
)

var (
	eventRe    = regexp.MustCompile(`^(?:schedule|add|create|set)\s+(?:an?\s+)?(event|hearing|meeting|deadline|reminder|appointment|consultation|deposition|mediation)\b(?:\s+(?:for|titled|called)\b)?\s*(.*)$`)
	reminderRe = regexp.MustCompile(`^remind(?:\s+me)?(?:\s+to)?\s+(.*)$`)

	eventWhenRe    = regexp.MustCompile(`\b(?:on|at|for)\s+`)
	eventStopRe    = regexp.MustCompile(`\b(?:on|at|for|in|location|description)\b`)
	eventWhereRe   = regexp.MustCompile(`\b(?:at|location|in)\s+(.+)$`)
	eventDescKeyRe = regexp.MustCompile(`\bdescription\b\s*`)
	reminderWhenRe = regexp.MustCompile(`\b(in|on|at|by)\s+`)
)

// parseEvent handles "schedule hearing on next friday at courtroom 3".
// The time clause is found by trying each on/at/for introducer in order,
// bounding the candidate phrase at the next clause keyword, and keeping the
// first that resolves to a date; a non-resolving "at" clause is treated as
// the location instead.
func (p *Parser) parseEvent(m message) ([]assistant.ProposedAction, bool) {
	loc := eventRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	eventType := m.lower[loc[2]:loc[3]]
	working := m.span(loc[4], loc[5])

	var start time.Time
	hasStart := false
	for _, idx := range eventWhenRe.FindAllStringIndex(working.lower, -1) {
		end := len(working.lower)
		if stop := eventStopRe.FindStringIndex(working.lower[idx[1]:]); stop != nil {
			end = idx[1] + stop[0]
		}
		if t, ok := p.dates.Resolve(working.lower[idx[1]:end], m.now); ok {
			start = t
			hasStart = true
			_, working = working.cut(idx[0], end)
			break
		}
	}

	location, working, hasLocation := peelMatch(working, eventWhereRe)
	desc, working, hasDesc := peelClause(working, eventDescKeyRe, nil)

	title := working.orig
	if title == "" {
		title = "New " + eventType
	}

	fields := map[string]any{
		"title":    title,
		"type":     eventType,
		"matterId": m.matterID(),
	}
	if hasStart {
		fields["startTime"] = start.Format(time.RFC3339)
		fields["endTime"] = start.Add(time.Hour).Format(time.RFC3339)
	}
	if hasLocation && location != "" {
		fields["location"] = location
	}
	if hasDesc && desc != "" {
		fields["description"] = desc
	}

	summary := fmt.Sprintf("Schedule %s %q", eventType, title)
	if hasStart {
		summary += fmt.Sprintf(" on %s", start.Format("2006-01-02 15:04"))
	}
	if hasLocation && location != "" {
		summary += fmt.Sprintf(" at %s", location)
	}

	return []assistant.ProposedAction{{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityEvent,
		Fields:  fields,
		Summary: summary,
	}}, true
}

// parseReminder handles "remind me to call the clerk tomorrow at 3". A
// reminder is a short calendar event; with no recognizable time it lands
// one day out.
func (p *Parser) parseReminder(m message) ([]assistant.ProposedAction, bool) {
	loc := reminderRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}
	working := m.span(loc[2], loc[3])

	start := m.now.AddDate(0, 0, 1)
	for _, idx := range reminderWhenRe.FindAllStringSubmatchIndex(working.lower, -1) {
		word := working.lower[idx[2]:idx[3]]
		end := len(working.lower)
		if stop := reminderWhenRe.FindStringIndex(working.lower[idx[1]:]); stop != nil {
			end = idx[1] + stop[0]
		}
		phrase := working.lower[idx[1]:end]
		if word == "in" {
			// "in 3 days" needs the introducer kept for the resolver.
			phrase = "in " + phrase
		}
		if t, ok := p.dates.Resolve(phrase, m.now); ok {
			start = t
			_, working = working.cut(idx[0], end)
			break
		}
	}

	title := "Reminder: " + working.orig
	fields := map[string]any{
		"title":     title,
		"type":      "reminder",
		"startTime": start.Format(time.RFC3339),
		"endTime":   start.Add(30 * time.Minute).Format(time.RFC3339),
		"matterId":  m.matterID(),
	}

	return []assistant.ProposedAction{{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityEvent,
		Fields:  fields,
		Summary: fmt.Sprintf("Set reminder %q for %s", working.orig, start.Format("2006-01-02 15:04")),
	}}, true
}
