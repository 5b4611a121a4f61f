package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"legal-practice-assistant/internal/assistant"
)

var (
	taskWithSubtasksRe = regexp.MustCompile(`^create\s+tasks?\s+for\s+(.+?)\s+with\s+subtasks$`)
	taskCreateRe       = regexp.MustCompile(`^(?:create|add|new)\s+task\b(?:\s+(?:for|titled)\b)?\s*(.*)$`)
	taskCompleteRe     = regexp.MustCompile(`^(?:complete|finish|close|mark)\s+(?:as\s+)?(?:done\s+|completed\s+)?task\s+(.+)$`)

	taskDueKeyRe   = regexp.MustCompile(`\b(?:due|by)\b\s*`)
	taskDueStopRe  = regexp.MustCompile(`\b(?:priority|description)\b`)
	taskPriorityRe = regexp.MustCompile(`\bpriority\s+(high|medium|low|urgent)\b`)
	taskUrgentRe   = regexp.MustCompile(`\burgent\b\s*`)
	taskDescKeyRe  = regexp.MustCompile(`\bdescription\b\s*`)
)

// parseTaskWithSubtasks handles "create tasks for discovery with subtasks":
// a parent task plus a canned checklist for the topic, due dates expressed as
// day offsets from the parent.
func (p *Parser) parseTaskWithSubtasks(m message) ([]assistant.ProposedAction, bool) {
	loc := taskWithSubtasksRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	topic := m.orig[loc[2]:loc[3]]
	subtasks := templateFor(topic)

	fields := map[string]any{
		"title":    topic,
		"priority": "Medium",
		"status":   "pending",
		"matterId": m.matterID(),
	}

	return []assistant.ProposedAction{{
		Type:     assistant.ActionCreate,
		Entity:   assistant.EntityTask,
		Fields:   fields,
		Subtasks: subtasks,
		Summary:  fmt.Sprintf("Create task %q with %d subtasks", topic, len(subtasks)),
	}}, true
}

// parseTaskCreate handles "create task file motion due next friday priority high".
func (p *Parser) parseTaskCreate(m message) ([]assistant.ProposedAction, bool) {
	loc := taskCreateRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}
	working := m.span(loc[2], loc[3])

	var dueDate time.Time
	hasDue := false
	if duePhrase, rest, ok := peelClause(working, taskDueKeyRe, taskDueStopRe); ok {
		if due, resolved := p.dates.Resolve(duePhrase, m.now); resolved {
			dueDate = due
			hasDue = true
			working = rest
		}
		// Unresolvable due phrase stays in the title rather than vanishing.
	}

	priority := "Medium"
	priorityWord := ""
	if word, rest, ok := peelMatch(working, taskPriorityRe); ok {
		priorityWord = strings.ToLower(word)
		working = rest
	} else if _, rest, ok := peelMatch(working, taskUrgentRe); ok {
		priorityWord = "urgent"
		working = rest
	}
	switch priorityWord {
	case "urgent", "high":
		priority = "High"
	case "low":
		priority = "Low"
	case "medium":
		priority = "Medium"
	}

	desc, working, hasDesc := peelClause(working, taskDescKeyRe, nil)

	title := working.orig
	if title == "" {
		title = "Untitled Task"
	}

	fields := map[string]any{
		"title":    title,
		"priority": priority,
		"status":   "pending",
		"matterId": m.matterID(),
	}
	if hasDue {
		fields["dueDate"] = dueDate.Format(time.RFC3339)
	}
	if hasDesc && desc != "" {
		fields["description"] = desc
	}

	summary := fmt.Sprintf("Create task %q", title)
	if hasDue {
		summary += fmt.Sprintf(" due %s", dueDate.Format("2006-01-02"))
	}
	if priorityWord != "" {
		summary += fmt.Sprintf(" (%s priority)", priorityWord)
	}

	return []assistant.ProposedAction{{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityTask,
		Fields:  fields,
		Summary: summary,
	}}, true
}

// parseTaskComplete handles "complete task draft motion" and friends. The
// task is located later by title search.
func (p *Parser) parseTaskComplete(m message) ([]assistant.ProposedAction, bool) {
	loc := taskCompleteRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}
	searchBy := m.orig[loc[2]:loc[3]]

	return []assistant.ProposedAction{{
		Type:     assistant.ActionUpdate,
		Entity:   assistant.EntityTask,
		SearchBy: searchBy,
		Fields:   map[string]any{"status": "completed"},
		Summary:  fmt.Sprintf("Mark task %q as completed", searchBy),
	}}, true
}
