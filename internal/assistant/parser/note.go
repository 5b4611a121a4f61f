package parser

import (
	"fmt"
	"regexp"
	"strings"

	"legal-practice-assistant/internal/assistant"
)

var noteRe = regexp.MustCompile(`^(?:add|create|write|post)\s+(?:a\s+)?(case comment|meeting note|case note|runsheet entry|note|comment)\b\s*[:\-]?\s*(.*)$`)

// parseNote routes note-like utterances by kind and scope: comments attach
// to the linked case, plain notes become runsheet entries when a case is
// linked, and with no case at all the note survives as a low-priority task.
func (p *Parser) parseNote(m message) ([]assistant.ProposedAction, bool) {
	loc := noteRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}

	kind := m.lower[loc[2]:loc[3]]
	content := m.orig[loc[4]:loc[5]]

	isComment := strings.Contains(kind, "comment") || strings.Contains(kind, "case")

	switch {
	case isComment && m.sc.HasCase():
		return []assistant.ProposedAction{{
			Type:   assistant.ActionCreate,
			Entity: assistant.EntityCaseComment,
			Fields: map[string]any{
				"content":  content,
				"matterId": m.sc.CaseID,
			},
			Summary: fmt.Sprintf("Add case comment: %q", firstRunes(content, 80)),
		}}, true

	case m.sc.HasCase():
		entryType := "manual"
		if strings.Contains(kind, "meeting") {
			entryType = "meeting"
		}
		return []assistant.ProposedAction{{
			Type:   assistant.ActionCreate,
			Entity: assistant.EntityRunsheet,
			Fields: map[string]any{
				"title":     firstRunes(content, 80),
				"content":   content,
				"entryType": entryType,
				"matterId":  m.sc.CaseID,
			},
			Summary: fmt.Sprintf("Add runsheet entry: %q", firstRunes(content, 80)),
		}}, true

	default:
		title := "Note: " + firstRunes(content, 80)
		return []assistant.ProposedAction{{
			Type:   assistant.ActionCreate,
			Entity: assistant.EntityTask,
			Fields: map[string]any{
				"title":       title,
				"description": content,
				"priority":    "Low",
				"status":      "pending",
				"matterId":    nil,
			},
			Summary: fmt.Sprintf("Save note as task %q (no case linked)", title),
		}}, true
	}
}
