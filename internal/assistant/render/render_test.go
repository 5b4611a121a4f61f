package render_test

import (
	"strings"
	"testing"

	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/assistant/render"
)

func TestRenderHelp(t *testing.T) {
	got := render.Render(assistant.ParseResult{IsHelpQuery: true})

	for _, section := range []string{
		"Time Tracking", "Cases", "Contacts", "Tasks", "Calendar", "Invoices", "Notes",
	} {
		if !strings.Contains(got, section) {
			t.Errorf("help text missing section %q", section)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	got := render.Render(assistant.ParseResult{IsStatusQuery: true})
	for _, section := range []string{"dashboard", "time", "calendar", "tasks"} {
		if !strings.Contains(got, section) {
			t.Errorf("status text missing %q, got %q", section, got)
		}
	}
}

func TestRenderFallback(t *testing.T) {
	got := render.Render(assistant.ParseResult{})
	if !strings.Contains(got, "help") {
		t.Errorf("fallback should mention help, got %q", got)
	}
}

func TestRenderActions(t *testing.T) {
	res := assistant.ParseResult{Actions: []assistant.ProposedAction{
		{Summary: `Create case "Smith v. Jones" (type Civil, priority High)`},
		{
			Summary: `Create task "discovery" with 2 subtasks`,
			Subtasks: []assistant.Subtask{
				{Title: "Draft interrogatories", DueOffsetDays: 14},
				{Title: "Schedule depositions", DueOffsetDays: 50},
			},
		},
	}}

	got := render.Render(res)

	if !strings.Contains(got, "2 actions") {
		t.Errorf("expected action count in reply, got %q", got)
	}
	if !strings.Contains(got, `1. Create case "Smith v. Jones"`) {
		t.Errorf("expected numbered first action, got %q", got)
	}
	if !strings.Contains(got, "- Draft interrogatories (due in 14 days)") {
		t.Errorf("expected subtask sub-list entry, got %q", got)
	}
	if !strings.Contains(got, "Apply these actions") {
		t.Errorf("expected call to action, got %q", got)
	}
}

func TestRenderSingleAction(t *testing.T) {
	res := assistant.ParseResult{Actions: []assistant.ProposedAction{
		{Summary: "Mark current case as Closed"},
	}}

	got := render.Render(res)
	if !strings.Contains(got, "the following action:") {
		t.Errorf("expected singular phrasing, got %q", got)
	}
	if !strings.Contains(got, "1. Mark current case as Closed") {
		t.Errorf("expected numbered action, got %q", got)
	}
}
