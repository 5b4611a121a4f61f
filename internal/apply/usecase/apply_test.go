package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"legal-practice-assistant/internal/apply"
	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/model"
)

var applyAnchor = time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

func newTestApplyUseCase(repo *mockRepository) *implUseCase {
	return New(&mockLogger{}, repo, nil, "UTC", func() time.Time { return applyAnchor })
}

func TestApplyEmpty(t *testing.T) {
	uc := newTestApplyUseCase(&mockRepository{})

	_, err := uc.Apply(context.Background(), model.Scope{UserID: "u1"}, apply.ApplyInput{})
	if !errors.Is(err, apply.ErrNoActions) {
		t.Errorf("err = %v, want ErrNoActions", err)
	}
}

func TestApplyCreate(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestApplyUseCase(repo)

	out, err := uc.Apply(context.Background(), model.Scope{UserID: "u1"}, apply.ApplyInput{
		Actions: []assistant.ProposedAction{{
			Type:    assistant.ActionCreate,
			Entity:  assistant.EntityCase,
			Fields:  map[string]any{"title": "Smith v. Jones", "status": "Active"},
			Summary: `Create case "Smith v. Jones"`,
		}},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if out.Applied != 1 || out.Skipped != 0 {
		t.Fatalf("applied=%d skipped=%d", out.Applied, out.Skipped)
	}
	if out.Results[0].Status != apply.StatusApplied || out.Results[0].EntityID == "" {
		t.Errorf("result = %+v", out.Results[0])
	}
	if len(repo.records) != 1 || repo.records[0].Title != "Smith v. Jones" {
		t.Errorf("records = %+v", repo.records)
	}
	if len(repo.audits) != 1 {
		t.Fatalf("len(audits) = %d, want 1", len(repo.audits))
	}
	if repo.audits[0].ActorID != "u1" || repo.audits[0].ActionType != "create" {
		t.Errorf("audit = %+v", repo.audits[0])
	}
}

func TestApplyCreateWithSubtasks(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestApplyUseCase(repo)

	out, err := uc.Apply(context.Background(), model.Scope{UserID: "u1"}, apply.ApplyInput{
		Actions: []assistant.ProposedAction{{
			Type:   assistant.ActionCreate,
			Entity: assistant.EntityTask,
			Fields: map[string]any{"title": "discovery", "matterId": "case-7"},
			Subtasks: []assistant.Subtask{
				{Title: "Draft interrogatories", DueOffsetDays: 14},
				{Title: "Schedule depositions", DueOffsetDays: 50},
			},
			Summary: `Create task "discovery" with 2 subtasks`,
		}},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Applied != 1 {
		t.Fatalf("applied = %d, want 1", out.Applied)
	}

	// Parent plus one record per subtask.
	if len(repo.records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(repo.records))
	}
	parent := repo.records[0]
	child := repo.records[1]
	if child.Fields["parentId"] != parent.ID {
		t.Errorf("parentId = %v, want %s", child.Fields["parentId"], parent.ID)
	}
	wantDue := applyAnchor.AddDate(0, 0, 14).Format(time.RFC3339)
	if child.Fields["dueDate"] != wantDue {
		t.Errorf("dueDate = %v, want %s", child.Fields["dueDate"], wantDue)
	}
	if child.Fields["matterId"] != "case-7" {
		t.Errorf("matterId = %v, subtasks inherit the case link", child.Fields["matterId"])
	}

	// One audit row for the confirmed action, not one per subtask.
	if len(repo.audits) != 1 {
		t.Errorf("len(audits) = %d, want 1", len(repo.audits))
	}
}

func TestApplyUpdateBySearch(t *testing.T) {
	repo := &mockRepository{}
	repo.records = []model.Record{
		{ID: "t-1", Kind: "task", Title: "old draft motion", Fields: map[string]any{"title": "old draft motion", "status": "pending"}},
		{ID: "t-2", Kind: "task", Title: "draft motion to dismiss", Fields: map[string]any{"title": "draft motion to dismiss", "status": "pending"}},
	}
	uc := newTestApplyUseCase(repo)

	out, err := uc.Apply(context.Background(), model.Scope{UserID: "u1"}, apply.ApplyInput{
		Actions: []assistant.ProposedAction{{
			Type:     assistant.ActionUpdate,
			Entity:   assistant.EntityTask,
			SearchBy: "draft motion",
			Fields:   map[string]any{"status": "completed"},
			Summary:  `Mark task "draft motion" as completed`,
		}},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Most recent record containing the term wins.
	if out.Results[0].EntityID != "t-2" {
		t.Errorf("EntityID = %q, want t-2", out.Results[0].EntityID)
	}
	if repo.records[1].Fields["status"] != "completed" {
		t.Errorf("status = %v, want completed", repo.records[1].Fields["status"])
	}
	if repo.records[0].Fields["status"] != "pending" {
		t.Errorf("unrelated record was modified")
	}
}

func TestApplySkips(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestApplyUseCase(repo)

	out, err := uc.Apply(context.Background(), model.Scope{UserID: "u1"}, apply.ApplyInput{
		Actions: []assistant.ProposedAction{
			{
				Type:    assistant.ActionCreate,
				Entity:  assistant.EntityCaseComment,
				Fields:  map[string]any{"content": "note", "matterId": nil},
				Summary: "Add case comment",
			},
			{
				Type:     assistant.ActionUpdate,
				Entity:   assistant.EntityContact,
				SearchBy: "nobody at all",
				Fields:   map[string]any{"email": "x@y.com"},
				Summary:  "Update contact",
			},
			{
				Type:    assistant.ActionCreate,
				Entity:  assistant.EntityKind("widget"),
				Fields:  map[string]any{},
				Summary: "Create widget",
			},
			{
				Type:    assistant.ActionCreate,
				Entity:  assistant.EntityTimeEntry,
				Fields:  map[string]any{"description": "research", "matterId": nil},
				Summary: "Log time",
			},
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if out.Applied != 1 || out.Skipped != 3 {
		t.Fatalf("applied=%d skipped=%d, want 1/3", out.Applied, out.Skipped)
	}
	if out.Results[0].Status != apply.StatusSkipped || !strings.Contains(out.Results[0].Reason, "no case linked") {
		t.Errorf("case comment result = %+v", out.Results[0])
	}
	if out.Results[1].Status != apply.StatusSkipped || !strings.Contains(out.Results[1].Reason, "nobody at all") {
		t.Errorf("contact result = %+v", out.Results[1])
	}
	if out.Results[2].Status != apply.StatusSkipped || !strings.Contains(out.Results[2].Reason, "widget") {
		t.Errorf("widget result = %+v", out.Results[2])
	}
	if out.Results[3].Status != apply.StatusApplied {
		t.Errorf("time entry result = %+v", out.Results[3])
	}

	// Only the applied action reaches the audit trail.
	if len(repo.audits) != 1 {
		t.Errorf("len(audits) = %d, want 1", len(repo.audits))
	}
}

func TestRecentActivity(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestApplyUseCase(repo)

	_, err := uc.Apply(context.Background(), model.Scope{UserID: "u1"}, apply.ApplyInput{
		Actions: []assistant.ProposedAction{{
			Type:    assistant.ActionCreate,
			Entity:  assistant.EntityTask,
			Fields:  map[string]any{"title": "draft motion"},
			Summary: `Create task "draft motion"`,
		}},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	out, err := uc.RecentActivity(context.Background(), model.Scope{UserID: "u1"}, apply.ActivityInput{})
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(out.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(out.Records))
	}
	if out.Records[0].Summary != `Create task "draft motion"` {
		t.Errorf("Summary = %q", out.Records[0].Summary)
	}
}

func TestApplyUpdateByEntityID(t *testing.T) {
	repo := &mockRepository{}
	repo.records = []model.Record{
		{ID: "case-9", Kind: "case", Title: "Smith v. Jones", Fields: map[string]any{"title": "Smith v. Jones", "status": "Active"}},
	}
	uc := newTestApplyUseCase(repo)

	out, err := uc.Apply(context.Background(), model.Scope{UserID: "u1", CaseID: "case-9"}, apply.ApplyInput{
		Actions: []assistant.ProposedAction{{
			Type:     assistant.ActionUpdate,
			Entity:   assistant.EntityCase,
			EntityID: "case-9",
			Fields:   map[string]any{"status": "Closed"},
			Summary:  "Mark current case as Closed",
		}},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Applied != 1 {
		t.Fatalf("applied = %d, want 1", out.Applied)
	}
	if repo.records[0].Fields["status"] != "Closed" {
		t.Errorf("status = %v, want Closed", repo.records[0].Fields["status"])
	}
}
