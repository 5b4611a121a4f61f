package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/assistant/parser"
	"legal-practice-assistant/internal/model"
	"legal-practice-assistant/pkg/fuzzydate"
)

func newTestUseCase(t *testing.T, clock Clock) *implUseCase {
	t.Helper()
	dates, err := fuzzydate.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	uc, err := New(&mockLogger{}, parser.New(dates), clock, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestProcessMessageEmpty(t *testing.T) {
	uc := newTestUseCase(t, nil)

	_, err := uc.ProcessMessage(context.Background(), model.Scope{UserID: "u1"}, assistant.ProcessMessageInput{Message: "   "})
	if !errors.Is(err, assistant.ErrEmptyMessage) {
		t.Errorf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestProcessMessageCommand(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(t, fixedClock(anchor))

	out, err := uc.ProcessMessage(context.Background(), model.Scope{UserID: "u1"}, assistant.ProcessMessageInput{
		Message: "create case Smith v. Jones type Civil priority High",
	})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}

	if len(out.Actions) != 1 {
		t.Fatalf("len(Actions) = %d, want 1", len(out.Actions))
	}
	if out.Actions[0].Entity != assistant.EntityCase {
		t.Errorf("Entity = %v, want case", out.Actions[0].Entity)
	}
	if !strings.Contains(out.Reply, `Create case "Smith v. Jones"`) {
		t.Errorf("Reply = %q, want action summary in it", out.Reply)
	}
	if !strings.Contains(out.Reply, "Apply these actions") {
		t.Errorf("Reply missing call to action: %q", out.Reply)
	}
}

func TestProcessMessageHelp(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.ProcessMessage(context.Background(), model.Scope{UserID: "u1"}, assistant.ProcessMessageInput{Message: "help"})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if !out.IsHelpQuery {
		t.Error("IsHelpQuery = false, want true")
	}
	if !strings.Contains(out.Reply, "Time Tracking") {
		t.Errorf("Reply missing help catalog: %q", out.Reply)
	}
}

func TestProcessMessageDeterministic(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(t, fixedClock(anchor))
	sc := model.Scope{UserID: "u1", CaseID: "case-7"}
	input := assistant.ProcessMessageInput{Message: "create task file motion due next friday"}

	first, err := uc.ProcessMessage(context.Background(), sc, input)
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	// Second call hits the cache; the result must be identical.
	second, err := uc.ProcessMessage(context.Background(), sc, input)
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}

	if first.Reply != second.Reply {
		t.Errorf("replies differ:\n%q\n%q", first.Reply, second.Reply)
	}
	if len(first.Actions) != 1 || len(second.Actions) != 1 {
		t.Fatalf("expected 1 action on both calls")
	}
	if first.Actions[0].Fields["dueDate"] != second.Actions[0].Fields["dueDate"] {
		t.Errorf("dueDate differs between calls")
	}
}

func TestProcessMessageScopeChangesResult(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(t, fixedClock(anchor))
	input := assistant.ProcessMessageInput{Message: "log 1 hour for research"}

	linked, err := uc.ProcessMessage(context.Background(), model.Scope{UserID: "u1", CaseID: "case-7"}, input)
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	unlinked, err := uc.ProcessMessage(context.Background(), model.Scope{UserID: "u1"}, input)
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}

	if linked.Actions[0].Fields["matterId"] != "case-7" {
		t.Errorf("linked matterId = %v", linked.Actions[0].Fields["matterId"])
	}
	if unlinked.Actions[0].Fields["matterId"] != nil {
		t.Errorf("unlinked matterId = %v, want nil", unlinked.Actions[0].Fields["matterId"])
	}
	if !strings.Contains(unlinked.Actions[0].Summary, "(no case linked)") {
		t.Errorf("unlinked summary = %q", unlinked.Actions[0].Summary)
	}
}
