package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"legal-practice-assistant/internal/apply"
	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/model"
	"legal-practice-assistant/pkg/fuzzymatch"
)

var knownEntities = map[assistant.EntityKind]bool{
	assistant.EntityTimeEntry:   true,
	assistant.EntityCase:        true,
	assistant.EntityContact:     true,
	assistant.EntityTask:        true,
	assistant.EntityEvent:       true,
	assistant.EntityInvoice:     true,
	assistant.EntityCaseComment: true,
	assistant.EntityRunsheet:    true,
}

// Entities whose records only make sense attached to a case.
var caseBoundEntities = map[assistant.EntityKind]bool{
	assistant.EntityCaseComment: true,
	assistant.EntityRunsheet:    true,
}

// Apply executes confirmed actions in order. Each action succeeds or is
// skipped independently; a skip never aborts the batch.
func (uc *implUseCase) Apply(ctx context.Context, sc model.Scope, input apply.ApplyInput) (apply.ApplyOutput, error) {
	if len(input.Actions) == 0 {
		return apply.ApplyOutput{}, apply.ErrNoActions
	}

	now := uc.clock()
	out := apply.ApplyOutput{Results: make([]apply.ActionResult, 0, len(input.Actions))}

	for _, a := range input.Actions {
		res := uc.applyOne(ctx, sc, a, now)
		if res.Status == apply.StatusApplied {
			out.Applied++
		} else {
			out.Skipped++
		}
		out.Results = append(out.Results, res)
	}

	uc.l.Infof(ctx, "Apply: user=%s applied=%d skipped=%d", sc.UserID, out.Applied, out.Skipped)
	return out, nil
}

func (uc *implUseCase) applyOne(ctx context.Context, sc model.Scope, a assistant.ProposedAction, now time.Time) apply.ActionResult {
	skip := func(reason string) apply.ActionResult {
		uc.l.Warnf(ctx, "applyOne: skipped %q: %s", a.Summary, reason)
		return apply.ActionResult{Summary: a.Summary, Status: apply.StatusSkipped, Reason: reason}
	}

	if !knownEntities[a.Entity] {
		return skip(fmt.Sprintf("unknown entity %q", a.Entity))
	}
	if caseBoundEntities[a.Entity] && a.Fields["matterId"] == nil {
		return skip("no case linked")
	}

	switch a.Type {
	case assistant.ActionCreate:
		return uc.applyCreate(ctx, sc, a, now)
	case assistant.ActionUpdate:
		return uc.applyUpdate(ctx, sc, a, now)
	default:
		return skip(fmt.Sprintf("unknown action type %q", a.Type))
	}
}

func (uc *implUseCase) applyCreate(ctx context.Context, sc model.Scope, a assistant.ProposedAction, now time.Time) apply.ActionResult {
	rec := model.Record{
		ID:        uuid.NewString(),
		Kind:      string(a.Entity),
		Title:     recordTitle(a.Fields),
		Fields:    a.Fields,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateRecord(ctx, rec); err != nil {
		uc.l.Errorf(ctx, "applyCreate: CreateRecord: %v", err)
		return apply.ActionResult{Summary: a.Summary, Status: apply.StatusSkipped, Reason: "storage failure"}
	}

	for _, st := range a.Subtasks {
		child := model.Record{
			ID:    uuid.NewString(),
			Kind:  string(assistant.EntityTask),
			Title: st.Title,
			Fields: map[string]any{
				"title":    st.Title,
				"status":   "pending",
				"priority": "Medium",
				"parentId": rec.ID,
				"dueDate":  now.AddDate(0, 0, st.DueOffsetDays).Format(time.RFC3339),
				"matterId": a.Fields["matterId"],
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.CreateRecord(ctx, child); err != nil {
			uc.l.Errorf(ctx, "applyCreate: subtask %q: %v", st.Title, err)
		}
	}

	uc.audit(ctx, sc, a, rec.ID, now)

	res := apply.ActionResult{Summary: a.Summary, Status: apply.StatusApplied, EntityID: rec.ID}
	if a.Entity == assistant.EntityEvent {
		res.CalendarLink = uc.tryCreateCalendarEvent(ctx, rec)
	}
	return res
}

func (uc *implUseCase) applyUpdate(ctx context.Context, sc model.Scope, a assistant.ProposedAction, now time.Time) apply.ActionResult {
	targetID := a.EntityID
	if targetID == "" {
		id, ok := uc.resolveSearch(ctx, a.Entity, a.SearchBy)
		if !ok {
			return apply.ActionResult{
				Summary: a.Summary,
				Status:  apply.StatusSkipped,
				Reason:  fmt.Sprintf("no %s matching %q", a.Entity, a.SearchBy),
			}
		}
		targetID = id
	}

	if _, err := uc.repo.UpdateRecordFields(ctx, targetID, a.Fields); err != nil {
		uc.l.Errorf(ctx, "applyUpdate: UpdateRecordFields(%s): %v", targetID, err)
		return apply.ActionResult{Summary: a.Summary, Status: apply.StatusSkipped, Reason: "record not found"}
	}

	uc.audit(ctx, sc, a, targetID, now)
	return apply.ActionResult{Summary: a.Summary, Status: apply.StatusApplied, EntityID: targetID}
}

// resolveSearch matches a free-text search term against stored records of one
// kind. Records come back most recent first, so ties break toward recency.
func (uc *implUseCase) resolveSearch(ctx context.Context, entity assistant.EntityKind, term string) (string, bool) {
	if term == "" {
		return "", false
	}
	records, err := uc.repo.ListRecordsByKind(ctx, string(entity))
	if err != nil {
		uc.l.Errorf(ctx, "resolveSearch: ListRecordsByKind(%s): %v", entity, err)
		return "", false
	}

	candidates := make([]fuzzymatch.Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, fuzzymatch.Candidate{ID: rec.ID, Label: rec.Title})
	}
	best, ok := fuzzymatch.Best(term, candidates)
	if !ok {
		return "", false
	}
	return best.ID, true
}

// audit is best effort: a failed audit write is logged, never unwinds the
// already-executed action.
func (uc *implUseCase) audit(ctx context.Context, sc model.Scope, a assistant.ProposedAction, entityID string, now time.Time) {
	rec := model.AuditRecord{
		ID:         uuid.NewString(),
		ActorID:    sc.UserID,
		ActionType: string(a.Type),
		Entity:     string(a.Entity),
		EntityID:   entityID,
		Summary:    a.Summary,
		CreatedAt:  now,
	}
	if err := uc.repo.AppendAudit(ctx, rec); err != nil {
		uc.l.Errorf(ctx, "audit: AppendAudit: %v", err)
	}
}

// recordTitle picks the searchable title for a new record.
func recordTitle(fields map[string]any) string {
	for _, key := range []string{"title", "name", "description", "content"} {
		if v, ok := fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
