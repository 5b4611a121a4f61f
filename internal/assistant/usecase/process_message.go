package usecase

import (
	"context"
	"fmt"
	"strings"

	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/assistant/render"
	"legal-practice-assistant/internal/model"
)

// ProcessMessage parses one free-text command into proposed actions plus the
// rendered reply. Parsing is pure, so results are cached per
// utterance/case/minute; the minute bucket keeps relative dates fresh.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input assistant.ProcessMessageInput) (assistant.ProcessMessageOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return assistant.ProcessMessageOutput{}, assistant.ErrEmptyMessage
	}

	now := uc.clock()
	// Key keeps the original casing: slot values are sliced case-preserving,
	// so "Call Bob" and "call bob" are different results.
	key := fmt.Sprintf("%s|%s|%s", msg, sc.CaseID, now.Format("2006-01-02T15:04"))

	res, ok := uc.cache.Get(key)
	if !ok {
		res = uc.parser.Parse(msg, sc, now)
		uc.cache.Add(key, res)
	}

	uc.l.Infof(ctx, "ProcessMessage: user=%s case=%q actions=%d help=%v status=%v cached=%v",
		sc.UserID, sc.CaseID, len(res.Actions), res.IsHelpQuery, res.IsStatusQuery, ok)

	return assistant.ProcessMessageOutput{
		Actions:       res.Actions,
		Reply:         render.Render(res),
		IsHelpQuery:   res.IsHelpQuery,
		IsStatusQuery: res.IsStatusQuery,
	}, nil
}
