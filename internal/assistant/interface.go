package assistant

import (
	"context"

	"legal-practice-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// ProcessMessage parses a free-text command into proposed actions and a
	// confirmation reply. Nothing is persisted; the actions await explicit
	// confirmation through the apply domain.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (ProcessMessageOutput, error)
}
