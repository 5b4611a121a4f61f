package apply

import (
	"context"

	"legal-practice-assistant/internal/model"
)

// UseCase executes human-confirmed proposed actions against the record store.
type UseCase interface {
	Apply(ctx context.Context, sc model.Scope, input ApplyInput) (ApplyOutput, error)
	// RecentActivity returns the newest audit entries, most recent first.
	RecentActivity(ctx context.Context, sc model.Scope, input ActivityInput) (ActivityOutput, error)
}
