package usecase

import (
	"context"
	"fmt"

	"legal-practice-assistant/internal/apply"
	"legal-practice-assistant/internal/model"
)

// RecentActivity returns the newest audit entries, most recent first.
func (uc *implUseCase) RecentActivity(ctx context.Context, sc model.Scope, input apply.ActivityInput) (apply.ActivityOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	records, err := uc.repo.ListAudit(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "RecentActivity: ListAudit: %v", err)
		return apply.ActivityOutput{}, fmt.Errorf("list audit: %w", err)
	}

	return apply.ActivityOutput{Records: records}, nil
}
