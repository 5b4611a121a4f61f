package usecase

import (
	"time"

	"legal-practice-assistant/internal/apply/repository"
	"legal-practice-assistant/pkg/gcalendar"
	pkgLog "legal-practice-assistant/pkg/log"
)

// Clock supplies the apply timestamp. Injected for deterministic tests.
type Clock func() time.Time

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar *gcalendar.Client // nil disables calendar mirroring
	timezone string
	clock    Clock
}

// New creates a new apply UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar *gcalendar.Client,
	timezone string,
	clock Clock,
) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
		clock:    clock,
	}
}
