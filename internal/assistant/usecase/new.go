package usecase

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/assistant/parser"
	pkgLog "legal-practice-assistant/pkg/log"
)

// Clock supplies the reference instant for date resolution. Injected so
// tests replay with a fixed time.
type Clock func() time.Time

type implUseCase struct {
	l      pkgLog.Logger
	parser *parser.Parser
	clock  Clock
	cache  *lru.Cache[string, assistant.ParseResult]
}

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, p *parser.Parser, clock Clock, cacheSize int) (*implUseCase, error) {
	if clock == nil {
		clock = time.Now
	}
	cache, err := lru.New[string, assistant.ParseResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create parse cache: %w", err)
	}
	return &implUseCase{
		l:      l,
		parser: p,
		clock:  clock,
		cache:  cache,
	}, nil
}
