package middleware

import (
	"golang.org/x/time/rate"

	"legal-practice-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware bundle. ratePerMin caps requests across all
// rate-limited routes; zero or negative disables limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
