package github

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

const (
	authenticatedRequestsPerHour   = 5000
	unauthenticatedRequestsPerHour = 60
)

// NewLimiter returns a rate limiter tuned for authenticated or unauthenticated GitHub API usage.
// GitHub allows 5000 requests per hour for authenticated users and 60 for unauthenticated ones.
func NewLimiter(authenticated bool) *rate.Limiter {
	if authenticated {
		slog.Debug("Created authenticated GitHub rate limiter", "rate", "5000 requests/hour", "burst", 100)
		return rate.NewLimiter(rate.Every(time.Hour/authenticatedRequestsPerHour), 100)
	}
	slog.Debug("Created unauthenticated GitHub rate limiter", "rate", "60 requests/hour", "burst", unauthenticatedRequestsPerHour)
	return rate.NewLimiter(rate.Every(time.Hour/unauthenticatedRequestsPerHour), unauthenticatedRequestsPerHour)
}
