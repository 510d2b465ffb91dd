package providers

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultBurst is the token bucket size for paced providers.
const DefaultBurst = 1

// RateLimiter paces requests to a provider using a token bucket.
// A nil RateLimiter never blocks.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing perSecond requests per second.
// Returns nil if perSecond is not positive, which disables pacing.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), DefaultBurst),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// Returns the context error if ctx is cancelled first.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}

// Limit returns the configured requests per second, or 0 when disabled.
func (r *RateLimiter) Limit() float64 {
	if r == nil {
		return 0
	}
	return float64(r.limiter.Limit())
}
