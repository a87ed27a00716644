// Package ratelimit throttles how many files a batch run processes per
// second.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limiter *rate.Limiter
}

// New uses 0 or negative limit for no rate limiting.
func New(filesPerSecond float64) *Limiter {
	if filesPerSecond <= 0 {
		return &Limiter{
			limiter: rate.NewLimiter(rate.Inf, 1),
		}
	}

	// Burst of 1: the first file proceeds immediately, later files wait
	// according to the limit.
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(filesPerSecond), 1),
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0 // no rate limiting
	}
	return float64(limit)
}
