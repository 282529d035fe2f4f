package workload

import (
	"time"

	"golang.org/x/time/rate"
)

// NewLimiter returns a limiter releasing one step per interval.
// A non-positive interval disables pacing.
func NewLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
