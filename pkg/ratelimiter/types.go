package ratelimiter

import (
	"context"
	"time"
)

// Config defines a token bucket. Fields carry env tags so the struct can be
// embedded in an application config under a prefix.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"60"`       // burst size
	RefillRate     int           `env:"REFILL_RATE" envDefault:"1"`     // tokens per interval
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1s"`
}

// Result is the outcome of one check.
type Result struct {
	Limit     int
	Remaining int // negative when denied
	ResetAt   time.Time
}

// Allowed reports whether the tokens were granted.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long to wait before retrying; zero when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Store keeps bucket state per key.
type Store interface {
	// ConsumeTokens refills the bucket and takes tokens if enough are left.
	// A denied request takes nothing and reports a negative remaining count.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
