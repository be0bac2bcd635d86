// Package ratelimit provides a fixed-window request counter behind a small
// Store interface so the process-local map can be swapped for a shared
// Redis counter without touching call sites.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a single rate-limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per client key within a fixed window. The window is
// reset wholesale when it expires rather than sliding continuously.
type Store interface {
	// Check records one request for key and reports whether it is within
	// limit for the current window. Implementations must not lose
	// increments under concurrent calls for the same key.
	Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}
