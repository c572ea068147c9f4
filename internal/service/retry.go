package service

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted is matched by errors returned after a page failed on every allowed attempt.
var ErrRetriesExhausted = errors.New("retries exhausted")

type RetryPolicy struct {
	// MaxAttempts <= 0 means retry forever.
	MaxAttempts int
	Wait        time.Duration
	MaxWait     time.Duration
}

// Backoff returns the wait after the given failed attempt: Wait doubled per attempt, capped at MaxWait.
func (r RetryPolicy) Backoff(attempt int) time.Duration {
	d := r.Wait
	for i := 1; i < attempt; i++ {
		if r.MaxWait > 0 && d >= r.MaxWait {
			break
		}
		if d >= time.Duration(1<<62) {
			break
		}
		d *= 2
	}
	if r.MaxWait > 0 && d > r.MaxWait {
		d = r.MaxWait
	}
	return d
}

func (r RetryPolicy) exhausted(attempt int) bool {
	return r.MaxAttempts > 0 && attempt >= r.MaxAttempts
}

// RetryError reports a page that could not be fetched.
type RetryError struct {
	Page     int64
	Attempts int
	Err      error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("page %d failed after %d attempts: %v", e.Page, e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() []error {
	return []error{ErrRetriesExhausted, e.Err}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
