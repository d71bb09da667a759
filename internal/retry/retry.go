// Package retry runs an operation under a fixed attempt budget with a
// pluggable backoff and sleeper.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned when every attempt failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Policy configures retry behaviour.
type Policy struct {
	// MaxAttempts includes the initial attempt.
	MaxAttempts int
	// Backoff returns the wait after the given failed attempt (1-based).
	Backoff func(attempt int) time.Duration
	// Retryable decides whether an error is worth another attempt.
	Retryable func(error) bool
	Sleep     Sleeper
}

// Linear returns a backoff of step × attempt.
func Linear(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return step * time.Duration(attempt)
	}
}

// DefaultPolicy mirrors the article fetcher: 4 attempts, 1s × attempt.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 4,
		Backoff:     Linear(time.Second),
		Retryable:   AlwaysRetry,
		Sleep:       SleepContext,
	}
}

// AlwaysRetry treats every error except cancellation as transient.
func AlwaysRetry(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// SleepContext is the real-time Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
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

// Do runs fn until it succeeds, returns a non-retryable error, or the
// attempt budget is spent. No sleep follows the final attempt.
func Do(ctx context.Context, p Policy, fn func(attempt int) error) error {
	p = p.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if !p.Retryable(err) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}
		if err := p.Sleep(ctx, p.Backoff(attempt)); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, p.MaxAttempts, lastErr)
}

func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.Backoff == nil {
		p.Backoff = def.Backoff
	}
	if p.Retryable == nil {
		p.Retryable = def.Retryable
	}
	if p.Sleep == nil {
		p.Sleep = def.Sleep
	}
	return p
}
