package testutil

import (
	"context"
	"testing"
	"time"
)

// PromptTimeout bounds a scripted quiz interaction in tests.
const PromptTimeout = 5 * time.Second

// Context returns a context that ends with the test, after timeout
// (PromptTimeout when zero) or one second before the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = PromptTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), boundedByDeadline(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

// Cancelled returns a context that is already cancelled, as after Ctrl+C.
func Cancelled(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func boundedByDeadline(t testing.TB, timeout time.Duration) time.Duration {
	dt, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return timeout
	}
	deadline, ok := dt.Deadline()
	if !ok {
		return timeout
	}
	if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
		return remaining
	}
	return timeout
}
