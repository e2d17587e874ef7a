package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultRoundTimeout bounds a scripted round in tests.
const DefaultRoundTimeout = 10 * time.Second

// DefaultTestBuffer is the buffer time subtracted from test deadline
// to allow for cleanup operations before the test times out.
const DefaultTestBuffer = time.Second

// ContextWithTestDeadline creates a context that respects the test's deadline.
// It subtracts DefaultTestBuffer from the test deadline to allow time for
// cleanup. If the test has no deadline, it falls back to the provided duration.
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if time.Until(adjusted) > 0 {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}
	return context.WithTimeout(context.Background(), fallback)
}

// RoundContext creates a context for running one scripted round.
func RoundContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return ContextWithTestDeadline(t, DefaultRoundTimeout)
}
