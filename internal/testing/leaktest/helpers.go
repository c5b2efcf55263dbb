package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultWait is how long Check waits for stopped goroutines to exit
	DefaultWait = 500 * time.Millisecond
)

// GoroutineChecker detects goroutines left running by a component that was
// started and stopped inside a test
type GoroutineChecker struct {
	before int
	wait   time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		wait:   DefaultWait,
		t:      t,
	}
}

// WithWait overrides how long Check polls before reporting a leak
func (g *GoroutineChecker) WithWait(d time.Duration) *GoroutineChecker {
	g.wait = d
	return g
}

// Check polls until the goroutine count is back within tolerance of the
// recorded baseline, and fails the test when the wait runs out.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.wait)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
