// Package leaktest catches goroutine leaks in tests for the components that
// own background goroutines: the push hub, the stream subscription and the
// controller's request workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Check snapshots the goroutine count and returns a verify func to defer.
// The returned func fails the test when more than tolerance goroutines
// outlive the snapshot.
func Check(t testing.TB) func(tolerance int) {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)
	before := runtime.NumGoroutine()

	return func(tolerance int) {
		t.Helper()

		// Give finished goroutines a moment to unwind.
		runtime.Gosched()
		time.Sleep(50 * time.Millisecond)
		runtime.GC()
		time.Sleep(50 * time.Millisecond)

		after := runtime.NumGoroutine()
		if leaked := after - before; leaked > tolerance {
			t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
				before, after, leaked, tolerance)
		}
	}
}
