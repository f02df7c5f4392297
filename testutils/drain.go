package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
	Helper()
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Unlike a non-blocking drain, the producer may still
// be running: every receive waits up to timeout before failing.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		resetTimer(timer, timeout)

		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out after %v, expecting i=%d %v", timeout, i, datum)
			return
		}
	}

	resetTimer(timer, timeout)

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Errorf("at the end of draining, channel was not closed within %v", timeout)
	}
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
