package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingT collects failures instead of failing the real test.
type recordingT struct {
	*testing.T
	errors []string
}

func (r *recordingT) Error(args ...any) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			time.Sleep(time.Millisecond)
			ch <- i
		}
	}()

	rt := &recordingT{T: t}
	DrainBlocking(rt, []int{1, 2, 3}, ch, time.Second)
	assert.Empty(t, rt.errors)
}

func TestDrainBlocking_ClosedEarly(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1
	close(ch)

	rt := &recordingT{T: t}
	DrainBlocking(rt, []int{1, 2}, ch, time.Second)
	assert.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "closed early")
}

func TestDrainBlocking_NotClosed(t *testing.T) {
	ch := make(chan int)

	rt := &recordingT{T: t}
	DrainBlocking(rt, nil, ch, 10*time.Millisecond)
	assert.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "not closed")
}
