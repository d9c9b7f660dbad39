package schedule

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle state of a Task.
type State int

const (
	StatePending State = iota
	StateFired
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFired:
		return "fired"
	case StateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Task is a one-shot delayed signal. Exactly one of Fired or Canceled is
// eventually closed, unless the task is abandoned while pending.
type Task struct {
	mu       sync.Mutex
	state    State
	timer    Timer
	fired    chan struct{}
	canceled chan struct{}

	Delay       time.Duration
	ScheduledAt time.Time
}

// After schedules a task that fires once d has elapsed on c.
func After(c Clock, d time.Duration) *Task {
	t := &Task{
		fired:       make(chan struct{}),
		canceled:    make(chan struct{}),
		Delay:       d,
		ScheduledAt: c.Now(),
	}
	timer := c.AfterFunc(d, t.fire)
	t.mu.Lock()
	t.timer = timer
	t.mu.Unlock()
	return t
}

func (t *Task) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return
	}
	t.state = StateFired
	close(t.fired)
}

// Cancel stops a pending task. It reports whether the task was pending;
// cancelling a fired or already cancelled task is a no-op.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return false
	}
	t.state = StateCanceled
	if t.timer != nil {
		t.timer.Stop()
	}
	close(t.canceled)
	return true
}

// State returns the current lifecycle state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Fired is closed when the delay elapses.
func (t *Task) Fired() <-chan struct{} { return t.fired }

// Canceled is closed when Cancel wins against the timer.
func (t *Task) Canceled() <-chan struct{} { return t.canceled }

// Wait blocks until the task fires, is cancelled, or ctx is done.
// It returns true only if the task fired.
func (t *Task) Wait(ctx context.Context) bool {
	select {
	case <-t.fired:
		return true
	case <-t.canceled:
		return false
	case <-ctx.Done():
		return false
	}
}
