package splash

import (
	"time"

	"prodmast/internal/schedule"
)

// DefaultExitDelay is the time from "Enter Platform" to completion.
const DefaultExitDelay = 1500 * time.Millisecond

// Controller sequences the splash exit. It is not safe for concurrent use;
// the UI calls it from the Bubble Tea event loop only.
//
// Completion is driven by a scheduled task, not by frame updates: if the host
// stops delivering frames the splash still completes on time.
type Controller struct {
	clock      schedule.Clock
	delay      time.Duration
	state      State
	task       *schedule.Task
	completed  bool
	tornDown   bool
	activated  time.Time
	onComplete func()
}

// NewController returns an idle controller. onComplete may be nil.
func NewController(clock schedule.Clock, delay time.Duration, onComplete func()) *Controller {
	if clock == nil {
		clock = schedule.Real()
	}
	if delay <= 0 {
		delay = DefaultExitDelay
	}
	return &Controller{
		clock:      clock,
		delay:      delay,
		state:      Initial(),
		onComplete: onComplete,
	}
}

// State returns the current visual state.
func (c *Controller) State() State { return c.state }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.state.Phase }

// Delay returns the exit delay.
func (c *Controller) Delay() time.Duration { return c.delay }

// ActivatedAt returns when the exit started, zero if it has not.
func (c *Controller) ActivatedAt() time.Time { return c.activated }

// Tick advances the animation by one frame.
func (c *Controller) Tick(dt time.Duration) {
	c.state = Step(c.state, dt)
}

// ActivateExit starts the exit sequence and returns the completion task.
// It is idempotent: later calls return the same task and false. After
// Teardown it returns nil, false.
func (c *Controller) ActivateExit() (*schedule.Task, bool) {
	if c.tornDown {
		return nil, false
	}
	if c.task != nil {
		return c.task, false
	}
	c.state.Phase = PhaseExiting
	c.activated = c.clock.Now()
	c.task = schedule.After(c.clock, c.delay)
	return c.task, true
}

// Complete runs the completion callback once the task has fired. It returns
// true only on the call that ran it; every other call is a no-op.
func (c *Controller) Complete() bool {
	if c.tornDown || c.completed || c.task == nil {
		return false
	}
	if c.task.State() != schedule.StateFired {
		return false
	}
	c.completed = true
	c.state.Phase = PhaseDone
	if c.onComplete != nil {
		c.onComplete()
	}
	return true
}

// Completed reports whether Complete has run the callback.
func (c *Controller) Completed() bool { return c.completed }

// Teardown cancels a pending exit. The controller is inert afterwards.
func (c *Controller) Teardown() {
	c.tornDown = true
	c.task.Cancel()
}
