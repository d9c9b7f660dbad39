package splash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodmast/internal/schedule"
)

var epoch = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func TestController_DoubleActivateCompletesOnce(t *testing.T) {
	clock := schedule.NewManualClock(epoch)
	calls := 0
	c := NewController(clock, DefaultExitDelay, func() { calls++ })

	first, started := c.ActivateExit()
	require.True(t, started)
	require.NotNil(t, first)
	assert.Equal(t, PhaseExiting, c.Phase())
	assert.Equal(t, epoch, c.ActivatedAt())

	clock.Advance(time.Second)
	second, started := c.ActivateExit()
	assert.False(t, started)
	assert.Same(t, first, second)

	clock.Advance(499 * time.Millisecond)
	assert.False(t, c.Complete(), "must not complete before 1.5s after the first activation")
	assert.Equal(t, 0, calls)

	clock.Advance(time.Millisecond)
	assert.True(t, c.Complete())
	assert.False(t, c.Complete())
	assert.Equal(t, 1, calls)
	assert.Equal(t, PhaseDone, c.Phase())
	assert.True(t, c.Completed())
}

func TestController_CompletesWithoutFrames(t *testing.T) {
	clock := schedule.NewManualClock(epoch)
	done := false
	c := NewController(clock, DefaultExitDelay, func() { done = true })
	c.ActivateExit()

	clock.Advance(DefaultExitDelay)
	assert.True(t, c.Complete())
	assert.True(t, done)
	assert.Equal(t, InitialOpacity, c.State().Opacity, "no frames were delivered")
}

func TestController_CompleteBeforeActivateIsNoop(t *testing.T) {
	c := NewController(schedule.NewManualClock(epoch), 0, nil)
	assert.False(t, c.Complete())
	assert.Equal(t, DefaultExitDelay, c.Delay())
}

func TestController_TeardownCancelsPending(t *testing.T) {
	clock := schedule.NewManualClock(epoch)
	calls := 0
	c := NewController(clock, DefaultExitDelay, func() { calls++ })
	task, _ := c.ActivateExit()

	c.Teardown()
	clock.Advance(2 * DefaultExitDelay)

	assert.Equal(t, schedule.StateCanceled, task.State())
	assert.False(t, c.Complete())
	assert.Zero(t, calls)

	again, started := c.ActivateExit()
	assert.Nil(t, again)
	assert.False(t, started)
}

func TestController_TeardownIdleIsSafe(t *testing.T) {
	c := NewController(schedule.NewManualClock(epoch), DefaultExitDelay, nil)
	assert.NotPanics(t, c.Teardown)
}

func TestController_TickFollowsStep(t *testing.T) {
	c := NewController(schedule.NewManualClock(epoch), DefaultExitDelay, nil)
	c.ActivateExit()
	c.Tick(frame)

	want := Initial()
	want.Phase = PhaseExiting
	want = Step(want, frame)
	assert.Equal(t, want, c.State())
}
