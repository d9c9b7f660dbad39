package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var epoch = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestTask_FiresAfterDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	task := After(clock, 1500*time.Millisecond)

	clock.Advance(1499 * time.Millisecond)
	assert.Equal(t, StatePending, task.State())
	assert.False(t, isClosed(task.Fired()))

	clock.Advance(time.Millisecond)
	assert.Equal(t, StateFired, task.State())
	assert.True(t, isClosed(task.Fired()))
	assert.False(t, isClosed(task.Canceled()))
}

func TestTask_CancelBeforeFire(t *testing.T) {
	clock := NewManualClock(epoch)
	task := After(clock, time.Second)

	require.True(t, task.Cancel())
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(5 * time.Second)
	assert.Equal(t, StateCanceled, task.State())
	assert.False(t, isClosed(task.Fired()))
	assert.True(t, isClosed(task.Canceled()))

	assert.False(t, task.Cancel(), "second cancel is a no-op")
}

func TestTask_CancelAfterFireIsNoop(t *testing.T) {
	clock := NewManualClock(epoch)
	task := After(clock, time.Second)
	clock.Advance(time.Second)

	assert.False(t, task.Cancel())
	assert.Equal(t, StateFired, task.State())
}

func TestTask_NilCancel(t *testing.T) {
	var task *Task
	assert.False(t, task.Cancel())
}

func TestTask_ScheduledAtUsesClock(t *testing.T) {
	clock := NewManualClock(epoch)
	clock.Advance(3 * time.Second)
	task := After(clock, time.Second)
	assert.Equal(t, epoch.Add(3*time.Second), task.ScheduledAt)
	assert.Equal(t, time.Second, task.Delay)
}

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(epoch)
	var order []string
	clock.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	clock.AfterFunc(time.Second, func() { order = append(order, "early") })

	clock.Advance(3 * time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
}

func TestWait_RealClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	task := After(Real(), 10*time.Millisecond)
	assert.True(t, task.Wait(context.Background()))

	pending := After(Real(), time.Hour)
	done := make(chan bool)
	go func() { done <- pending.Wait(context.Background()) }()
	pending.Cancel()
	assert.False(t, <-done)
}

func TestWait_ContextCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	task := After(Real(), time.Hour)
	defer task.Cancel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, task.Wait(ctx))
}
