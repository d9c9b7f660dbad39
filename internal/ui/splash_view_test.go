package ui

import (
	"testing"
	"time"

	"prodmast/internal/content"
	"prodmast/internal/schedule"
	"prodmast/internal/splash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSplash() (*SplashView, *schedule.ManualClock) {
	clock := schedule.NewManualClock(epoch)
	return NewSplashView(SplashOptions{Clock: clock, ExitDelay: time.Second}, 80, 24), clock
}

func TestSplashView_FramesAdvanceAnimation(t *testing.T) {
	v, _ := newTestSplash()
	require.NotNil(t, v.Init())

	_, cmd := v.Update(frameMsg{Gen: v.Gen(), At: epoch})
	assert.NotNil(t, cmd)
	assert.Zero(t, v.Controller().State().Clock, "first frame has no delta")

	v.Update(frameMsg{Gen: v.Gen(), At: epoch.Add(40 * time.Millisecond)})
	assert.Equal(t, 40*time.Millisecond, v.Controller().State().Clock)

	v.Update(frameMsg{Gen: v.Gen(), At: epoch.Add(5 * time.Second)})
	assert.Equal(t, 40*time.Millisecond+maxFrameStep, v.Controller().State().Clock)
}

func TestSplashView_StaleFrameIgnored(t *testing.T) {
	v, _ := newTestSplash()
	_, cmd := v.Update(frameMsg{Gen: v.Gen() + 1000, At: epoch})
	assert.Nil(t, cmd)
	assert.Zero(t, v.Controller().State().Clock)
}

func TestSplashView_ExitOnce(t *testing.T) {
	v, clock := newTestSplash()
	assert.Contains(t, v.View(), content.SplashTitle)

	cmd := sendKeys(v, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, splash.PhaseExiting, v.Controller().Phase())
	assert.Nil(t, sendKeys(v, "enter"), "second press is ignored")

	clock.Advance(time.Second)
	done, ok := find[SplashDoneMsg](runCmd(cmd))
	require.True(t, ok)
	assert.Equal(t, v.Gen(), done.Gen)

	v.Update(SplashDoneMsg{Gen: v.Gen() + 1})
	assert.False(t, v.Done(), "other splash's completion")
	v.Update(done)
	assert.True(t, v.Done())
	assert.Equal(t, splash.PhaseDone, v.Controller().Phase())

	_, cmd = v.Update(frameMsg{Gen: v.Gen(), At: epoch})
	assert.Nil(t, cmd, "no frames after completion")
}

func TestSplashView_TeardownCancels(t *testing.T) {
	v, clock := newTestSplash()
	cmd := sendKeys(v, "enter")
	v.Teardown()
	clock.Advance(time.Hour)

	assert.Empty(t, runCmd(cmd))
	v.Update(SplashDoneMsg{Gen: v.Gen()})
	assert.False(t, v.Done())
}
