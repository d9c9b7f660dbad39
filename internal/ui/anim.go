package ui

import (
	"sync/atomic"
	"time"

	"prodmast/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameRate is used when no frame rate is configured.
const DefaultFrameRate = 30

// maxFrameStep caps dt so a stalled terminal does not jump the animation.
const maxFrameStep = 100 * time.Millisecond

var generation atomic.Uint64

// nextGen returns a fresh generation id for an animated view.
func nextGen() uint64 {
	return generation.Add(1)
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return time.Second / time.Duration(fps)
}

// frameCmd schedules the next frame for generation gen.
func frameCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{Gen: gen, At: t}
	})
}

// frameStep returns the time between two frames, clamped to
// [0, maxFrameStep]. A zero prev counts as no time.
func frameStep(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	return max(0, min(now.Sub(prev), maxFrameStep))
}

// awaitTask blocks until t fires and then returns done(). A cancelled task
// yields a nil message, which Bubble Tea drops.
func awaitTask(t *schedule.Task, done func() tea.Msg) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-t.Fired():
			return done()
		case <-t.Canceled():
			return nil
		}
	}
}
