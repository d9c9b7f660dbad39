package ui

import (
	"testing"
	"time"

	"prodmast/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

var epoch = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

// newTestApp builds an App on a manual clock and sizes it like a terminal.
func newTestApp(t *testing.T, opts Options) (*appModelAdapter, *schedule.ManualClock) {
	t.Helper()
	clock := schedule.NewManualClock(epoch)
	opts.Clock = clock
	m := NewAppModel(opts)
	t.Cleanup(m.Close)
	a := &appModelAdapter{AppModel: m}
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, clock
}

// runCmd executes cmd and expands a batch one level, skipping nil commands
// and nil messages. Commands that wait on tasks must only be run after the
// task's clock has been advanced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

// find returns the first message of type T.
func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// press sends each key through the App in order.
func press(a *appModelAdapter, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

// deliver runs cmd and feeds every resulting message back into the App.
func deliver(a *appModelAdapter, cmd tea.Cmd) {
	for _, msg := range runCmd(cmd) {
		a.Update(msg)
	}
}
