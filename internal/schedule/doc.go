// Package schedule provides the timer primitive used by the splash transition
// and the simulated sign-in: a Clock that can fire a callback after a delay,
// and a one-shot Task that can be cancelled before it fires.
//
// Tasks never run caller code on the timer goroutine. A task only closes its
// Fired channel; the UI waits on that channel from a tea.Cmd so the resulting
// message is handled on the Bubble Tea event loop like any other input.
package schedule
