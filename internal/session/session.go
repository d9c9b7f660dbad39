// Package session holds the in-memory sign-in flag for one run of the shell.
// A single State lives on the App model and is handed to the route table on
// every resolution; nothing else keeps a copy.
package session

import "time"

// State is the process-local session. The zero value is signed out.
type State struct {
	authenticated bool
	revision      uint64
	changedAt     time.Time
}

// New returns a signed-out session.
func New() *State {
	return &State{}
}

// Authenticated reports whether the simulated sign-in has completed.
func (s *State) Authenticated() bool {
	if s == nil {
		return false
	}
	return s.authenticated
}

// Login marks the session signed in. It returns false if it already was.
func (s *State) Login(now time.Time) bool {
	return s.set(true, now)
}

// Logout marks the session signed out. It returns false if it already was.
func (s *State) Logout(now time.Time) bool {
	return s.set(false, now)
}

// Revision increases on every change; views compare it to detect a stale
// render.
func (s *State) Revision() uint64 {
	return s.revision
}

// ChangedAt is the time of the last Login or Logout, zero if none.
func (s *State) ChangedAt() time.Time {
	return s.changedAt
}

func (s *State) set(v bool, now time.Time) bool {
	if s.authenticated == v {
		return false
	}
	s.authenticated = v
	s.revision++
	s.changedAt = now
	return true
}

// String returns "authenticated" or "anonymous".
func (s *State) String() string {
	if s.Authenticated() {
		return "authenticated"
	}
	return "anonymous"
}
