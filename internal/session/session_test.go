package session

import (
	"testing"
	"time"
)

func TestState_ZeroValueIsSignedOut(t *testing.T) {
	var s State
	if s.Authenticated() {
		t.Fatal("zero State should be signed out")
	}
	var nilState *State
	if nilState.Authenticated() {
		t.Fatal("nil State should be signed out")
	}
}

func TestState_LoginLogout(t *testing.T) {
	s := New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	if !s.Login(at) {
		t.Fatal("first Login should report a change")
	}
	if !s.Authenticated() {
		t.Fatal("expected authenticated after Login")
	}
	if s.Login(at.Add(time.Second)) {
		t.Error("second Login should be a no-op")
	}
	if s.Revision() != 1 {
		t.Errorf("Revision = %d, want 1", s.Revision())
	}
	if !s.ChangedAt().Equal(at) {
		t.Errorf("ChangedAt = %v, want %v", s.ChangedAt(), at)
	}

	if !s.Logout(at.Add(time.Minute)) {
		t.Fatal("Logout should report a change")
	}
	if s.Authenticated() {
		t.Error("expected signed out after Logout")
	}
	if s.Revision() != 2 {
		t.Errorf("Revision = %d, want 2", s.Revision())
	}
	if got := s.String(); got != "anonymous" {
		t.Errorf("String() = %q", got)
	}
}
