package route

import "testing"

func TestHistory_PushBackForward(t *testing.T) {
	h := NewHistory(PathHome)
	h.Push(PathSignup)
	h.Push(PathDashboard)

	if got := h.Current(); got != PathDashboard {
		t.Fatalf("Current = %q", got)
	}
	if p, ok := h.Back(); !ok || p != PathSignup {
		t.Errorf("Back = %q, %v", p, ok)
	}
	if p, ok := h.Back(); !ok || p != PathHome {
		t.Errorf("Back = %q, %v", p, ok)
	}
	if _, ok := h.Back(); ok {
		t.Error("Back at start should fail")
	}
	if p, ok := h.Forward(); !ok || p != PathSignup {
		t.Errorf("Forward = %q, %v", p, ok)
	}
}

func TestHistory_PushTruncatesForward(t *testing.T) {
	h := NewHistory(PathHome)
	h.Push(PathPricing)
	h.Push(PathContact)
	h.Back()
	h.Push(PathServices)

	if h.CanForward() {
		t.Error("push should drop forward entries")
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

func TestHistory_PushSameIsNoop(t *testing.T) {
	h := NewHistory(PathHome)
	h.Push(PathHome)
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHistory_Replace(t *testing.T) {
	h := NewHistory(PathHome)
	h.Push(PathDashboard)
	h.Replace(PathLogin)

	if h.Current() != PathLogin {
		t.Errorf("Current = %q", h.Current())
	}
	if p, _ := h.Back(); p != PathHome {
		t.Errorf("Back = %q", p)
	}
}
