package ui

import (
	"time"

	"prodmast/internal/route"
)

// NavigateMsg asks the App to go to a location. Path may be any form
// route.Parse accepts.
type NavigateMsg struct {
	Path string
}

// BackMsg moves one entry back in history ("[").
type BackMsg struct{}

// ForwardMsg moves one entry forward in history ("]").
type ForwardMsg struct{}

// LogoutMsg clears the session (SPC o).
type LogoutMsg struct{}

// AuthSucceededMsg is emitted by the auth view when its simulated request
// completes.
type AuthSucceededMsg struct {
	RequestID string
	Mode      route.AuthMode
}

// SplashDoneMsg is emitted when the splash exit task has fired. Gen ties it
// to the splash instance that scheduled it.
type SplashDoneMsg struct {
	Gen uint64
}

// ShowHelpMsg toggles the keybinding overlay ("?").
type ShowHelpMsg struct{}

// DismissOverlayMsg closes the topmost overlay.
type DismissOverlayMsg struct{}

// frameMsg drives animation. Frames carry the generation of the view that
// requested them so frames for an unmounted view are dropped.
type frameMsg struct {
	Gen uint64
	At  time.Time
}

// authDoneMsg is delivered when the auth task fires.
type authDoneMsg struct {
	RequestID string
}
