package ui

import "prodmast/internal/route"

// AppMode is the kind of screen currently mounted. Keybind hints are
// filtered by it.
type AppMode int

const (
	ModeLanding AppMode = iota
	ModeSplash
	ModeAuth
	ModeDashboard
	ModeNotFound
)

func (m AppMode) String() string {
	switch m {
	case ModeLanding:
		return "Landing"
	case ModeSplash:
		return "Splash"
	case ModeAuth:
		return "Auth"
	case ModeDashboard:
		return "Dashboard"
	case ModeNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// modeFor maps a resolved screen to its mode. The splash is a sub-state of
// the landing screen and is reported by the App directly.
func modeFor(s route.Screen) AppMode {
	switch s {
	case route.ScreenAuth:
		return ModeAuth
	case route.ScreenDashboard:
		return ModeDashboard
	case route.ScreenNotFound:
		return ModeNotFound
	default:
		return ModeLanding
	}
}
