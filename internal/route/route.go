// Package route is the static route table: it maps a location to exactly one
// screen given the current session, applying the two guards (auth pages are
// for guests, the dashboard is for signed-in users).
package route

import (
	"path"
	"strings"
)

// Known paths.
const (
	PathHome      = "/"
	PathAbout     = "/about"
	PathServices  = "/services"
	PathPricing   = "/pricing"
	PathContact   = "/contact"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathDashboard = "/dashboard"
)

// Screen is the top-level view selected for a location.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenAuth
	ScreenDashboard
	ScreenNotFound
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "Landing"
	case ScreenAuth:
		return "Auth"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// AuthMode selects the login or signup variant of the auth form.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthSignup
)

func (m AuthMode) String() string {
	if m == AuthSignup {
		return "signup"
	}
	return "login"
}

// Section is the landing page anchor a marketing path scrolls to.
type Section int

const (
	SectionHero Section = iota
	SectionAbout
	SectionServices
	SectionPricing
	SectionContact
)

func (s Section) String() string {
	switch s {
	case SectionHero:
		return "hero"
	case SectionAbout:
		return "about"
	case SectionServices:
		return "services"
	case SectionPricing:
		return "pricing"
	case SectionContact:
		return "contact"
	default:
		return "unknown"
	}
}

type guard int

const (
	guardNone guard = iota
	guardGuestOnly
	guardMemberOnly
)

type entry struct {
	screen  Screen
	mode    AuthMode
	section Section
	guard   guard
}

var table = map[string]entry{
	PathHome:      {screen: ScreenLanding, section: SectionHero},
	PathAbout:     {screen: ScreenLanding, section: SectionAbout},
	PathServices:  {screen: ScreenLanding, section: SectionServices},
	PathPricing:   {screen: ScreenLanding, section: SectionPricing},
	PathContact:   {screen: ScreenLanding, section: SectionContact},
	PathLogin:     {screen: ScreenAuth, mode: AuthLogin, guard: guardGuestOnly},
	PathSignup:    {screen: ScreenAuth, mode: AuthSignup, guard: guardGuestOnly},
	PathDashboard: {screen: ScreenDashboard, guard: guardMemberOnly},
}

// Request is a normalised location.
type Request struct {
	Path string
}

// Decision is the outcome of resolving a Request.
type Decision struct {
	Screen  Screen
	Mode    AuthMode
	Section Section
	// Path is the location actually shown, after redirects.
	Path string
	// Requested is the path before redirects.
	Requested  string
	Redirected bool
}

// maxHops bounds the redirect chain; the table never needs more than one.
const maxHops = 4

// Resolve picks the screen for req. Redirects are followed before a screen
// is chosen, so a guarded screen is never selected for the wrong session.
func Resolve(req Request, authenticated bool) Decision {
	p := req.Path
	if p == "" {
		p = PathHome
	}
	d := Decision{Requested: p}
	for range maxHops {
		e, ok := table[p]
		if !ok {
			d.Screen = ScreenNotFound
			d.Path = p
			return d
		}
		switch {
		case e.guard == guardGuestOnly && authenticated:
			p = PathDashboard
			d.Redirected = true
			continue
		case e.guard == guardMemberOnly && !authenticated:
			p = PathLogin
			d.Redirected = true
			continue
		}
		d.Screen = e.screen
		d.Mode = e.mode
		d.Section = e.section
		d.Path = p
		return d
	}
	d.Screen = ScreenNotFound
	d.Path = p
	return d
}

// Parse normalises a location into a Request. It accepts plain paths
// ("/pricing"), hash-router fragments ("#/pricing", "http://host/#/pricing"),
// relative names ("pricing"), trailing slashes, and drops any query string or
// in-page anchor.
func Parse(location string) Request {
	s := strings.TrimSpace(location)
	if i := strings.Index(s, "#/"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "#")
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return Request{Path: strings.ToLower(path.Clean(s))}
}

// Known reports whether p is in the route table.
func Known(p string) bool {
	_, ok := table[p]
	return ok
}

// IsLanding reports whether p renders the landing page.
func IsLanding(p string) bool {
	e, ok := table[p]
	return ok && e.screen == ScreenLanding
}

// IsAuthPage reports whether p is /login or /signup. The chrome (navbar and
// footer) is hidden on these paths.
func IsAuthPage(p string) bool {
	return p == PathLogin || p == PathSignup
}
