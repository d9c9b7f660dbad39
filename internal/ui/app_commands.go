package ui

import (
	"prodmast/internal/route"

	tea "github.com/charmbracelet/bubbletea"
)

// goTargets are the SPC g destinations.
var goTargets = []struct {
	key, path, desc string
}{
	{"h", route.PathHome, "Home"},
	{"a", route.PathAbout, "About"},
	{"s", route.PathServices, "Services"},
	{"p", route.PathPricing, "Pricing"},
	{"c", route.PathContact, "Contact"},
}

var (
	pageModes  = []AppMode{ModeLanding, ModeDashboard, ModeNotFound}
	guestModes = []AppMode{ModeLanding, ModeAuth, ModeNotFound}
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// registerKeybinds installs the global bindings.
func registerKeybinds(reg *KeybindRegistry) {
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for _, t := range goTargets {
		reg.BindWithDesc("SPC g "+t.key, navigate(t.path), t.desc)
	}
	reg.BindWithDescForMode("SPC l", navigate(route.PathLogin), "Log in", guestModes)
	reg.BindWithDescForMode("SPC u", navigate(route.PathSignup), "Sign up", guestModes)
	reg.BindWithDescForMode("SPC d", navigate(route.PathDashboard), "Dashboard", pageModes)
	reg.BindWithDescForMode("SPC o", msgCmd(LogoutMsg{}), "Logout", pageModes)
	reg.BindWithDesc("[", msgCmd(BackMsg{}), "Back")
	reg.BindWithDesc("]", msgCmd(ForwardMsg{}), "Forward")
	reg.BindWithDesc("?", msgCmd(ShowHelpMsg{}), "Help")
}
