package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay lists every keybinding for the current mode.
type HelpOverlay struct {
	keys  help.KeyMap
	help  help.Model
	width int
}

var _ View = (*HelpOverlay)(nil)

// NewHelpOverlay builds the overlay for mode.
func NewHelpOverlay(reg *KeybindRegistry, mode AppMode, width int) *HelpOverlay {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpOverlay{keys: NewKeyMap(reg, nil, mode), help: h, width: width}
}

func (o *HelpOverlay) Init() tea.Cmd { return nil }

func (o *HelpOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		o.width = m.Width
	}
	return o, nil
}

func (o *HelpOverlay) View() string {
	o.help.Width = max(o.width-8, 20)
	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Gradient.Render("Keybindings"),
		"",
		o.help.View(o.keys),
		"",
		Styles.Hint.Render("esc or ? to close"),
	)
	return Styles.Box.Render(body)
}
