package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Hex colors degrade to the nearest ANSI color on smaller terminals.
const (
	ColorPrimary   = "#00C9A7" // teal, brand accent
	ColorSecondary = "#38BDF8" // sky blue, second chart series
	ColorDanger    = "#EF4444"
	ColorSuccess   = "#22C55E"
	ColorText      = "#F1F5F9"
	ColorMuted     = "#94A3B8"
	ColorDim       = "#64748B"
	ColorSurface   = "#1E293B"
	ColorBorder    = "#334155"
	ColorInk       = "#0F172A" // text on primary buttons
)

// Styles holds the shared styles used by widgets and views.
var Styles = struct {
	Title     lipgloss.Style // Page and section headings
	Gradient  lipgloss.Style // Accented heading fragment
	Lede      lipgloss.Style // Muted paragraph text
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Hint      lipgloss.Style
	Accent    lipgloss.Style
	Secondary lipgloss.Style
	Danger    lipgloss.Style
	Success   lipgloss.Style

	Card        lipgloss.Style // Bordered glass panel
	CardFocused lipgloss.Style
	CardPopular lipgloss.Style
	Box         lipgloss.Style // Overlay box
	Badge       lipgloss.Style // Pill above the hero headline
	Toast       lipgloss.Style

	NavBar    lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Logo      lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
	Gradient:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)),
	Lede:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),
	Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)).Italic(true),
	Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)),
	Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondary)),
	Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	CardPopular: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(1, 2),
	Badge: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Foreground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	Toast: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorDanger)).
		Padding(0, 1),

	NavBar: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorBorder)),
	NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)).Bold(true),
	Logo:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
}

// NewPageListDelegate returns the compact delegate used by page pickers.
func NewPageListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = true
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color(ColorPrimary)).
		BorderForeground(lipgloss.Color(ColorPrimary))
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(lipgloss.Color(ColorMuted)).
		BorderForeground(lipgloss.Color(ColorPrimary))
	d.Styles.NormalTitle = Styles.Normal.Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = Styles.Dim.Padding(0, 0, 0, 2)
	return d
}
