package ui

import (
	"strconv"
	"strings"

	"prodmast/internal/content"
	"prodmast/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// glyph is how an IconKey is drawn in the terminal.
type glyph struct {
	Rune  string
	Color string
}

var icons = map[content.IconKey]glyph{
	content.IconSettings:  {"⚙", ColorPrimary},
	content.IconCPU:       {"▣", "#60A5FA"},
	content.IconShield:    {"◈", "#4ADE80"},
	content.IconBarChart:  {"▥", "#C084FC"},
	content.IconGlobe:     {"◍", "#FB923C"},
	content.IconZap:       {"ϟ", "#FACC15"},
	content.IconBox:       {"▢", ColorPrimary},
	content.IconActivity:  {"∿", ColorSecondary},
	content.IconUsers:     {"◎", "#C084FC"},
	content.IconAlert:     {"⚠", "#F87171"},
	content.IconTrending:  {"↗", ColorMuted},
	content.IconHexagon:   {"⬡", ColorPrimary},
	content.IconCheck:     {"✓", ColorPrimary},
	content.IconArrow:     {"→", ColorText},
	content.IconChevron:   {"›", ColorPrimary},
	content.IconDashboard: {"▦", ColorText},
	content.IconLogout:    {"⇥", ColorPrimary},
}

// Icon renders key in its color. Unknown keys render as a dim dot.
func Icon(key content.IconKey) string {
	g, ok := icons[key]
	if !ok {
		return Styles.Dim.Render("·")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Render(g.Rune)
}

// ButtonVariant selects a button's colors.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutline
	ButtonGhost
)

// ButtonSize selects horizontal padding.
type ButtonSize int

const (
	ButtonSmall ButtonSize = iota
	ButtonMedium
	ButtonLarge
)

// Button is a single-line button. A Disabled button renders dimmed and a
// Focused one is wrapped in brackets.
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Icon     content.IconKey
	Disabled bool
	Focused  bool
	// Width, when positive, stretches the button to a fixed width.
	Width int
}

func (b Button) style() lipgloss.Style {
	pad := map[ButtonSize]int{ButtonSmall: 1, ButtonMedium: 2, ButtonLarge: 3}[b.Size]
	s := lipgloss.NewStyle().Padding(0, pad).Bold(b.Variant == ButtonPrimary)
	switch b.Variant {
	case ButtonPrimary:
		s = s.Foreground(lipgloss.Color(ColorInk)).Background(lipgloss.Color(ColorPrimary))
	case ButtonSecondary:
		s = s.Foreground(lipgloss.Color(ColorText)).Background(lipgloss.Color(ColorSurface))
	case ButtonOutline:
		s = s.Foreground(lipgloss.Color(ColorPrimary))
	case ButtonGhost:
		s = s.Foreground(lipgloss.Color(ColorMuted))
	}
	if b.Disabled {
		s = s.Foreground(lipgloss.Color(ColorDim)).Background(lipgloss.Color(ColorSurface)).Bold(false)
	}
	if b.Width > 0 {
		s = s.Width(b.Width - 2).Align(lipgloss.Center)
	}
	return s
}

// Render draws the button.
func (b Button) Render() string {
	label := b.Label
	if b.Icon != "" {
		if g, ok := icons[b.Icon]; ok {
			label += " " + g.Rune
		}
	}
	body := b.style().Render(label)
	open, closeB := " ", " "
	if b.Variant == ButtonOutline {
		open, closeB = "(", ")"
	}
	if b.Focused && !b.Disabled {
		open, closeB = "▸", "◂"
		return Styles.Accent.Render(open) + body + Styles.Accent.Render(closeB)
	}
	edge := Styles.Dim
	if b.Variant == ButtonOutline {
		edge = Styles.Accent
	}
	return edge.Render(open) + body + edge.Render(closeB)
}

// Card wraps body in a bordered panel of the given outer width.
func Card(body string, width int, focused bool) string {
	s := Styles.Card
	if focused {
		s = Styles.CardFocused
	}
	return s.Width(max(width-2, 1)).Render(body)
}

// SectionHeader renders a title and optional subtitle wrapped to width.
// center aligns both lines in the middle of width.
func SectionHeader(title, subtitle string, width int, center bool) string {
	lines := []string{Styles.Title.Render(title)}
	if subtitle != "" {
		for _, l := range textutil.Wrap(subtitle, min(width, 72)) {
			lines = append(lines, Styles.Lede.Render(l))
		}
	}
	if !center {
		return strings.Join(lines, "\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// FormatTrend renders a percentage change with an explicit sign for gains.
func FormatTrend(trend float64) string {
	s := strconv.FormatFloat(trend, 'f', -1, 64) + "%"
	if trend > 0 {
		s = "+" + s
	}
	return s
}

// TrendBadge is green when trend is positive and red otherwise.
func TrendBadge(trend float64) string {
	st := Styles.Danger
	if trend > 0 {
		st = Styles.Success
	}
	return st.Bold(true).Render(FormatTrend(trend))
}

// ProgressBar draws a filled bar percent wide out of width cells.
func ProgressBar(percent, width int) string {
	percent = max(0, min(100, percent))
	filled := width * percent / 100
	return Styles.Accent.Render(strings.Repeat("█", filled)) +
		Styles.Dim.Render(strings.Repeat("░", max(width-filled, 0)))
}
