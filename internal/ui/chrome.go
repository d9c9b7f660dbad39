package ui

import (
	"strings"

	"prodmast/internal/content"
	"prodmast/internal/route"
	"prodmast/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Logo renders the hexagon mark and brand name.
func Logo() string {
	return Icon(content.IconHexagon) + " " + Styles.Logo.Render(content.Brand)
}

// Navbar renders the top bar: logo, nav items with the active path
// highlighted, and the session actions. Nav items are dropped when the
// terminal is too narrow to show them.
func Navbar(width int, activePath string, authenticated bool) string {
	left := Logo()

	var items []string
	for _, it := range content.NavItems() {
		st := Styles.NavItem
		if it.Path == activePath {
			st = Styles.NavActive
		}
		items = append(items, st.Render(it.Label))
	}
	mid := strings.Join(items, "   ")

	var right string
	if authenticated {
		right = Button{Label: "Dashboard", Variant: ButtonGhost, Size: ButtonSmall, Icon: content.IconDashboard}.Render() +
			" " + Button{Label: "Logout", Variant: ButtonOutline, Size: ButtonSmall, Icon: content.IconLogout}.Render()
	} else {
		right = Styles.NavItem.Render("Log In") + "  " +
			Button{Label: "Sign Up", Variant: ButtonPrimary, Size: ButtonSmall}.Render()
	}

	lw, mw, rw := textutil.StyledWidth(left), textutil.StyledWidth(mid), textutil.StyledWidth(right)
	inner := max(width-2, 0)
	var row string
	if lw+mw+rw+4 <= inner {
		gap := inner - lw - mw - rw
		lg := gap / 2
		row = left + strings.Repeat(" ", lg) + mid + strings.Repeat(" ", gap-lg) + right
	} else {
		row = left + strings.Repeat(" ", max(inner-lw-rw, 1)) + right
	}
	return Styles.NavBar.Width(inner).Padding(0, 1).Render(row)
}

// Footer renders the brand blurb, link columns and copyright.
func Footer(width int) string {
	inner := max(width-2, 10)
	cols := content.FooterColumns()
	n := Columns(inner, 22, 3, len(cols)+1)
	cw := CellWidth(inner, n, 3)

	brand := []string{Logo(), ""}
	for _, l := range textutil.Wrap(content.FooterBlurb, cw) {
		brand = append(brand, Styles.Muted.Render(l))
	}
	cells := []string{strings.Join(brand, "\n")}
	for _, c := range cols {
		lines := []string{Styles.Title.Render(c.Title), ""}
		for _, l := range c.Links {
			lines = append(lines, Styles.Muted.Render(textutil.Truncate(l.Label, cw)))
		}
		cells = append(cells, lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n")))
	}
	for i := range cells {
		cells[i] = lipgloss.NewStyle().Width(cw).Render(cells[i])
	}

	social := Styles.Dim.Render("Tw  Li  Gh")
	copyright := Styles.Dim.Render(content.FooterCopyright)
	gap := max(inner-textutil.StyledWidth(copyright)-textutil.StyledWidth(social), 1)
	bottom := copyright + strings.Repeat(" ", gap) + social

	rule := Styles.Dim.Render(strings.Repeat("─", inner))
	return lipgloss.NewStyle().Padding(0, 1).Render(
		rule + "\n" + Grid(cells, n, 3) + "\n\n" + rule + "\n" + bottom,
	)
}

// showChrome reports whether the navbar and footer frame the screen at p.
func showChrome(p string, splashing bool) bool {
	return !splashing && !route.IsAuthPage(p)
}
