package ui

import (
	"prodmast/internal/content"
	"prodmast/internal/route"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pageItem implements list.DefaultItem for a navigable page.
type pageItem struct {
	label string
	path  string
}

func (p pageItem) FilterValue() string { return p.label }
func (p pageItem) Title() string       { return p.label }
func (p pageItem) Description() string { return p.path }

// NotFoundView is shown for paths outside the route table. It offers the
// known pages as a list.
type NotFoundView struct {
	path string
	list list.Model

	width, height int
}

var _ View = (*NotFoundView)(nil)

// NewNotFoundView creates the view for an unknown path.
func NewNotFoundView(path string, width, height int) *NotFoundView {
	items := make([]list.Item, 0, 8)
	for _, n := range content.NavItems() {
		items = append(items, pageItem{label: n.Label, path: n.Path})
	}
	items = append(items,
		pageItem{label: "Log In", path: route.PathLogin},
		pageItem{label: "Sign Up", path: route.PathSignup},
		pageItem{label: "Dashboard", path: route.PathDashboard},
	)

	l := list.New(items, NewPageListDelegate(), 0, 0)
	l.Title = "Pages"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Gradient

	v := &NotFoundView{path: path, list: l}
	v.resize(width, height)
	return v
}

// Path is the unknown path that was requested.
func (v *NotFoundView) Path() string { return v.path }

// Selected returns the highlighted page path.
func (v *NotFoundView) Selected() string {
	if it, ok := v.list.SelectedItem().(pageItem); ok {
		return it.path
	}
	return ""
}

func (v *NotFoundView) resize(w, h int) {
	v.width, v.height = w, h
	v.list.SetSize(max(w-4, 20), max(h-6, 4))
}

func (v *NotFoundView) Init() tea.Cmd { return nil }

func (v *NotFoundView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if p := v.Selected(); p != "" {
				return v, navigate(p)
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *NotFoundView) View() string {
	head := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Page not found"),
		Styles.Lede.Render("Nothing lives at ")+Styles.Accent.Render(v.path),
		"",
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(head + "\n" + v.list.View())
}
