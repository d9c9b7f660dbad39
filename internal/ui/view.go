package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each screen is a View mounted by the App for the current location.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Teardowner is implemented by views that own scheduled work. The App calls
// Teardown when the view is unmounted.
type Teardowner interface {
	Teardown()
}

// InputCapturer is implemented by views with text inputs. While it reports
// true, the App passes keys straight to the view instead of the keybind
// system (ctrl+c still quits).
type InputCapturer interface {
	CapturingInput() bool
}

// teardown unmounts v if it owns scheduled work.
func teardown(v View) {
	if t, ok := v.(Teardowner); ok {
		t.Teardown()
	}
}

// FooterHost is implemented by scrolling views that draw the footer at the
// end of their content rather than below the screen.
type FooterHost interface {
	SetFooter(footer string)
}
