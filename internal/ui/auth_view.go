package ui

import (
	"context"
	"strings"
	"time"

	"prodmast/internal/content"
	"prodmast/internal/route"
	"prodmast/internal/schedule"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultAuthDelay is how long the simulated sign-in takes.
const DefaultAuthDelay = 1500 * time.Millisecond

// Focus IDs on the auth form.
const (
	focusName   = "name"
	focusEmail  = "email"
	focusPass   = "password"
	focusSubmit = "submit"
	focusSwitch = "switch"
)

const authCardWidth = 48

// AuthOptions configures an AuthView.
type AuthOptions struct {
	Clock  schedule.Clock
	Delay  time.Duration
	Logger *zap.Logger
	Tracer trace.Tracer
}

type authField struct {
	id    string
	label string
	icon  string
	input textinput.Model
}

// AuthView is the login/signup form. Submission is simulated: any form
// whose visible fields are all filled in succeeds after the configured delay.
type AuthView struct {
	mode    route.AuthMode
	fields  []authField
	focus   *FocusManager
	spinner spinner.Model

	opts      AuthOptions
	loading   bool
	task      *schedule.Task
	requestID string
	span      trace.Span
	problem   string

	width, height int
}

var (
	_ View          = (*AuthView)(nil)
	_ Teardowner    = (*AuthView)(nil)
	_ InputCapturer = (*AuthView)(nil)
)

// NewAuthView creates the form for mode with the first field focused.
func NewAuthView(mode route.AuthMode, opts AuthOptions, width, height int) *AuthView {
	if opts.Clock == nil {
		opts.Clock = schedule.Real()
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultAuthDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("")
	}

	var fields []authField
	if mode == route.AuthSignup {
		fields = append(fields, newAuthField(focusName, "Full Name", "◎", false))
	}
	fields = append(fields,
		newAuthField(focusEmail, "Email Address", "✉", false),
		newAuthField(focusPass, "Password", "⚿", true),
	)
	order := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		order = append(order, f.id)
	}
	order = append(order, focusSubmit, focusSwitch)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInk))

	v := &AuthView{
		mode:    mode,
		fields:  fields,
		focus:   NewFocusManager(order...),
		spinner: s,
		opts:    opts,
		width:   width,
		height:  height,
	}
	v.syncFocus()
	return v
}

func newAuthField(id, label, icon string, secret bool) authField {
	ti := textinput.New()
	ti.Placeholder = label
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Width = authCardWidth - 10
	ti.PlaceholderStyle = Styles.Dim
	ti.TextStyle = Styles.Normal
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return authField{id: id, label: label, icon: icon, input: ti}
}

// Mode is login or signup.
func (v *AuthView) Mode() route.AuthMode { return v.mode }

// Loading reports whether a submission is pending.
func (v *AuthView) Loading() bool { return v.loading }

// RequestID identifies the pending or last submission.
func (v *AuthView) RequestID() string { return v.requestID }

// Focused returns the focused element id.
func (v *AuthView) Focused() string { return v.focus.Current }

// Problem is the validation message shown under the form, if any.
func (v *AuthView) Problem() string { return v.problem }

// Task is the pending submission timer, nil before the first submit.
func (v *AuthView) Task() *schedule.Task { return v.task }

// CapturingInput is true while a text field has focus.
func (v *AuthView) CapturingInput() bool {
	return !v.loading && v.field(v.focus.Current) != nil
}

func (v *AuthView) field(id string) *authField {
	for i := range v.fields {
		if v.fields[i].id == id {
			return &v.fields[i]
		}
	}
	return nil
}

// SetValue fills a field by id. It reports false for unknown ids.
func (v *AuthView) SetValue(id, value string) bool {
	f := v.field(id)
	if f == nil {
		return false
	}
	f.input.SetValue(value)
	return true
}

func (v *AuthView) syncFocus() {
	for i := range v.fields {
		if v.focus.Is(v.fields[i].id) {
			v.fields[i].input.Focus()
		} else {
			v.fields[i].input.Blur()
		}
	}
}

func (v *AuthView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *AuthView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case authDoneMsg:
		return v, v.finish(msg.RequestID)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	if f := v.field(v.focus.Current); f != nil {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *AuthView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		return navigate(route.PathHome)
	}
	if v.loading {
		return nil
	}
	switch msg.String() {
	case "tab", "down":
		v.focus.Next()
		v.syncFocus()
		return nil
	case "shift+tab", "up":
		v.focus.Prev()
		v.syncFocus()
		return nil
	case "ctrl+s":
		return v.submit()
	case "enter":
		switch v.focus.Current {
		case focusSubmit:
			return v.submit()
		case focusSwitch:
			return navigate(v.switchTarget())
		default:
			v.focus.Next()
			v.syncFocus()
			return nil
		}
	}
	if f := v.field(v.focus.Current); f != nil {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if v.problem != "" && strings.TrimSpace(f.input.Value()) != "" {
			v.problem = ""
		}
		return cmd
	}
	return nil
}

func (v *AuthView) switchTarget() string {
	if v.mode == route.AuthLogin {
		return route.PathSignup
	}
	return route.PathLogin
}

// missing returns the first visible field left blank, or nil.
func (v *AuthView) missing() *authField {
	for i := range v.fields {
		if strings.TrimSpace(v.fields[i].input.Value()) == "" {
			return &v.fields[i]
		}
	}
	return nil
}

// submit starts the simulated request. It is ignored while one is pending.
func (v *AuthView) submit() tea.Cmd {
	if v.loading {
		return nil
	}
	if f := v.missing(); f != nil {
		v.problem = f.label + " is required"
		v.focus.SetFocus(f.id)
		v.syncFocus()
		return nil
	}
	v.problem = ""
	v.loading = true
	v.requestID = uuid.NewString()
	_, v.span = v.opts.Tracer.Start(context.Background(), "auth.submit",
		trace.WithAttributes(
			attribute.String("auth.mode", v.mode.String()),
			attribute.String("request_id", v.requestID),
		))
	v.task = schedule.After(v.opts.Clock, v.opts.Delay)
	v.opts.Logger.Info("auth submit",
		zap.String("mode", v.mode.String()),
		zap.String("request_id", v.requestID),
		zap.Duration("delay", v.opts.Delay))

	id := v.requestID
	return tea.Batch(v.spinner.Tick, awaitTask(v.task, func() tea.Msg {
		return authDoneMsg{RequestID: id}
	}))
}

// finish completes the pending submission if id matches it.
func (v *AuthView) finish(id string) tea.Cmd {
	if !v.loading || id != v.requestID {
		return nil
	}
	v.loading = false
	v.task = nil
	if v.span != nil {
		v.span.SetStatus(codes.Ok, "")
		v.span.End()
		v.span = nil
	}
	v.opts.Logger.Info("auth succeeded", zap.String("request_id", id))
	mode := v.mode
	return func() tea.Msg { return AuthSucceededMsg{RequestID: id, Mode: mode} }
}

// Teardown cancels a pending submission.
func (v *AuthView) Teardown() {
	if v.task.Cancel() {
		v.opts.Logger.Debug("auth canceled", zap.String("request_id", v.requestID))
	}
	if v.span != nil {
		v.span.SetStatus(codes.Error, "canceled")
		v.span.End()
		v.span = nil
	}
	v.loading = false
}

func navigate(p string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: p} }
}

func (v *AuthView) View() string {
	inner := authCardWidth - 4
	title, sub := "Welcome Back", "Enter your credentials to access the dashboard"
	label := "Sign In"
	prompt, link := "Don't have an account? ", "Sign up"
	if v.mode == route.AuthSignup {
		title, sub = "Create Account", "Start your 14-day free trial today"
		label = "Create Account"
		prompt, link = "Already have an account? ", "Log in"
	}

	rows := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, Styles.Title.Render(title)),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, Styles.Lede.Render(sub)),
		"",
	}
	for _, f := range v.fields {
		border := Styles.Card
		iconStyle := Styles.Dim
		if v.focus.Is(f.id) {
			border = Styles.CardFocused
			iconStyle = Styles.Accent
		}
		rows = append(rows, border.Width(inner-2).Render(iconStyle.Render(f.icon)+" "+f.input.View()))
	}
	if v.mode == route.AuthLogin {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Right, Styles.Accent.Render("Forgot Password?")))
	}

	btn := Button{Label: label, Variant: ButtonPrimary, Width: inner, Focused: v.focus.Is(focusSubmit)}
	if v.loading {
		btn.Label = v.spinner.View() + " Processing..."
		btn.Disabled = true
	}
	rows = append(rows, "", btn.Render())
	if v.problem != "" {
		rows = append(rows, Styles.Danger.Render(v.problem))
	}

	divider := Styles.Dim.Render(strings.Repeat("─", 8) + " Or continue with " + strings.Repeat("─", 8))
	social := lipgloss.JoinHorizontal(lipgloss.Top,
		Button{Label: "Google", Variant: ButtonSecondary}.Render(), "  ",
		Button{Label: "GitHub", Variant: ButtonSecondary}.Render())
	linkStyle := Styles.Accent
	if v.focus.Is(focusSwitch) {
		linkStyle = linkStyle.Underline(true).Bold(true)
	}
	rows = append(rows,
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, divider),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, social),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, Styles.Muted.Render(prompt)+linkStyle.Render(link)),
	)

	card := Styles.Card.Padding(1, 1).Render(strings.Join(rows, "\n"))
	page := lipgloss.JoinVertical(lipgloss.Center,
		Icon(content.IconHexagon),
		"",
		card,
		"",
		Styles.Hint.Render("tab next field · ctrl+s submit · esc home"),
	)
	return lipgloss.Place(max(v.width, authCardWidth), max(v.height, 1), lipgloss.Center, lipgloss.Center, page)
}
