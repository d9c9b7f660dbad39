package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"prodmast/internal/route"
	"prodmast/internal/schedule"
	"prodmast/internal/session"
	"prodmast/internal/splash"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// SplashPolicy decides when the landing page opens with the splash.
type SplashPolicy int

const (
	// SplashEveryMount shows the splash whenever the landing page is mounted.
	SplashEveryMount SplashPolicy = iota
	// SplashOnce shows it on the first landing mount only.
	SplashOnce
	// SplashOff never shows it.
	SplashOff
)

var splashPolicyNames = map[SplashPolicy]string{
	SplashEveryMount: "every-mount",
	SplashOnce:       "once",
	SplashOff:        "off",
}

func (p SplashPolicy) String() string {
	if n, ok := splashPolicyNames[p]; ok {
		return n
	}
	return "unknown"
}

// ParseSplashPolicy maps "every-mount", "once" or "off" to a policy. The
// empty string is SplashEveryMount.
func ParseSplashPolicy(s string) (SplashPolicy, error) {
	if s == "" {
		return SplashEveryMount, nil
	}
	for p, n := range splashPolicyNames {
		if n == s {
			return p, nil
		}
	}
	return SplashEveryMount, fmt.Errorf("unknown splash policy %q", s)
}

// Options configures the App.
type Options struct {
	StartPath       string
	Splash          SplashPolicy
	SplashExitDelay time.Duration
	AuthDelay       time.Duration
	FrameRate       int
	Clock           schedule.Clock
	Logger          *zap.Logger
	Tracer          trace.Tracer
}

func (o *Options) setDefaults() {
	if o.StartPath == "" {
		o.StartPath = route.PathHome
	}
	if o.SplashExitDelay <= 0 {
		o.SplashExitDelay = splash.DefaultExitDelay
	}
	if o.AuthDelay <= 0 {
		o.AuthDelay = DefaultAuthDelay
	}
	if o.FrameRate <= 0 {
		o.FrameRate = DefaultFrameRate
	}
	if o.Clock == nil {
		o.Clock = schedule.Real()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Tracer == nil {
		o.Tracer = noop.NewTracerProvider().Tracer("")
	}
}

// AppModel is the root model. It owns the session and history, resolves the
// current location and keeps exactly one screen mounted.
type AppModel struct {
	Mode       AppMode
	Session    *session.State
	History    *route.History
	Decision   route.Decision
	Screen     View
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Toast      string

	opts          Options
	splashShown   bool
	chromeVisible bool
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model and mounts the start location.
func NewAppModel(opts Options) *AppModel {
	opts.setDefaults()
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	m := &AppModel{
		Session:    session.New(),
		History:    route.NewHistory(route.Parse(opts.StartPath).Path),
		KeyHandler: NewKeyHandler(reg),
		opts:       opts,
	}
	m.mount()
	return m
}

// AsTeaModel returns a tea.Model for tea.NewProgram. Panics inside the
// model are recovered and logged.
func (m *AppModel) AsTeaModel() tea.Model {
	return newSafeModel(&appModelAdapter{AppModel: m}, m.opts.Logger)
}

// Close unmounts the current screen, cancelling any pending task.
func (m *AppModel) Close() {
	if m.Screen != nil {
		teardown(m.Screen)
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return a, nil
	case NavigateMsg:
		return a, a.navigate(msg.Path)
	case BackMsg:
		if _, ok := a.History.Back(); !ok {
			return a, nil
		}
		return a, a.mount()
	case ForwardMsg:
		if _, ok := a.History.Forward(); !ok {
			return a, nil
		}
		return a, a.mount()
	case LogoutMsg:
		if !a.Session.Logout(a.opts.Clock.Now()) {
			return a, nil
		}
		a.opts.Logger.Info("logout", zap.String("path", a.History.Current()))
		return a, a.mount()
	case AuthSucceededMsg:
		a.Session.Login(a.opts.Clock.Now())
		a.opts.Logger.Info("login",
			zap.String("request_id", msg.RequestID),
			zap.String("mode", msg.Mode.String()))
		return a, a.navigate(route.PathDashboard)
	case ShowHelpMsg:
		if top, ok := a.Overlays.Peek(); ok {
			if _, isHelp := top.View.(*HelpOverlay); isHelp {
				a.Overlays.Pop()
				return a, nil
			}
		}
		a.Overlays.Push(Overlay{View: NewHelpOverlay(a.KeyHandler.Registry, a.Mode, a.width), Dismiss: []string{"esc", "?", "q"}})
		return a, nil
	case DismissOverlayMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, a.updateScreen(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	a.Toast = ""
	if s == "ctrl+c" {
		return tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if c, ok := a.Screen.(InputCapturer); ok && c.CapturingInput() {
		return a.updateScreen(msg)
	}
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	return a.updateScreen(msg)
}

// updateScreen forwards msg to the mounted screen and refreshes the layout
// when the chrome appears or disappears (the splash finishing).
func (a *appModelAdapter) updateScreen(msg tea.Msg) tea.Cmd {
	v, cmd := a.Screen.Update(msg)
	a.Screen = v
	if a.Mode == ModeSplash && !a.splashing() {
		a.Mode = ModeLanding
		a.opts.Logger.Debug("splash finished", zap.String("path", a.History.Current()))
	}
	if a.chromeVisible != showChrome(a.History.Current(), a.splashing()) {
		a.layout()
	}
	return cmd
}

func (m *AppModel) splashing() bool {
	l, ok := m.Screen.(*LandingView)
	return ok && l.Splashing()
}

// navigate pushes p and mounts it. Navigating to the current location does
// nothing.
func (m *AppModel) navigate(p string) tea.Cmd {
	req := route.Parse(p)
	if req.Path == m.History.Current() && m.Screen != nil {
		return nil
	}
	m.History.Push(req.Path)
	return m.mount()
}

// mount resolves the current history entry with the current session and
// installs the resulting screen. A redirect replaces the history entry. A
// landing screen already mounted is kept and scrolled instead of rebuilt.
func (m *AppModel) mount() tea.Cmd {
	d := route.Resolve(route.Request{Path: m.History.Current()}, m.Session.Authenticated())
	if d.Redirected {
		m.History.Replace(d.Path)
	}

	_, span := m.opts.Tracer.Start(context.Background(), "navigate",
		trace.WithAttributes(
			attribute.String("path", d.Path),
			attribute.String("requested", d.Requested),
			attribute.String("screen", d.Screen.String()),
			attribute.Bool("redirect", d.Redirected),
			attribute.Bool("authenticated", m.Session.Authenticated()),
		))
	defer span.End()
	m.opts.Logger.Info("navigate",
		zap.String("path", d.Path),
		zap.String("requested", d.Requested),
		zap.String("screen", d.Screen.String()),
		zap.Bool("redirect", d.Redirected))

	prev := m.Decision
	m.Decision = d
	m.Overlays = OverlayStack{}
	m.KeyHandler.Reset()

	if l, ok := m.Screen.(*LandingView); ok && d.Screen == route.ScreenLanding && prev.Screen == route.ScreenLanding {
		l.GoTo(d.Section)
		m.layout()
		return nil
	}

	if m.Screen != nil {
		teardown(m.Screen)
	}
	w, h := m.width, m.bodyHeight(d.Path, d.Screen == route.ScreenLanding && m.wantSplash())
	switch d.Screen {
	case route.ScreenLanding:
		m.Screen = NewLandingView(d.Section, m.newSplash(w, h), m.opts.FrameRate, w, h)
	case route.ScreenAuth:
		m.Screen = NewAuthView(d.Mode, AuthOptions{
			Clock:  m.opts.Clock,
			Delay:  m.opts.AuthDelay,
			Logger: m.opts.Logger,
			Tracer: m.opts.Tracer,
		}, w, h)
	case route.ScreenDashboard:
		m.Screen = NewDashboardView(w, h)
	default:
		m.Screen = NewNotFoundView(d.Path, w, h)
	}
	m.Mode = modeFor(d.Screen)
	if m.splashing() {
		m.Mode = ModeSplash
	}
	m.layout()
	return m.Screen.Init()
}

func (m *AppModel) wantSplash() bool {
	switch m.opts.Splash {
	case SplashOff:
		return false
	case SplashOnce:
		return !m.splashShown
	default:
		return true
	}
}

func (m *AppModel) newSplash(w, h int) *SplashView {
	if !m.wantSplash() {
		return nil
	}
	m.splashShown = true
	return NewSplashView(SplashOptions{
		Clock:     m.opts.Clock,
		ExitDelay: m.opts.SplashExitDelay,
		FrameRate: m.opts.FrameRate,
		Logger:    m.opts.Logger,
		Tracer:    m.opts.Tracer,
	}, w, h)
}

const navbarHeight = 2

// bodyHeight is the height left for the screen once the chrome is drawn.
func (m *AppModel) bodyHeight(p string, splashing bool) int {
	h := m.height
	if showChrome(p, splashing) {
		h -= navbarHeight
	}
	return max(h, 0)
}

// layout sends the screen its size and hands footers to scrolling views.
func (m *AppModel) layout() {
	if m.Screen == nil {
		return
	}
	p := m.History.Current()
	splashing := m.splashing()
	m.chromeVisible = showChrome(p, splashing)
	h := m.bodyHeight(p, splashing)
	if fh, ok := m.Screen.(FooterHost); ok && m.chromeVisible {
		fh.SetFooter(Footer(m.width))
	} else if m.chromeVisible {
		h = max(h-lipgloss.Height(Footer(m.width)), 8)
	}
	v, _ := m.Screen.Update(tea.WindowSizeMsg{Width: m.width, Height: h})
	m.Screen = v
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var parts []string
	p := a.History.Current()
	if a.chromeVisible {
		parts = append(parts, Navbar(a.width, p, a.Session.Authenticated()))
	}
	if a.Toast != "" {
		parts = append(parts, Styles.Toast.Render(a.Toast))
	}

	body := a.Screen.View()
	if top, ok := a.Overlays.Peek(); ok {
		body = lipgloss.Place(a.width, max(lipgloss.Height(body), 1), lipgloss.Center, lipgloss.Center, top.View.View())
	}
	parts = append(parts, body)

	if _, ok := a.Screen.(FooterHost); !ok && a.chromeVisible {
		parts = append(parts, Footer(a.width))
	}
	if a.KeyHandler.LeaderWaiting {
		parts = append(parts, RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return strings.Join(parts, "\n")
}

// recoverHome resets the App to the landing page after a recovered panic.
func (m *AppModel) recoverHome(toast string) tea.Cmd {
	m.Overlays = OverlayStack{}
	m.KeyHandler.Reset()
	m.Toast = toast
	if m.Screen != nil {
		teardown(m.Screen)
		m.Screen = nil
	}
	m.History.Push(route.PathHome)
	m.Decision = route.Decision{}
	return m.mount()
}
