package ui

import (
	"strings"
	"testing"
	"time"

	"prodmast/internal/content"
	"prodmast/internal/route"
	"prodmast/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillAuth(t *testing.T, a *appModelAdapter) *AuthView {
	t.Helper()
	auth, ok := a.Screen.(*AuthView)
	require.True(t, ok, "expected auth screen, got %T", a.Screen)
	if auth.Mode() == route.AuthSignup {
		auth.SetValue(focusName, "Ada Lovelace")
	}
	auth.SetValue(focusEmail, "ada@example.com")
	auth.SetValue(focusPass, "hunter2")
	return auth
}

func TestApp_GuardedDashboardRedirectsToLogin(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/dashboard", Splash: SplashOff})

	assert.Equal(t, route.PathLogin, a.History.Current())
	assert.Equal(t, 1, a.History.Len(), "redirect should replace, not push")
	assert.True(t, a.Decision.Redirected)
	_, ok := a.Screen.(*AuthView)
	assert.True(t, ok)
	assert.Equal(t, ModeAuth, a.Mode)
}

func TestApp_LoginRoundTrip(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "#/dashboard", Splash: SplashOff})
	auth := fillAuth(t, a)

	cmd := press(a, "ctrl+s")
	require.NotNil(t, cmd)
	require.True(t, auth.Loading())
	assert.Equal(t, 1, clock.Pending())
	assert.False(t, a.Session.Authenticated(), "nothing happens before the delay")

	clock.Advance(DefaultAuthDelay)
	msgs := runCmd(cmd)
	done, ok := find[authDoneMsg](msgs)
	require.True(t, ok, "expected authDoneMsg in %v", msgs)
	assert.Equal(t, auth.RequestID(), done.RequestID)

	_, cmd = a.Update(done)
	deliver(a, cmd)

	assert.True(t, a.Session.Authenticated())
	assert.Equal(t, route.PathDashboard, a.History.Current())
	_, ok = a.Screen.(*DashboardView)
	assert.True(t, ok, "expected dashboard, got %T", a.Screen)
	assert.Contains(t, a.View(), "Production Output vs Target")

	// Logout re-resolves the current location.
	_, cmd = a.Update(LogoutMsg{})
	assert.False(t, a.Session.Authenticated())
	assert.Equal(t, route.PathLogin, a.History.Current())
	_, ok = a.Screen.(*AuthView)
	assert.True(t, ok)
	_ = cmd
}

func TestApp_AuthPagesRedirectWhenLoggedIn(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})
	a.Session.Login(epoch)

	_, cmd := a.Update(NavigateMsg{Path: "/signup"})
	_ = cmd
	assert.Equal(t, route.PathDashboard, a.History.Current())
	_, ok := a.Screen.(*DashboardView)
	assert.True(t, ok)
}

func TestApp_UnmountCancelsPendingAuth(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "/login", Splash: SplashOff})
	auth := fillAuth(t, a)
	cmd := press(a, "ctrl+s")
	task := auth.Task()
	require.NotNil(t, task)

	a.Update(NavigateMsg{Path: "/"})
	assert.Equal(t, schedule.StateCanceled, task.State())

	clock.Advance(time.Minute)
	_, found := find[authDoneMsg](runCmd(cmd))
	assert.False(t, found, "cancelled task must not deliver")
	assert.False(t, a.Session.Authenticated())
	assert.Equal(t, route.PathHome, a.History.Current())
}

func TestApp_RepeatedSubmitIgnored(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "/login", Splash: SplashOff})
	auth := fillAuth(t, a)

	press(a, "ctrl+s")
	id := auth.RequestID()
	second := press(a, "ctrl+s")

	assert.Nil(t, second)
	assert.Equal(t, id, auth.RequestID())
	assert.Equal(t, 1, clock.Pending())
}

func TestApp_SplashCompletesWithoutFrames(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "/"})
	require.Equal(t, ModeSplash, a.Mode)
	assert.False(t, a.chromeVisible)
	assert.NotContains(t, a.View(), "Log In")

	land := a.Screen.(*LandingView)
	sp := land.Splash()
	cmd := press(a, "enter")
	require.NotNil(t, cmd)
	assert.Nil(t, press(a, "enter"), "second activation is ignored")

	clock.Advance(time.Second)
	assert.False(t, sp.Done())
	clock.Advance(500 * time.Millisecond)

	deliver(a, cmd)
	assert.True(t, sp.Done())
	assert.False(t, land.Splashing())
	assert.Equal(t, ModeLanding, a.Mode)
	assert.True(t, a.chromeVisible)
	assert.Contains(t, a.View(), "ProdMast")
}

func TestApp_SplashTornDownOnNavigate(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "/"})
	sp := a.Screen.(*LandingView).Splash()
	cmd := press(a, "enter")

	a.Update(NavigateMsg{Path: "/login"})
	clock.Advance(time.Minute)
	assert.Empty(t, runCmd(cmd))
	assert.False(t, sp.Done())
	assert.False(t, sp.Controller().Complete())
}

func TestApp_SplashOncePolicy(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "/", Splash: SplashOnce})
	require.True(t, a.splashing())
	cmd := press(a, "enter")
	clock.Advance(2 * time.Second)
	deliver(a, cmd)

	a.Update(NavigateMsg{Path: "/login"})
	a.Update(NavigateMsg{Path: "/"})
	assert.False(t, a.splashing())
	assert.Equal(t, ModeLanding, a.Mode)
}

func TestApp_SplashEveryMountPolicy(t *testing.T) {
	a, clock := newTestApp(t, Options{StartPath: "/"})
	cmd := press(a, "enter")
	clock.Advance(2 * time.Second)
	deliver(a, cmd)

	a.Update(NavigateMsg{Path: "/login"})
	a.Update(NavigateMsg{Path: "/"})
	assert.True(t, a.splashing())
}

func TestApp_LandingPathsKeepView(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})
	land := a.Screen.(*LandingView)

	a.Update(NavigateMsg{Path: "/services"})
	assert.Same(t, land, a.Screen)
	assert.Equal(t, route.SectionServices, land.Section())
	assert.Equal(t, land.SectionOffset(route.SectionServices), land.ScrollOffset())
	assert.Positive(t, land.ScrollOffset())

	a.Update(NavigateMsg{Path: "/pricing"})
	assert.Same(t, land, a.Screen)
	assert.Greater(t, land.ScrollOffset(), land.SectionOffset(route.SectionServices))
}

func TestApp_BackForward(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})
	a.Update(NavigateMsg{Path: "/pricing"})
	a.Update(NavigateMsg{Path: "/login"})

	a.Update(BackMsg{})
	assert.Equal(t, route.PathPricing, a.History.Current())
	_, ok := a.Screen.(*LandingView)
	assert.True(t, ok)
	a.Update(BackMsg{})
	assert.Equal(t, route.PathHome, a.History.Current())
	a.Update(BackMsg{})
	assert.Equal(t, route.PathHome, a.History.Current(), "no back entry")

	a.Update(ForwardMsg{})
	assert.Equal(t, route.PathPricing, a.History.Current())
	a.Update(ForwardMsg{})
	assert.Equal(t, route.PathLogin, a.History.Current())
	_, ok = a.Screen.(*AuthView)
	assert.True(t, ok)

	a.Update(ForwardMsg{})
	assert.Equal(t, route.PathLogin, a.History.Current(), "no forward entry")
}

func TestApp_BackResolvesWithCurrentSession(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})
	a.Session.Login(epoch)
	a.Update(NavigateMsg{Path: "/dashboard"})
	a.Update(NavigateMsg{Path: "/pricing"})
	a.Update(LogoutMsg{})

	a.Update(BackMsg{})
	assert.Equal(t, route.PathLogin, a.History.Current(), "dashboard is guarded after logout")
	_, ok := a.Screen.(*AuthView)
	assert.True(t, ok)
}

func TestApp_BracketKeysMoveHistory(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})
	a.Update(NavigateMsg{Path: "/services"})

	deliver(a, press(a, "["))
	assert.Equal(t, route.PathHome, a.History.Current())
	deliver(a, press(a, "]"))
	assert.Equal(t, route.PathServices, a.History.Current())
}

func TestApp_LeaderNavigation(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})

	press(a, " ")
	assert.Contains(t, a.View(), "Go to")
	deliver(a, press(a, "g", "c"))

	assert.Equal(t, route.PathContact, a.History.Current())
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_LogoutOnLandingStays(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})
	a.Session.Login(epoch)
	land := a.Screen

	deliver(a, press(a, " ", "o"))
	assert.False(t, a.Session.Authenticated())
	assert.Equal(t, route.PathHome, a.History.Current())
	assert.Same(t, land, a.Screen)
}

func TestApp_TypingSpaceInAuthField(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/signup", Splash: SplashOff})
	auth := a.Screen.(*AuthView)
	require.Equal(t, focusName, auth.Focused())

	press(a, "A", " ", "B", "?")
	assert.False(t, a.KeyHandler.LeaderWaiting)
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, "A B?", auth.field(focusName).input.Value())
}

func TestApp_HelpOverlay(t *testing.T) {
	a, _ := newTestApp(t, Options{Splash: SplashOff})

	deliver(a, press(a, "?"))
	require.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, a.View(), "Keybindings")

	press(a, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestApp_UnknownPath(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/nowhere", Splash: SplashOff})
	nf, ok := a.Screen.(*NotFoundView)
	require.True(t, ok)
	assert.Equal(t, "/nowhere", nf.Path())
	assert.Equal(t, ModeNotFound, a.Mode)
	assert.Contains(t, a.View(), "Page not found")

	deliver(a, press(a, "enter"))
	assert.Equal(t, route.PathHome, a.History.Current())
}

func TestApp_ChromeHiddenOnAuthPages(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/login", Splash: SplashOff})
	assert.False(t, a.chromeVisible)
	assert.NotContains(t, a.View(), content.FooterCopyright)

	a.Update(NavigateMsg{Path: "/"})
	assert.True(t, a.chromeVisible)
}

func TestApp_CtrlCQuitsEverywhere(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/login", Splash: SplashOff})
	cmd := press(a, "ctrl+c")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

type panicView struct{}

func (panicView) Init() tea.Cmd                  { return nil }
func (panicView) Update(tea.Msg) (View, tea.Cmd) { panic("boom") }
func (panicView) View() string                   { return "" }

func TestSafeModel_RecoversToHome(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/pricing", Splash: SplashOff})
	a.Screen = panicView{}
	safe := newSafeModel(a, nil)

	assert.NotPanics(t, func() { safe.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) })
	assert.Equal(t, RecoveredToast, a.Toast)
	assert.Equal(t, route.PathHome, a.History.Current())
	_, ok := a.Screen.(*LandingView)
	assert.True(t, ok)
	assert.True(t, strings.Contains(safe.View(), RecoveredToast))
}
