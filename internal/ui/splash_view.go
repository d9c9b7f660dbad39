package ui

import (
	"context"
	"strings"
	"time"

	"prodmast/internal/content"
	"prodmast/internal/scene"
	"prodmast/internal/schedule"
	"prodmast/internal/splash"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// SplashView is the full-screen welcome animation. Enter starts the exit;
// the App is told through SplashDoneMsg once the exit delay has passed.
type SplashView struct {
	gen      uint64
	ctrl     *splash.Controller
	scene    *scene.Splash
	interval time.Duration
	last     time.Time
	done     bool
	log      *zap.Logger
	tracer   trace.Tracer
	span     trace.Span

	width, height int
}

var (
	_ View       = (*SplashView)(nil)
	_ Teardowner = (*SplashView)(nil)
)

// SplashOptions configures a SplashView.
type SplashOptions struct {
	Clock     schedule.Clock
	ExitDelay time.Duration
	FrameRate int
	Logger    *zap.Logger
	Tracer    trace.Tracer
}

// NewSplashView creates an idle splash.
func NewSplashView(opts SplashOptions, width, height int) *SplashView {
	if opts.ExitDelay <= 0 {
		opts.ExitDelay = splash.DefaultExitDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("")
	}
	v := &SplashView{
		gen:      nextGen(),
		scene:    scene.NewSplash(),
		interval: frameInterval(opts.FrameRate),
		log:      opts.Logger,
		tracer:   opts.Tracer,
		width:    width,
		height:   height,
	}
	v.ctrl = splash.NewController(opts.Clock, opts.ExitDelay, func() { v.done = true })
	return v
}

// Gen identifies this splash instance.
func (v *SplashView) Gen() uint64 { return v.gen }

// Controller exposes the exit sequencer.
func (v *SplashView) Controller() *splash.Controller { return v.ctrl }

// Done reports whether the exit has completed.
func (v *SplashView) Done() bool { return v.done }

func (v *SplashView) Init() tea.Cmd {
	return frameCmd(v.gen, v.interval)
}

func (v *SplashView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case frameMsg:
		if msg.Gen != v.gen || v.done {
			return v, nil
		}
		v.ctrl.Tick(frameStep(v.last, msg.At))
		v.last = msg.At
		return v, frameCmd(v.gen, v.interval)
	case SplashDoneMsg:
		if msg.Gen == v.gen && v.ctrl.Complete() {
			v.log.Debug("splash complete", zap.Duration("delay", v.ctrl.Delay()))
			v.endSpan()
		}
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return v, v.activate()
		}
	}
	return v, nil
}

// activate starts the exit once; later presses do nothing.
func (v *SplashView) activate() tea.Cmd {
	task, started := v.ctrl.ActivateExit()
	if !started {
		return nil
	}
	v.log.Debug("splash exit", zap.Duration("delay", task.Delay))
	_, v.span = v.tracer.Start(context.Background(), "splash.exit")
	gen := v.gen
	return awaitTask(task, func() tea.Msg { return SplashDoneMsg{Gen: gen} })
}

// Teardown cancels a pending exit.
func (v *SplashView) Teardown() {
	v.ctrl.Teardown()
	v.endSpan()
}

func (v *SplashView) endSpan() {
	if v.span != nil {
		v.span.End()
		v.span = nil
	}
}

func (v *SplashView) View() string {
	w, h := max(v.width, 20), max(v.height, 10)
	st := v.ctrl.State()
	bg := v.scene.Render(w, h, scene.Pose{
		RotX:       st.RotX,
		RotY:       st.RotY,
		RotZ:       st.RotZ,
		Depth:      st.Depth,
		Distortion: st.Distortion,
		Opacity:    st.Opacity,
		Time:       st.Clock.Seconds(),
	})
	for i, l := range bg {
		bg[i] = Styles.Dim.Render(l)
	}
	if st.Phase != splash.PhaseIdle && splash.UIOpacity(st) < 0.5 {
		return strings.Join(bg, "\n")
	}
	return overlayCenter(bg, v.card(st), w)
}

func (v *SplashView) card(st splash.State) string {
	status := Styles.Success.Render("●") + " " + Styles.Dim.Render(strings.ToUpper(content.SplashStatus))
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)).Render(content.SplashTitle)
	cta := Button{Label: strings.ToUpper(content.SplashEnterCTA), Variant: ButtonPrimary, Size: ButtonLarge, Icon: content.IconChevron, Focused: true}
	if st.Phase != splash.PhaseIdle {
		cta.Disabled = true
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		status,
		"",
		title,
		"",
		Styles.Lede.Render(content.SplashLede),
		Styles.Accent.Render(content.SplashTagline),
		"",
		cta.Render(),
		"",
		Icon(content.IconCPU)+"  "+Icon(content.IconActivity)+"  "+Icon(content.IconShield)+"  "+Icon(content.IconZap),
	)
	return lipgloss.NewStyle().Padding(1, 3).Render(body)
}

// overlayCenter draws fg in the middle of the bg rows.
func overlayCenter(bg []string, fg string, width int) string {
	fgLines := strings.Split(fg, "\n")
	top := max((len(bg)-len(fgLines))/2, 0)
	out := make([]string, len(bg))
	copy(out, bg)
	for i, l := range fgLines {
		if top+i >= len(out) {
			break
		}
		out[top+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l)
	}
	return strings.Join(out, "\n")
}
