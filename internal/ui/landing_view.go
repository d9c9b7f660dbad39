package ui

import (
	"fmt"
	"strings"
	"time"

	"prodmast/internal/content"
	"prodmast/internal/route"
	"prodmast/internal/scene"
	"prodmast/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// cta is a focusable call to action on the landing page.
type cta struct {
	id      string
	label   string
	target  string
	section route.Section
	variant ButtonVariant
}

// LandingView is the marketing page. It scrolls in a viewport, starts at
// the section for its path, and hosts the welcome splash until it exits.
type LandingView struct {
	section route.Section
	splash  *SplashView
	hero    *scene.Hero
	gen     uint64
	last    time.Time
	heroT   float64
	footer  string

	interval time.Duration
	ctas     []cta
	focus    *FocusManager
	vp       viewport.Model
	offsets  map[route.Section]int
	heroRows int

	mdWidth int
	mdCache string

	width, height int
	ready         bool
}

var (
	_ View       = (*LandingView)(nil)
	_ Teardowner = (*LandingView)(nil)
)

// NewLandingView creates the landing page for section. A non-nil splash is
// shown first.
func NewLandingView(section route.Section, splash *SplashView, frameRate, width, height int) *LandingView {
	v := &LandingView{
		section:  section,
		splash:   splash,
		hero:     scene.NewHero(),
		gen:      nextGen(),
		interval: frameInterval(frameRate),
		ctas:     landingCTAs(),
		vp:       viewport.New(width, height),
	}
	ids := make([]string, len(v.ctas))
	for i, c := range v.ctas {
		ids[i] = c.id
	}
	v.focus = NewFocusManager(ids...)
	v.focus.Current = ""
	v.resize(width, height)
	return v
}

func landingCTAs() []cta {
	out := []cta{
		{id: "hero-trial", label: "Start Free Trial", target: route.PathSignup, section: route.SectionHero, variant: ButtonPrimary},
		{id: "hero-demo", label: "Book Demo", target: route.PathContact, section: route.SectionHero, variant: ButtonOutline},
	}
	for _, s := range content.Services() {
		out = append(out, cta{id: "learn-" + s.ID, label: "Learn more", target: route.PathServices + "#" + s.ID, section: route.SectionServices, variant: ButtonGhost})
	}
	out = append(out, cta{id: "explore", label: "Explore Platform", target: route.PathSignup, section: route.SectionAbout, variant: ButtonPrimary})
	for _, p := range content.Pricing() {
		variant := ButtonOutline
		if p.Popular {
			variant = ButtonPrimary
		}
		out = append(out, cta{id: "plan-" + strings.ToLower(p.Name), label: "Choose Plan", target: route.PathSignup, section: route.SectionPricing, variant: variant})
	}
	return append(out, cta{id: "get-started", label: "Get Started Now", target: route.PathSignup, section: route.SectionContact, variant: ButtonPrimary})
}

// Splashing reports whether the welcome splash is still showing.
func (v *LandingView) Splashing() bool { return v.splash != nil }

// Splash returns the hosted splash, if any.
func (v *LandingView) Splash() *SplashView { return v.splash }

// Focused returns the id of the focused call to action.
func (v *LandingView) Focused() string { return v.focus.Current }

// Section is the section the page was opened at.
func (v *LandingView) Section() route.Section { return v.section }

// ScrollOffset is the viewport's top line.
func (v *LandingView) ScrollOffset() int { return v.vp.YOffset }

// SectionOffset is the line a section starts at.
func (v *LandingView) SectionOffset(s route.Section) int { return v.offsets[s] }

func (v *LandingView) Init() tea.Cmd {
	if v.splash != nil {
		return v.splash.Init()
	}
	return frameCmd(v.gen, v.interval)
}

func (v *LandingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if v.splash != nil {
		if m, ok := msg.(tea.WindowSizeMsg); ok {
			v.resize(m.Width, m.Height)
		}
		_, cmd := v.splash.Update(msg)
		if v.splash.Done() {
			v.splash = nil
			v.render()
			v.scrollTo(v.section)
			return v, tea.Batch(cmd, frameCmd(v.gen, v.interval))
		}
		return v, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case frameMsg:
		if msg.Gen != v.gen {
			return v, nil
		}
		v.heroT += frameStep(v.last, msg.At).Seconds()
		v.last = msg.At
		if v.vp.YOffset < v.heroRows {
			v.render()
		}
		return v, frameCmd(v.gen, v.interval)
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.focus.Next()
			v.revealFocused()
			return v, nil
		case "shift+tab":
			v.focus.Prev()
			v.revealFocused()
			return v, nil
		case "enter":
			if c, ok := v.focusedCTA(); ok {
				target := c.target
				return v, func() tea.Msg { return NavigateMsg{Path: target} }
			}
			return v, nil
		case "home", "g":
			v.vp.GotoTop()
			return v, nil
		case "end", "G":
			v.vp.GotoBottom()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// Teardown stops the splash if it is still running.
func (v *LandingView) Teardown() {
	if v.splash != nil {
		v.splash.Teardown()
	}
}

func (v *LandingView) focusedCTA() (cta, bool) {
	for _, c := range v.ctas {
		if v.focus.Is(c.id) {
			return c, true
		}
	}
	return cta{}, false
}

func (v *LandingView) revealFocused() {
	v.render()
	if c, ok := v.focusedCTA(); ok {
		v.scrollTo(c.section)
	}
}

func (v *LandingView) resize(w, h int) {
	v.width, v.height = max(w, 20), max(h, 5)
	v.vp.Width, v.vp.Height = v.width, v.height
	v.ready = true
	if v.splash == nil {
		v.render()
		v.scrollTo(v.section)
	}
}

// GoTo scrolls to section, or remembers it until the splash has exited.
func (v *LandingView) GoTo(section route.Section) {
	v.section = section
	if v.splash == nil {
		v.scrollTo(section)
	}
}

// SetFooter appends footer to the end of the scrollable page.
func (v *LandingView) SetFooter(footer string) {
	if footer == v.footer {
		return
	}
	v.footer = footer
	if v.splash == nil {
		v.render()
	}
}

func (v *LandingView) scrollTo(s route.Section) {
	v.vp.SetYOffset(v.offsets[s])
}

// sectionGap separates sections by two blank lines.
const sectionGap = "\n\n\n"

// render rebuilds the page content, keeping the scroll position.
func (v *LandingView) render() {
	y := v.vp.YOffset
	sections := []struct {
		id   route.Section
		body string
	}{
		{route.SectionHero, v.heroSection()},
		{route.SectionServices, v.servicesSection()},
		{route.SectionAbout, v.controlSection()},
		{route.SectionPricing, v.pricingSection()},
		{route.SectionContact, v.ctaSection()},
	}
	v.offsets = make(map[route.Section]int, len(sections))
	var b strings.Builder
	line := 0
	for i, s := range sections {
		if i > 0 {
			b.WriteString(sectionGap)
			line += strings.Count(sectionGap, "\n") - 1
		}
		v.offsets[s.id] = line
		b.WriteString(s.body)
		line += strings.Count(s.body, "\n") + 1
	}
	if v.footer != "" {
		b.WriteString(sectionGap)
		b.WriteString(v.footer)
	}
	v.heroRows = v.offsets[route.SectionServices]
	v.vp.SetContent(b.String())
	v.vp.SetYOffset(y)
}

func (v *LandingView) button(id string) string {
	for _, c := range v.ctas {
		if c.id == id {
			b := Button{Label: c.label, Variant: c.variant, Size: ButtonMedium, Focused: v.focus.Is(id)}
			if id == "hero-trial" {
				b.Icon = content.IconArrow
				b.Size = ButtonLarge
			}
			return b.Render()
		}
	}
	return ""
}

func (v *LandingView) heroSection() string {
	w := v.width
	fieldH := max(v.height/2, 8)
	field := v.hero.Render(w, fieldH, v.heroT)
	for i, l := range field {
		field[i] = Styles.Accent.Faint(true).Render(l)
	}

	var lede []string
	for _, l := range textutil.Wrap(content.HeroLede, min(w-4, 72)) {
		lede = append(lede, Styles.Lede.Render(l))
	}
	text := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Badge.Render(strings.ToUpper(content.HeroBadge)),
		"",
		Styles.Title.Render(content.HeroTitle),
		Styles.Gradient.Render(content.HeroSubtitle),
		"",
		strings.Join(lede, "\n"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, v.button("hero-trial"), "  ", v.button("hero-demo")),
		"",
		Styles.Dim.Render("▾ scroll"),
	)
	return strings.Join(field, "\n") + "\n" + lipgloss.PlaceHorizontal(w, lipgloss.Center, text)
}

func (v *LandingView) servicesSection() string {
	w := v.width - 4
	n := Columns(w, 30, 2, 3)
	cw := CellWidth(w, n, 2)
	var cards []string
	for _, s := range content.Services() {
		body := []string{Icon(s.Icon), "", Styles.Title.Render(s.Title)}
		for _, l := range textutil.Wrap(s.Description, cw-4) {
			body = append(body, Styles.Lede.Render(l))
		}
		body = append(body, "", v.button("learn-"+s.ID)+Icon(content.IconChevron))
		cards = append(cards, Card(strings.Join(body, "\n"), cw, v.focus.Is("learn-"+s.ID)))
	}
	return pad2(SectionHeader(content.ServicesTitle, content.ServicesSubtitle, w, true) + "\n\n" + Grid(cards, n, 2))
}

// featureMarkdown is the feature checklist as markdown.
func featureMarkdown() string {
	var b strings.Builder
	for _, f := range content.ControlFeatures() {
		fmt.Fprintf(&b, "- ✓ %s\n", f)
	}
	return b.String()
}

// features renders the checklist with glamour, cached per width. Falls back
// to plain lines if the renderer cannot be built.
func (v *LandingView) features(width int) string {
	if v.mdWidth == width && v.mdCache != "" {
		return v.mdCache
	}
	out := ""
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err = r.Render(featureMarkdown())
	}
	if err != nil || strings.TrimSpace(out) == "" {
		var lines []string
		for _, f := range content.ControlFeatures() {
			lines = append(lines, Icon(content.IconCheck)+" "+Styles.Normal.Render(f))
		}
		out = strings.Join(lines, "\n")
	}
	v.mdWidth, v.mdCache = width, strings.Trim(out, "\n")
	return v.mdCache
}

func (v *LandingView) controlSection() string {
	w := v.width - 4
	half := max((w-4)/2, 24)

	status := Card(lipgloss.JoinVertical(lipgloss.Left,
		Icon(content.IconActivity)+" "+Styles.Dim.Render("System Status"),
		Styles.Title.Render(content.SystemStatus),
		ProgressBar(content.SystemLoadPercent, half-6),
	), half, false)
	quarter := max(half/2-1, 10)
	stat := func(fig, label string) string {
		return Card(lipgloss.JoinVertical(lipgloss.Center, Styles.Title.Render(fig), Styles.Dim.Render(label)), quarter, false)
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status,
		lipgloss.JoinHorizontal(lipgloss.Top, stat(content.UptimeFigure, "Uptime"), "  ", stat(content.MonitoringFigure, "Monitoring")))

	var lede []string
	for _, l := range textutil.Wrap(content.ControlLede, half) {
		lede = append(lede, Styles.Lede.Render(l))
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		SectionHeader(content.ControlTitle, "", half, false),
		"",
		strings.Join(lede, "\n"),
		"",
		v.features(half),
		"",
		v.button("explore"),
	)
	if w < 60 {
		return pad2(right + "\n\n" + left)
	}
	return pad2(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func (v *LandingView) pricingSection() string {
	w := v.width - 4
	plans := content.Pricing()
	n := Columns(w, 28, 2, len(plans))
	cw := CellWidth(w, n, 2)
	var cards []string
	for _, p := range plans {
		id := "plan-" + strings.ToLower(p.Name)
		head := Styles.Title.Render(p.Name)
		if p.Popular {
			head += "  " + lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorInk)).Background(lipgloss.Color(ColorPrimary)).Padding(0, 1).Render("POPULAR")
		}
		price := Styles.Title.Render(p.Price)
		if p.Monthly() {
			price += Styles.Dim.Render("/mo")
		}
		body := []string{head, "", price, ""}
		for _, f := range p.Features {
			body = append(body, Icon(content.IconCheck)+" "+Styles.Lede.Render(textutil.Truncate(f, cw-6)))
		}
		body = append(body, "", v.button(id))
		st := Styles.Card
		switch {
		case v.focus.Is(id):
			st = Styles.CardFocused
		case p.Popular:
			st = Styles.CardPopular
		}
		cards = append(cards, st.Width(max(cw-2, 1)).Render(strings.Join(body, "\n")))
	}
	return pad2(SectionHeader(content.PricingTitle, content.PricingSubtitle, w, true) + "\n\n" + Grid(cards, n, 2))
}

func (v *LandingView) ctaSection() string {
	w := v.width - 4
	body := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render(content.CTATitle),
		"",
		Styles.Lede.Render(content.CTALede),
		"",
		v.button("get-started"),
	)
	return pad2(lipgloss.PlaceHorizontal(w, lipgloss.Center, body))
}

func pad2(s string) string {
	return lipgloss.NewStyle().Padding(0, 2).Render(s)
}

func (v *LandingView) View() string {
	if v.splash != nil {
		return v.splash.View()
	}
	return v.vp.View()
}
