package ui

import (
	"strings"

	"prodmast/internal/chart"
	"prodmast/internal/content"
	"prodmast/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardView shows the mocked production metrics and charts.
type DashboardView struct {
	vp     viewport.Model
	footer string

	width, height int
}

var (
	_ View       = (*DashboardView)(nil)
	_ FooterHost = (*DashboardView)(nil)
)

// NewDashboardView creates a dashboard sized to width×height.
func NewDashboardView(width, height int) *DashboardView {
	v := &DashboardView{vp: viewport.New(width, height)}
	v.resize(width, height)
	return v
}

func (v *DashboardView) Init() tea.Cmd { return nil }

func (v *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		v.resize(m.Width, m.Height)
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// SetFooter appends footer to the scrollable content.
func (v *DashboardView) SetFooter(footer string) {
	if footer == v.footer {
		return
	}
	v.footer = footer
	v.render()
}

func (v *DashboardView) resize(w, h int) {
	v.width, v.height = max(w, 30), max(h, 5)
	v.vp.Width, v.vp.Height = v.width, v.height
	v.render()
}

func (v *DashboardView) render() {
	y := v.vp.YOffset
	body := v.Content()
	if v.footer != "" {
		body += "\n\n" + v.footer
	}
	v.vp.SetContent(body)
	v.vp.SetYOffset(y)
}

// Content renders the dashboard without scrolling or footer.
func (v *DashboardView) Content() string {
	w := v.width - 4
	parts := []string{
		v.header(w),
		"",
		v.metrics(w),
		"",
		v.charts(w),
		"",
		v.upgrade(w),
	}
	return lipgloss.NewStyle().Padding(1, 2, 0).Render(strings.Join(parts, "\n"))
}

func (v *DashboardView) header(w int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(content.DashboardTitle),
		Styles.Lede.Render(content.DashboardGreeting),
	)
	if w < 60 {
		return left
	}
	right := Styles.Dim.Render(content.DashboardUpdated)
	gap := max(w-textutil.StyledWidth(left)-textutil.StyledWidth(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), right)
}

// MetricCard renders one metric: icon and trend badge above the label,
// value and unit.
func MetricCard(m content.Metric, width int) string {
	inner := max(width-4, 8)
	badge := TrendBadge(m.Trend)
	top := Icon(m.Icon) + strings.Repeat(" ", max(inner-1-textutil.StyledWidth(badge), 1)) + badge
	body := lipgloss.JoinVertical(lipgloss.Left,
		top,
		"",
		Styles.Muted.Render(m.Label),
		Styles.Title.Render(m.Value)+" "+Styles.Dim.Render(m.Unit),
	)
	return Card(body, width, false)
}

func (v *DashboardView) metrics(w int) string {
	ms := content.Metrics()
	n := Columns(w, 24, 2, len(ms))
	cw := CellWidth(w, n, 2)
	cards := make([]string, len(ms))
	for i, m := range ms {
		cards[i] = MetricCard(m, cw)
	}
	return Grid(cards, n, 2)
}

func chartPaint(series int, text string) string {
	switch series {
	case 0:
		return Styles.Accent.Render(text)
	case 1:
		return Styles.Secondary.Render(text)
	case chart.Axis:
		return Styles.Dim.Render(text)
	default:
		return text
	}
}

func weeklyColumns() (labels []string, output, target []float64) {
	for _, p := range content.WeeklySeries() {
		labels = append(labels, p.Name)
		output = append(output, p.Value)
		target = append(target, p.Value2)
	}
	return labels, output, target
}

func (v *DashboardView) charts(w int) string {
	labels, output, target := weeklyColumns()
	const chartH = 14

	twoUp := w >= 90
	mainW, sideW := w, w
	if twoUp {
		sideW = w / 3
		mainW = w - sideW - 2
	}

	weekly := Button{Label: "Weekly", Variant: ButtonOutline, Size: ButtonSmall}.Render()
	title := Styles.Title.Render(content.OutputChartTitle)
	head := title + strings.Repeat(" ", max(mainW-4-textutil.StyledWidth(title)-textutil.StyledWidth(weekly), 1)) + weekly
	legend := Styles.Accent.Render("● Output") + "  " + Styles.Secondary.Render("● Target")
	// Output is drawn last so it sits on top where the areas overlap.
	area := chart.Area(labels, [][]float64{target, output}, mainW-4, chartH)
	main := Card(lipgloss.JoinVertical(lipgloss.Left, head, legend, "", area.Render(remapSeries)), mainW, false)

	sideTitle := Styles.Title.Render(content.EfficiencyTitle)
	sideHead := sideTitle + strings.Repeat(" ", max(sideW-4-textutil.StyledWidth(sideTitle)-1, 1)) + Icon(content.IconTrending)
	bars := chart.Bars(labels, output, sideW-4, chartH)
	side := Card(lipgloss.JoinVertical(lipgloss.Left, sideHead, "", "", bars.Render(chartPaint)), sideW, false)

	if !twoUp {
		return main + "\n\n" + side
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", side)
}

// remapSeries colors the area chart: series 0 is the target, series 1 the
// output.
func remapSeries(series int, text string) string {
	switch series {
	case 0:
		return chartPaint(1, text)
	case 1:
		return chartPaint(0, text)
	default:
		return chartPaint(series, text)
	}
}

func (v *DashboardView) upgrade(w int) string {
	cw := w
	if w >= 60 {
		cw = (w - 2) / 2
	}
	text := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(content.UpgradeTitle),
		Styles.Lede.Render(textutil.Truncate(content.UpgradeBody, cw-10)),
		"",
		Styles.Accent.Bold(true).Render(content.UpgradeCTA),
	)
	orb := Styles.Accent.Faint(true).Render("◉")
	row := lipgloss.JoinHorizontal(lipgloss.Center, text, strings.Repeat(" ", max(cw-4-textutil.StyledWidth(text)-1, 1)), orb)
	return Card(row, cw, false)
}

func (v *DashboardView) View() string {
	return v.vp.View()
}
