// Package chart draws small terminal charts: an area chart for one or more
// series and a bar chart, both over a shared set of x labels.
//
// Charts return a Plot, a grid of runes tagged with the series that drew
// them, so the caller can color each series without this package knowing
// about styles.
package chart

import (
	"math"
	"strconv"
	"strings"
)

// Cell tags.
const (
	Blank = -2
	Axis  = -1
)

// Cell is one character of a plot.
type Cell struct {
	R      rune
	Series int
}

// Plot is a W×H grid of cells.
type Plot struct {
	W, H  int
	cells []Cell
}

func newPlot(w, h int) *Plot {
	w, h = max(w, 0), max(h, 0)
	p := &Plot{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range p.cells {
		p.cells[i] = Cell{R: ' ', Series: Blank}
	}
	return p
}

func (p *Plot) set(x, y int, r rune, series int) {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return
	}
	p.cells[y*p.W+x] = Cell{R: r, Series: series}
}

func (p *Plot) text(x, y int, s string, series int) {
	for i, r := range []rune(s) {
		p.set(x+i, y, r, series)
	}
}

// At returns the cell at (x, y).
func (p *Plot) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return Cell{R: ' ', Series: Blank}
	}
	return p.cells[y*p.W+x]
}

// Lines returns the plot as plain text rows.
func (p *Plot) Lines() []string {
	out := make([]string, p.H)
	for y := range p.H {
		var b strings.Builder
		for x := range p.W {
			b.WriteRune(p.cells[y*p.W+x].R)
		}
		out[y] = b.String()
	}
	return out
}

// Render joins the rows, passing each run of same-series cells to paint.
// A nil paint renders plain text.
func (p *Plot) Render(paint func(series int, text string) string) string {
	if paint == nil {
		return strings.Join(p.Lines(), "\n")
	}
	rows := make([]string, p.H)
	for y := range p.H {
		var row, run strings.Builder
		cur := Blank
		flush := func() {
			if run.Len() > 0 {
				row.WriteString(paint(cur, run.String()))
				run.Reset()
			}
		}
		for x := range p.W {
			c := p.cells[y*p.W+x]
			if c.Series != cur {
				flush()
				cur = c.Series
			}
			run.WriteRune(c.R)
		}
		flush()
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

// NiceMax rounds v up to 1, 2, 2.5 or 5 times a power of ten.
func NiceMax(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	f := v / exp
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if f <= step {
			return step * exp
		}
	}
	return 10 * exp
}

// FormatTick renders an axis value compactly: 2500 becomes "2.5k".
func FormatTick(v float64) string {
	if math.Abs(v) >= 1000 {
		return strconv.FormatFloat(v/1000, 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func seriesMax(series [][]float64) float64 {
	m := 0.0
	for _, s := range series {
		for _, v := range s {
			m = math.Max(m, v)
		}
	}
	return m
}

// axis draws y tick labels and horizontal grid lines, and returns the plot
// area's left edge and height.
func (p *Plot) axis(top float64, ticks int, grid bool) (left, plotH int) {
	plotH = p.H - 1
	labelW := 0
	for i := 0; i <= ticks; i++ {
		labelW = max(labelW, len(FormatTick(top*float64(i)/float64(ticks))))
	}
	left = labelW + 1
	for i := 0; i <= ticks; i++ {
		v := top * float64(i) / float64(ticks)
		row := plotH - 1 - int(math.Round(float64(i)/float64(ticks)*float64(plotH-1)))
		label := FormatTick(v)
		p.text(labelW-len(label), row, label, Axis)
		if grid {
			for x := left; x < p.W; x++ {
				p.set(x, row, '┈', Axis)
			}
		}
	}
	return left, plotH
}

// xLabels centres labels under their column positions on the last row.
func (p *Plot) xLabels(labels []string, pos func(i int) int) {
	for i, l := range labels {
		x := pos(i) - len([]rune(l))/2
		p.text(x, p.H-1, l, Axis)
	}
}
