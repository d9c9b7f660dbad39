package chart

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

var days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
var output = []float64{4000, 3000, 2000, 2780, 1890, 2390, 3490}
var target = []float64{2400, 1398, 9800, 3908, 4800, 3800, 4300}

func TestNiceMax(t *testing.T) {
	cases := map[float64]float64{
		9800: 10000,
		4000: 5000,
		2300: 2500,
		1000: 1000,
		0:    1,
		0.7:  1,
		120:  200,
	}
	for in, want := range cases {
		assert.InDelta(t, want, NiceMax(in), 1e-9, "NiceMax(%v)", in)
	}
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0", FormatTick(0))
	assert.Equal(t, "2.5k", FormatTick(2500))
	assert.Equal(t, "10k", FormatTick(10000))
	assert.Equal(t, "750", FormatTick(750))
}

func TestArea_Shape(t *testing.T) {
	p := Area(days, [][]float64{target, output}, 60, 12)
	lines := p.Lines()
	assert.Len(t, lines, 12)
	for _, l := range lines {
		assert.Equal(t, 60, utf8.RuneCountInString(l))
	}
	last := lines[len(lines)-1]
	prev := -1
	for _, d := range days {
		i := strings.Index(last, d)
		assert.Greater(t, i, prev, "label %s out of order", d)
		prev = i
	}
	assert.Contains(t, strings.Join(lines, "\n"), "10k")
}

func TestArea_TopSeriesOwnsPoints(t *testing.T) {
	p := Area(days, [][]float64{target, output}, 60, 12)
	found := map[int]int{}
	for y := range p.H {
		for x := range p.W {
			if c := p.At(x, y); c.R == '●' {
				found[c.Series]++
			}
		}
	}
	assert.Positive(t, found[1], "primary series should draw points")
}

func TestArea_Empty(t *testing.T) {
	p := Area(nil, nil, 40, 10)
	assert.Equal(t, strings.Repeat(" ", 40), p.Lines()[0])
}

func TestBars_TallestBarIsMonday(t *testing.T) {
	p := Bars(days, output, 50, 12)
	cols := map[int]int{}
	for y := range p.H - 1 {
		for x := range p.W {
			if p.At(x, y).Series == 0 {
				cols[x]++
			}
		}
	}
	tallest, tallestX := 0, -1
	for x, h := range cols {
		if h > tallest || (h == tallest && x < tallestX) {
			tallest, tallestX = h, x
		}
	}
	monday := strings.Index(p.Lines()[p.H-1], "Mon")
	assert.InDelta(t, monday+1, tallestX, 3)
}

func TestRender_PaintsRuns(t *testing.T) {
	p := Bars([]string{"A"}, []float64{1}, 12, 5)
	var series []int
	out := p.Render(func(s int, text string) string {
		series = append(series, s)
		return text
	})
	assert.Equal(t, strings.Join(p.Lines(), "\n"), out)
	assert.Contains(t, series, 0)
	assert.Contains(t, series, Axis)
}

func TestSample(t *testing.T) {
	v := []float64{0, 10, 20}
	assert.Equal(t, 0.0, sample(v, 0))
	assert.Equal(t, 20.0, sample(v, 1))
	assert.InDelta(t, 5.0, sample(v, 0.25), 1e-9)
	assert.Equal(t, 7.0, sample([]float64{7}, 0.5))
}
