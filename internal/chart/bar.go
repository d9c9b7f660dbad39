package chart

import "math"

// eighths are partial block heights, 1/8 to 8/8.
var eighths = []rune("▁▂▃▄▅▆▇█")

// Bars draws one vertical bar per label. Height includes the label row.
func Bars(labels []string, values []float64, width, height int) *Plot {
	p := newPlot(width, height)
	n := len(labels)
	if n == 0 || len(values) != n || height < 3 {
		return p
	}
	top := NiceMax(seriesMax([][]float64{values}))
	left, plotH := p.axis(top, 4, false)
	plotW := width - left
	if plotW < n {
		return p
	}
	slot := plotW / n
	barW := max(1, int(math.Round(float64(slot)*0.6)))
	center := func(i int) int { return left + i*slot + slot/2 }
	p.xLabels(labels, center)

	for i, v := range values {
		level := v / top * float64(plotH)
		full := int(math.Floor(level))
		rem := level - float64(full)
		x0 := center(i) - barW/2
		for dx := range barW {
			for k := range full {
				p.set(x0+dx, plotH-1-k, '█', 0)
			}
			if idx := int(math.Round(rem*8)) - 1; idx >= 0 && full < plotH {
				p.set(x0+dx, plotH-1-full, eighths[idx], 0)
			}
		}
	}
	return p
}
