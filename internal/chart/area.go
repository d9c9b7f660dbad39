package chart

import "math"

// Area draws each series as a filled area, later series on top. Every series
// must have one value per label. Height includes the label row.
func Area(labels []string, series [][]float64, width, height int) *Plot {
	p := newPlot(width, height)
	n := len(labels)
	if n == 0 || height < 3 {
		return p
	}
	top := NiceMax(seriesMax(series))
	left, plotH := p.axis(top, 4, true)
	plotW := width - left
	if plotW < 2 {
		return p
	}

	col := func(i int) int {
		if n == 1 {
			return left + plotW/2
		}
		return left + int(math.Round(float64(i)*float64(plotW-1)/float64(n-1)))
	}
	p.xLabels(labels, col)

	for s, values := range series {
		if len(values) != n {
			continue
		}
		points := make(map[int]bool, n)
		for i := range n {
			points[col(i)] = true
		}
		for x := left; x < width; x++ {
			v := sample(values, float64(x-left)/float64(plotW-1))
			level := v / top * float64(plotH-1)
			lineRow := plotH - 1 - int(math.Round(level))
			for y := lineRow + 1; y < plotH; y++ {
				p.set(x, y, '░', s)
			}
			r := '─'
			if points[x] {
				r = '●'
			}
			p.set(x, lineRow, r, s)
		}
	}
	return p
}

// sample linearly interpolates values at t in [0,1].
func sample(values []float64, t float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	t = math.Max(0, math.Min(1, t))
	f := t * float64(len(values)-1)
	i := int(math.Floor(f))
	if i >= len(values)-1 {
		return values[len(values)-1]
	}
	frac := f - float64(i)
	return values[i] + (values[i+1]-values[i])*frac
}
