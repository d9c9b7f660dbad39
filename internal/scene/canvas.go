// Package scene draws the splash and hero 3D scenes as character art: a
// distorted torus knot over a warping starfield for the splash, and a slowly
// turning particle sphere behind the landing hero.
package scene

import (
	"math"
	"strings"
)

// Canvas is a character grid with a depth buffer.
type Canvas struct {
	W, H  int
	cells []rune
	depth []float64
}

// NewCanvas returns a blank w×h canvas. Non-positive sizes yield an empty
// canvas.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h, cells: make([]rune, w*h), depth: make([]float64, w*h)}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

// plot writes r at (x, y) if ooz (one over z) is nearer than what is there.
func (c *Canvas) plot(x, y int, ooz float64, r rune) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	i := y*c.W + x
	if ooz <= c.depth[i] {
		return
	}
	c.depth[i] = ooz
	c.cells[i] = r
}

// At returns the rune at (x, y), or a space outside the canvas.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return ' '
	}
	return c.cells[y*c.W+x]
}

// Lines returns the canvas rows.
func (c *Canvas) Lines() []string {
	out := make([]string, c.H)
	for y := range c.H {
		out[y] = string(c.cells[y*c.W : (y+1)*c.W])
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Filled counts non-blank cells.
func (c *Canvas) Filled() int {
	n := 0
	for _, r := range c.cells {
		if r != ' ' {
			n++
		}
	}
	return n
}

// camDist is the camera's distance from the origin, looking down -z.
const camDist = 5.0

// project maps a camera-relative point to a cell. Cells are about twice as
// tall as wide, so y is halved.
func (c *Canvas) project(v Vec3) (x, y int, ooz float64, ok bool) {
	z := camDist - v.Z
	if z < 0.2 {
		return 0, 0, 0, false
	}
	ooz = 1 / z
	scale := math.Min(float64(c.W), float64(c.H)*2) * 0.45
	x = int(math.Round(float64(c.W)/2 + v.X*camDist*ooz*scale))
	y = int(math.Round(float64(c.H)/2 - v.Y*camDist*ooz*scale*0.5))
	return x, y, ooz, true
}
