package scene

import (
	"math"
	"math/rand"
)

// SpherePoints returns count points uniformly distributed inside a ball of
// the given radius. The cube root on the radius keeps density uniform.
func SpherePoints(rng *rand.Rand, count int, radius float64) []Vec3 {
	pts := make([]Vec3, count)
	for i := range pts {
		theta := 2 * math.Pi * rng.Float64()
		phi := math.Acos(2*rng.Float64() - 1)
		r := math.Cbrt(rng.Float64()) * radius
		pts[i] = Vec3{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}
	return pts
}

// Field is a rotating cloud of points.
type Field struct {
	points []Vec3
	tilt   float64
}

// NewParticleField is the landing hero backdrop: 1200 points in a ball of
// radius 1.5, tilted a quarter turn about z.
func NewParticleField(seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))
	return &Field{points: SpherePoints(rng, 1200, 1.5), tilt: math.Pi / 4}
}

// Draw renders the field after t seconds of rotation.
func (f *Field) Draw(c *Canvas, t float64) {
	rx, ry := -t/10, -t/15
	for _, p := range f.points {
		v := p.Rotate(rx, ry, f.tilt)
		x, y, ooz, ok := c.project(v)
		if !ok {
			continue
		}
		r := '.'
		if v.Z > 0.8 {
			r = '+'
		} else if v.Z > 0 {
			r = ':'
		}
		c.plot(x, y, ooz, r)
	}
}

// Starfield is the splash background. Stars sit on a unit screen plane at
// varying depth and stream outward as the warp depth grows.
type Starfield struct {
	stars []Vec3
}

// NewStarfield returns n stars placed by seed.
func NewStarfield(seed int64, n int) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	s := &Starfield{stars: make([]Vec3, n)}
	for i := range s.stars {
		s.stars[i] = Vec3{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1, Z: 0.05 + rng.Float64()*0.95}
	}
	return s
}

// Draw renders the stars behind everything else. warp is the splash depth;
// t twinkles the field.
func (s *Starfield) Draw(c *Canvas, warp, t float64) {
	for i, st := range s.stars {
		z := math.Mod(st.Z-warp*0.04, 1)
		if z <= 0 {
			z += 1
		}
		x := int(math.Round(float64(c.W)/2 + st.X/z*float64(c.W)*0.25))
		y := int(math.Round(float64(c.H)/2 + st.Y/z*float64(c.H)*0.25))
		r := '.'
		switch {
		case warp > 0 && z < 0.3:
			r = '*'
		case math.Sin(t*1.3+float64(i)) > 0.97:
			r = '+'
		}
		// Stars live at the far plane so the knot always wins the depth test.
		c.plot(x, y, 1e-6, r)
	}
}
