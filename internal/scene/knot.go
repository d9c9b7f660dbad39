package scene

import "math"

// Pose is everything the knot renderer needs from the splash state.
type Pose struct {
	RotX, RotY, RotZ float64
	Depth            float64
	Distortion       float64
	Opacity          float64
	// Time drives the idle float and the distortion ripple, in seconds.
	Time float64
}

// shade is ordered dark to bright.
const shade = ".,-~:;=!*#$@"

var light = Vec3{0.6, 0.6, 0.5}.Norm()

type surfacePoint struct {
	pos, normal Vec3
	u, v        float64
}

// Knot is a (p,q) torus knot tube, tessellated once.
type Knot struct {
	points []surfacePoint
}

// NewKnot builds the splash centrepiece: a (2,3) knot of radius 1 and tube
// 0.3, scaled by 1.2.
func NewKnot() *Knot {
	return newKnot(2, 3, 1.2, 0.36, 220, 20)
}

func newKnot(p, q int, radius, tube float64, tubular, radial int) *Knot {
	k := &Knot{points: make([]surfacePoint, 0, tubular*radial)}
	curve := func(u float64) Vec3 {
		qu := float64(q) / float64(p) * u
		cs := math.Cos(qu)
		return Vec3{
			X: radius * (2 + cs) * 0.5 * math.Cos(u),
			Y: radius * (2 + cs) * 0.5 * math.Sin(u),
			Z: radius * math.Sin(qu) * 0.5,
		}
	}
	for i := range tubular {
		u := float64(i) / float64(tubular) * float64(p) * 2 * math.Pi
		p1 := curve(u)
		p2 := curve(u + 0.01)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n).Norm()
		n = b.Cross(t).Norm()
		for j := range radial {
			v := float64(j) / float64(radial) * 2 * math.Pi
			cx := -tube * math.Cos(v)
			cy := tube * math.Sin(v)
			off := n.Scale(cx).Add(b.Scale(cy))
			k.points = append(k.points, surfacePoint{
				pos:    p1.Add(off),
				normal: off.Norm(),
				u:      u,
				v:      v,
			})
		}
	}
	return k
}

// Draw renders the knot onto c. A fully transparent pose draws nothing.
func (k *Knot) Draw(c *Canvas, pose Pose) {
	if pose.Opacity <= 0.02 {
		return
	}
	bob := 0.12 * math.Sin(pose.Time*4*0.5)
	ripple := pose.Distortion * 0.12
	for _, sp := range k.points {
		wobble := math.Sin(sp.u*3+pose.Time*3) * math.Cos(sp.v*2+pose.Time*2)
		pos := sp.pos.Add(sp.normal.Scale(ripple * wobble))
		pos = pos.Rotate(pose.RotX, pose.RotY, pose.RotZ)
		pos.Y += bob
		pos.Z += pose.Depth
		x, y, ooz, ok := c.project(pos)
		if !ok {
			continue
		}
		lum := sp.normal.Rotate(pose.RotX, pose.RotY, pose.RotZ).Dot(light)
		lum = math.Max(0, lum) * pose.Opacity
		idx := int(lum * float64(len(shade)-1))
		c.plot(x, y, ooz, rune(shade[idx]))
	}
}
