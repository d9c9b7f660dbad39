package scene

import "math"

// Vec3 is a point or direction in scene space.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(k float64) Vec3 { return Vec3{a.X * k, a.Y * k, a.Z * k} }
func (a Vec3) Dot(b Vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float64         { return math.Sqrt(a.Dot(a)) }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

func (a Vec3) Norm() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Rotate applies rotations about x, then y, then z.
func (a Vec3) Rotate(rx, ry, rz float64) Vec3 {
	sx, cx := math.Sincos(rx)
	y := a.Y*cx - a.Z*sx
	z := a.Y*sx + a.Z*cx
	a.Y, a.Z = y, z

	sy, cy := math.Sincos(ry)
	x := a.X*cy + a.Z*sy
	z = -a.X*sy + a.Z*cy
	a.X, a.Z = x, z

	sz, cz := math.Sincos(rz)
	x = a.X*cz - a.Y*sz
	y = a.X*sz + a.Y*cz
	a.X, a.Y = x, y
	return a
}
