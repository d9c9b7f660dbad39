package scene

// Splash owns the splash scene's geometry, built once per mount.
type Splash struct {
	knot  *Knot
	stars *Starfield
}

// NewSplash builds the splash scene.
func NewSplash() *Splash {
	return &Splash{knot: NewKnot(), stars: NewStarfield(7, 160)}
}

// Render draws one splash frame of size w×h.
func (s *Splash) Render(w, h int, pose Pose) []string {
	c := NewCanvas(w, h)
	s.stars.Draw(c, pose.Depth, pose.Time)
	s.knot.Draw(c, pose)
	return c.Lines()
}

// Hero owns the landing backdrop.
type Hero struct {
	field *Field
}

// NewHero builds the landing backdrop.
func NewHero() *Hero {
	return &Hero{field: NewParticleField(42)}
}

// Render draws the backdrop after t seconds.
func (h *Hero) Render(w, hgt int, t float64) []string {
	c := NewCanvas(w, hgt)
	h.field.Draw(c, t)
	return c.Lines()
}
