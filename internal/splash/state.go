// Package splash drives the welcome splash's exit sequence: a small state
// machine that, once the user enters the platform, warps the 3D scene away
// and signals completion after a fixed wall-clock delay.
package splash

import (
	"math"
	"time"
)

// Phase is the controller's lifecycle phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExiting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExiting:
		return "exiting"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Animation rates, per second.
const (
	rotXRate     = 0.2
	rotYRate     = 0.5
	warpSpeed    = 15.0
	spinRate     = 2.0
	distortRate  = 2.0
	opacityRate  = 5.0
	distortLimit = 2.0

	InitialDistortion = 0.6
	InitialOpacity    = 1.0
)

// Overlay fade: the text layer stays put for uiFadeDelay after exit starts,
// then fades out over uiFadeDuration.
const (
	uiFadeDelay    = 500 * time.Millisecond
	uiFadeDuration = time.Second
)

// State is the visual state of the splash scene. Elapsed counts time spent
// exiting; Clock counts all animated time.
type State struct {
	Phase      Phase
	Elapsed    time.Duration
	Clock      time.Duration
	RotX       float64
	RotY       float64
	RotZ       float64
	Depth      float64
	Distortion float64
	Opacity    float64
}

// Initial returns the idle scene.
func Initial() State {
	return State{
		Phase:      PhaseIdle,
		Distortion: InitialDistortion,
		Opacity:    InitialOpacity,
	}
}

// Step advances s by dt. It is pure: the same inputs always give the same
// output, and the phase is never changed here.
//
// While exiting, distortion and opacity approach their targets by
// frame-delta-scaled linear interpolation, so the approach is exponential in
// time rather than linear.
func Step(s State, dt time.Duration) State {
	if dt <= 0 {
		return s
	}
	sec := dt.Seconds()
	s.Clock += dt
	s.RotX += sec * rotXRate
	s.RotY += sec * rotYRate
	if s.Phase == PhaseIdle {
		return s
	}
	s.Elapsed += dt
	s.Depth += sec * warpSpeed
	s.RotZ += sec * spinRate
	s.Distortion = lerp(s.Distortion, distortLimit, sec*distortRate)
	s.Opacity = lerp(s.Opacity, 0, sec*opacityRate)
	return s
}

// UIOpacity is the opacity of the text overlay for s, in [0,1].
func UIOpacity(s State) float64 {
	if s.Phase == PhaseIdle {
		return 1
	}
	t := s.Elapsed - uiFadeDelay
	if t <= 0 {
		return 1
	}
	return math.Max(0, 1-t.Seconds()/uiFadeDuration.Seconds())
}

func lerp(from, to, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return from + (to-from)*t
}
