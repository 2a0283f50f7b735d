// Package scroll turns a raw scroll position into the smoothed value that
// drives the page progress bar.
package scroll

import "math"

const (
	DefaultStiffness = 100
	DefaultMass      = 1
	DefaultRestDelta = 0.001
)

// Progress maps a scroll offset onto [0,1]. A page that fits in the
// viewport reports 0.
func Progress(scrollTop, scrollHeight, viewportHeight float64) float64 {
	scrollable := scrollHeight - viewportHeight
	if scrollable <= 0 || math.IsNaN(scrollTop) {
		return 0
	}
	return clamp01(scrollTop / scrollable)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Spring is a critically damped spring chasing a target. Step uses the
// closed form solution, so any dt is stable and a spring released from rest
// never passes its target.
type Spring struct {
	Stiffness float64
	Mass      float64
	RestDelta float64

	value    float64
	velocity float64
}

// NewSpring returns a spring at rest at 0 with the default constants.
func NewSpring() *Spring {
	return &Spring{Stiffness: DefaultStiffness, Mass: DefaultMass, RestDelta: DefaultRestDelta}
}

// Value is the current smoothed value.
func (s *Spring) Value() float64 { return s.value }

// Velocity is the current rate of change per second.
func (s *Spring) Velocity() float64 { return s.velocity }

// Damping is the critical damping coefficient for the spring's constants.
func (s *Spring) Damping() float64 {
	return 2 * math.Sqrt(s.Stiffness*s.mass())
}

// AtRest reports whether the spring has settled on target.
func (s *Spring) AtRest(target float64) bool {
	return math.Abs(s.value-target) <= s.RestDelta && math.Abs(s.velocity) <= s.RestDelta
}

// Step advances the spring by dt seconds toward target and returns the new
// value. Once within RestDelta of target with negligible velocity it snaps.
func (s *Spring) Step(target, dt float64) float64 {
	if dt <= 0 {
		return s.value
	}
	omega := math.Sqrt(s.Stiffness / s.mass())
	c1 := s.value - target
	c2 := s.velocity + omega*c1
	decay := math.Exp(-omega * dt)

	s.value = target + (c1+c2*dt)*decay
	s.velocity = (c2 - omega*(c1+c2*dt)) * decay

	if s.AtRest(target) {
		s.value = target
		s.velocity = 0
	}
	return s.value
}

// Reset puts the spring at rest on v.
func (s *Spring) Reset(v float64) {
	s.value = v
	s.velocity = 0
}

func (s *Spring) mass() float64 {
	if s.Mass <= 0 {
		return DefaultMass
	}
	return s.Mass
}
