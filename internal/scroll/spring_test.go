package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name                        string
		top, height, viewport, want float64
	}{
		{"top of page", 0, 3000, 1000, 0},
		{"halfway", 1000, 3000, 1000, 0.5},
		{"bottom", 2000, 3000, 1000, 1},
		{"overscroll", 2500, 3000, 1000, 1},
		{"negative bounce", -40, 3000, 1000, 0},
		{"page fits viewport", 0, 800, 1000, 0},
		{"not a number", math.NaN(), 3000, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.top, tt.height, tt.viewport), 1e-9)
		})
	}
}

func TestSpringConvergesWithoutOvershoot(t *testing.T) {
	s := NewSpring()
	const dt = 1.0 / 60

	prev := s.Value()
	for i := 0; i < 600; i++ {
		v := s.Step(1, dt)
		assert.LessOrEqual(t, v, 1.0)
		assert.GreaterOrEqual(t, v, prev, "step %d moved away from target", i)
		prev = v
	}
	assert.Equal(t, 1.0, s.Value())
	assert.Zero(t, s.Velocity())
	assert.True(t, s.AtRest(1))
}

func TestSpringLargeStepIsStable(t *testing.T) {
	s := NewSpring()
	v := s.Step(0.75, 10)
	assert.Equal(t, 0.75, v)
}

func TestSpringFollowsMovingTarget(t *testing.T) {
	s := NewSpring()
	s.Reset(0.2)
	for i := 0; i < 30; i++ {
		s.Step(0.8, 1.0/60)
	}
	mid := s.Value()
	assert.Greater(t, mid, 0.2)
	assert.Less(t, mid, 0.8)

	for i := 0; i < 600; i++ {
		s.Step(0.1, 1.0/60)
	}
	assert.Equal(t, 0.1, s.Value())
}

func TestSpringIgnoresNonPositiveStep(t *testing.T) {
	s := NewSpring()
	s.Reset(0.3)
	assert.Equal(t, 0.3, s.Step(1, 0))
	assert.Equal(t, 0.3, s.Step(1, -1))
}

func TestDamping(t *testing.T) {
	s := NewSpring()
	assert.InDelta(t, 20, s.Damping(), 1e-9)
	s.Mass = 0
	assert.InDelta(t, 20, s.Damping(), 1e-9)
}
