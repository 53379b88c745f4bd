package anim

import (
	"math"
	"time"
)

const (
	springSubstep   = 4 * time.Millisecond
	springRestDelta = 1e-3
)

// Spring is a damped harmonic oscillator pulling Value toward Target.
// Damping is the damping ratio (1 is critical); Response is the undamped period.
type Spring struct {
	Value    float64
	Velocity float64
	Target   float64
	Damping  float64
	Response time.Duration
}

// NewSpring creates a spring resting at value.
func NewSpring(value, damping float64, response time.Duration) Spring {
	return Spring{
		Value:    value,
		Target:   value,
		Damping:  damping,
		Response: response,
	}
}

// SetTarget retargets the spring, keeping its current velocity.
func (s *Spring) SetTarget(target float64) {
	s.Target = target
}

// Kick adds an impulse to the spring's velocity.
func (s *Spring) Kick(velocity float64) {
	s.Velocity += velocity
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.Value-s.Target) < springRestDelta && math.Abs(s.Velocity) < springRestDelta
}

// Step integrates the spring over dt using fixed substeps.
func (s *Spring) Step(dt time.Duration) {
	if s.Settled() {
		s.Value, s.Velocity = s.Target, 0
		return
	}
	response := s.Response
	if response <= 0 {
		s.Value, s.Velocity = s.Target, 0
		return
	}

	omega := 2 * math.Pi / response.Seconds()
	stiffness := omega * omega
	friction := 2 * s.Damping * omega

	for dt > 0 {
		step := min(dt, springSubstep)
		h := step.Seconds()
		accel := -stiffness*(s.Value-s.Target) - friction*s.Velocity
		s.Velocity += accel * h
		s.Value += s.Velocity * h
		dt -= step
	}

	if s.Settled() {
		s.Value, s.Velocity = s.Target, 0
	}
}
