// Package anim provides the frame-stepped animation primitives used for the
// cosmetic transitions of the widgets: eased tweens and damped springs.
// Nothing here owns a clock; callers advance animations with Step.
package anim

import "time"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// EaseIn starts slow and accelerates.
func EaseIn(t float64) float64 { return t * t * t }

// EaseOut starts fast and decelerates.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates through the first half and decelerates through the second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Tween interpolates a single value toward a target over a fixed duration.
type Tween struct {
	from     float64
	to       float64
	value    float64
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	running  bool
}

// NewTween creates a resting tween holding value.
func NewTween(value float64) Tween {
	return Tween{from: value, to: value, value: value}
}

// Set jumps to v immediately and stops any running animation.
func (t *Tween) Set(v float64) {
	t.from, t.to, t.value = v, v, v
	t.elapsed, t.duration = 0, 0
	t.running = false
}

// Animate starts moving from the current value to `to`. A non-positive
// duration behaves like Set.
func (t *Tween) Animate(to float64, d time.Duration, ease Easing) {
	if d <= 0 {
		t.Set(to)
		return
	}
	if ease == nil {
		ease = Linear
	}
	t.from = t.value
	t.to = to
	t.duration = d
	t.elapsed = 0
	t.ease = ease
	t.running = true
}

// Step advances the animation by dt. It reports whether the animation
// finished during this step.
func (t *Tween) Step(dt time.Duration) bool {
	if !t.running {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.value = t.to
		t.running = false
		return true
	}
	p := float64(t.elapsed) / float64(t.duration)
	t.value = t.from + (t.to-t.from)*t.ease(p)
	return false
}

// Stop freezes the tween at its current value.
func (t *Tween) Stop() {
	t.from, t.to = t.value, t.value
	t.running = false
}

// Value returns the current value.
func (t *Tween) Value() float64 { return t.value }

// Target returns the value the tween is heading to, or the resting value.
func (t *Tween) Target() float64 { return t.to }

// Running reports whether an animation is in progress.
func (t *Tween) Running() bool { return t.running }
