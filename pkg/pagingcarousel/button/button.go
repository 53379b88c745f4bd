// Package button provides the pressable button and the badge overlay that the
// navigation bar composes into one tab. Both are pure state: the renderer reads
// their frames, scales and opacities each frame, and the owner advances their
// animations with Step.
package button

import (
	"time"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal/anim"
)

const (
	// PressedScale is the scale a button springs to while held.
	PressedScale = 0.9

	pressDamping  = 0.55
	pressResponse = 350 * time.Millisecond
)

// Button is a pressable region with an adjustable hit area.
type Button struct {
	// Frame is the visual bounds in the parent's coordinate space.
	Frame geometry.Rect
	// HitInsets adjusts the hit region relative to Frame. Negative values enlarge it.
	HitInsets geometry.Insets
	// Hidden buttons are neither drawn nor hit-testable.
	Hidden bool
	// OnTouchUpInside fires when a touch that began on the button ends inside its hit region.
	OnTouchUpInside func(sender *Button)

	tracking bool
	press    anim.Spring
}

// New creates a resting button.
func New(frame geometry.Rect) *Button {
	return &Button{
		Frame: frame,
		press: anim.NewSpring(1, pressDamping, pressResponse),
	}
}

// HitRegion returns Frame adjusted by HitInsets.
func (b *Button) HitRegion() geometry.Rect {
	return b.Frame.Inset(b.HitInsets)
}

// HitTest reports whether p lands on the button.
func (b *Button) HitTest(p geometry.Point) bool {
	if b.Hidden {
		return false
	}
	return b.HitRegion().Contains(p)
}

// TouchDown starts tracking a touch at p. It returns false if p misses the button.
func (b *Button) TouchDown(p geometry.Point) bool {
	if !b.HitTest(p) {
		return false
	}
	b.tracking = true
	b.press.SetTarget(PressedScale)
	return true
}

// TouchUp ends the tracked touch at p. The callback fires before this
// method returns; the release animation continues on later Steps.
func (b *Button) TouchUp(p geometry.Point) {
	wasTracking := b.tracking
	b.tracking = false
	b.press.SetTarget(1)

	if wasTracking && b.HitTest(p) && b.OnTouchUpInside != nil {
		b.OnTouchUpInside(b)
	}
}

// TouchCancel abandons the tracked touch without firing the callback.
func (b *Button) TouchCancel() {
	b.tracking = false
	b.press.SetTarget(1)
}

// Tracking reports whether a touch is currently held on the button.
func (b *Button) Tracking() bool {
	return b.tracking
}

// Scale returns the current press-feedback scale.
func (b *Button) Scale() float64 {
	return b.press.Value
}

// PressTarget returns the scale the press feedback is heading to.
func (b *Button) PressTarget() float64 {
	return b.press.Target
}

// Step advances the press animation.
func (b *Button) Step(dt time.Duration) {
	b.press.Step(dt)
}
