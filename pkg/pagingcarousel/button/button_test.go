package button

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
)

func TestButton_HitInsetsEnlargeTouchRegion(t *testing.T) {
	b := New(geometry.Rect{X: 100, Y: 10, W: 40, H: 20})
	outside := geometry.Point{X: 95, Y: 0}

	assert.False(t, b.HitTest(outside))

	b.HitInsets = geometry.Insets{Top: -20, Bottom: -20, Left: -6, Right: -6}
	assert.True(t, b.HitTest(outside))
}

func TestButton_HiddenNeverHits(t *testing.T) {
	b := New(geometry.Rect{W: 40, H: 20})
	b.Hidden = true
	assert.False(t, b.HitTest(geometry.Point{X: 10, Y: 10}))
	assert.False(t, b.TouchDown(geometry.Point{X: 10, Y: 10}))
}

func TestButton_TouchUpInsideFiresSynchronously(t *testing.T) {
	b := New(geometry.Rect{W: 40, H: 20})
	var sender *Button
	b.OnTouchUpInside = func(s *Button) { sender = s }

	p := geometry.Point{X: 10, Y: 10}
	assert.True(t, b.TouchDown(p))
	assert.Equal(t, PressedScale, b.PressTarget())

	b.TouchUp(p)

	assert.Same(t, b, sender)
	assert.False(t, b.Tracking())
	assert.Equal(t, 1.0, b.PressTarget())
}

func TestButton_TouchUpOutsideDoesNotFire(t *testing.T) {
	b := New(geometry.Rect{W: 40, H: 20})
	fired := false
	b.OnTouchUpInside = func(*Button) { fired = true }

	b.TouchDown(geometry.Point{X: 10, Y: 10})
	b.TouchUp(geometry.Point{X: 200, Y: 10})

	assert.False(t, fired)
}

func TestButton_TouchUpWithoutTouchDownDoesNotFire(t *testing.T) {
	b := New(geometry.Rect{W: 40, H: 20})
	fired := false
	b.OnTouchUpInside = func(*Button) { fired = true }

	b.TouchUp(geometry.Point{X: 10, Y: 10})

	assert.False(t, fired)
}

func TestButton_CancelSpringsBack(t *testing.T) {
	b := New(geometry.Rect{W: 40, H: 20})
	fired := false
	b.OnTouchUpInside = func(*Button) { fired = true }

	b.TouchDown(geometry.Point{X: 10, Y: 10})
	for range 10 {
		b.Step(16 * time.Millisecond)
	}
	assert.Less(t, b.Scale(), 1.0)

	b.TouchCancel()
	for range 300 {
		b.Step(16 * time.Millisecond)
	}

	assert.False(t, fired)
	assert.Equal(t, 1.0, b.Scale())
}
