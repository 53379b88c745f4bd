package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDirectional() (*DirectionalInput, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 100*time.Millisecond)
	d.now = clock.now
	d.Reset()
	return &d, clock
}

func TestDirectionFor(t *testing.T) {
	assert.Equal(t, DirectionPrevious, DirectionFor(constants.VirtualButtonLeft))
	assert.Equal(t, DirectionPrevious, DirectionFor(constants.VirtualButtonL1))
	assert.Equal(t, DirectionNext, DirectionFor(constants.VirtualButtonRight))
	assert.Equal(t, DirectionNext, DirectionFor(constants.VirtualButtonR1))
	assert.Equal(t, DirectionNone, DirectionFor(constants.VirtualButtonA))
	assert.Equal(t, -1, DirectionPrevious.Step())
	assert.Equal(t, 0, DirectionNone.Step())
}

func TestDirectionalInput_RepeatTiming(t *testing.T) {
	d, clock := newTestDirectional()

	assert.Equal(t, DirectionNext, d.SetHeld(constants.VirtualButtonRight, true))
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(299 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update(), "no repeat before the delay")

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionNext, d.Update())

	clock.advance(99 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())
	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionNext, d.Update(), "later repeats use the interval")

	d.SetHeld(constants.VirtualButtonRight, false)
	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
	assert.False(t, d.IsHeld())
}

func TestDirectionalInput_LatestPressWins(t *testing.T) {
	d, clock := newTestDirectional()

	d.SetHeld(constants.VirtualButtonRight, true)
	d.SetHeld(constants.VirtualButtonL1, true)
	assert.Equal(t, DirectionPrevious, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonL1, false)
	assert.Equal(t, DirectionNext, d.HeldDirection(), "falls back to the button still down")

	clock.advance(300 * time.Millisecond)
	assert.Equal(t, DirectionNext, d.Update())
}

func TestDirectionalInput_IgnoresOtherButtons(t *testing.T) {
	d, _ := newTestDirectional()

	assert.Equal(t, DirectionNone, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.IsHeld())
}
