package internal

import (
	"time"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
)

// Direction is a horizontal paging direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionPrevious
	DirectionNext
)

// Step returns the page delta for the direction.
func (d Direction) Step() int {
	switch d {
	case DirectionPrevious:
		return -1
	case DirectionNext:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionPrevious:
		return "previous"
	case DirectionNext:
		return "next"
	default:
		return ""
	}
}

// DirectionFor maps paging buttons to a direction: Left and L1 go back,
// Right and R1 go forward.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		return DirectionPrevious
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		return DirectionNext
	default:
		return DirectionNone
	}
}

// DirectionalInput tracks held paging buttons and produces repeats while one
// stays down. The most recently pressed direction wins.
type DirectionalInput struct {
	held           map[constants.VirtualButton]Direction
	last           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing: 400ms
// before the first repeat, then one page every 120ms.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(400*time.Millisecond, 120*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		held:           make(map[constants.VirtualButton]Direction),
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld records a press or release. It returns the direction of the
// button, or DirectionNone for non-paging buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) Direction {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return DirectionNone
	}

	if held {
		d.held[button] = dir
		d.last = dir
		d.hasRepeated = false
		d.lastRepeatTime = d.now()
		return dir
	}

	delete(d.held, button)
	if len(d.held) == 0 {
		d.last = DirectionNone
	} else {
		for _, remaining := range d.held {
			d.last = remaining
			break
		}
	}
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
	return dir
}

// IsHeld returns true if any paging button is held.
func (d *DirectionalInput) IsHeld() bool {
	return len(d.held) > 0
}

// HeldDirection returns the direction currently repeating.
func (d *DirectionalInput) HeldDirection() Direction {
	return d.last
}

// Update returns the direction to repeat this frame, if any. Call it every
// frame; the first repeat fires after the delay, later ones each interval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.last
	}

	return DirectionNone
}

// Reset clears all held buttons and timing state.
func (d *DirectionalInput) Reset() {
	clear(d.held)
	d.last = DirectionNone
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
