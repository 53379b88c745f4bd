// Package touch reads a handheld touchscreen through evdev and reports
// single-finger touches in window coordinates.
package touch

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("touch: evdev is not available on this platform")

type Phase int

const (
	Down Phase = iota
	Move
	Up
)

func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Event is one touch sample in window coordinates.
type Event struct {
	Phase Phase
	X, Y  float64
	At    time.Time
}

// Calibration maps raw panel axes onto the window.
type Calibration struct {
	MinX, MaxX int32
	MinY, MaxY int32
	SwapXY     bool // panel mounted rotated by 90 degrees
	InvertX    bool
	InvertY    bool
}

// Map converts raw panel coordinates into a width by height window.
func (c Calibration) Map(rawX, rawY int32, width, height float64) (float64, float64) {
	if c.SwapXY {
		rawX, rawY = rawY, rawX
	}
	x := normalize(rawX, c.MinX, c.MaxX)
	y := normalize(rawY, c.MinY, c.MaxY)
	if c.InvertX {
		x = 1 - x
	}
	if c.InvertY {
		y = 1 - y
	}
	return x * width, y * height
}

func normalize(v, lo, hi int32) float64 {
	if hi <= lo {
		return 0
	}
	n := float64(v-lo) / float64(hi-lo)
	return min(max(n, 0), 1)
}
