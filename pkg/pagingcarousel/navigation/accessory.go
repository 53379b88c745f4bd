package navigation

import (
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/button"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
)

// Accessory is an optional view pinned to the bar's leading edge. It scrolls
// away with the first page instead of taking part in the carousel.
type Accessory struct {
	Button *button.Button
	// Icon is an opaque payload for the renderer, typically SVG source.
	Icon []byte

	size geometry.Size
	x    float64
	y    float64
}

// NewAccessory creates an accessory of the given size. onTap may be nil.
func NewAccessory(size geometry.Size, icon []byte, onTap func()) *Accessory {
	a := &Accessory{
		Button: button.New(geometry.Rect{W: size.Width, H: size.Height}),
		Icon:   icon,
		size:   size,
	}
	if onTap != nil {
		a.Button.OnTouchUpInside = func(*button.Button) { onTap() }
	}
	return a
}

// Frame returns the accessory's frame within the bar.
func (a *Accessory) Frame() geometry.Rect {
	return geometry.Rect{X: a.x, Y: a.y, W: a.size.Width, H: a.size.Height}
}

// X returns the current horizontal offset.
func (a *Accessory) X() float64 { return a.x }

func (a *Accessory) place(x, y float64) {
	a.x, a.y = x, y
	a.Button.Frame = a.Frame()
}
