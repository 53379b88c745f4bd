package navigation

import (
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/button"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
)

// ItemView is the rendered state of one Item. It is created and owned by a
// View; callers may read it but never need to mutate it.
type ItemView struct {
	Button *button.Button
	Badge  *button.Badge

	item    Item
	title   string
	size    geometry.Size
	x       float64
	y       float64
	opacity float64
}

// Item returns the item the view was last updated from.
func (v *ItemView) Item() Item { return v.item }

// Title returns the rendered, possibly truncated, title.
func (v *ItemView) Title() string { return v.title }

// Size returns the measured title size.
func (v *ItemView) Size() geometry.Size { return v.size }

// X returns the current horizontal offset within the bar.
func (v *ItemView) X() float64 { return v.x }

// Opacity returns the current title opacity.
func (v *ItemView) Opacity() float64 { return v.opacity }

// Hidden reports whether the item is hidden.
func (v *ItemView) Hidden() bool { return v.item.IsHidden }

// Frame returns the title's frame within the bar.
func (v *ItemView) Frame() geometry.Rect {
	return geometry.Rect{X: v.x, Y: v.y, W: v.size.Width, H: v.size.Height}
}

// BadgeFrame returns the badge pill's frame within the bar.
func (v *ItemView) BadgeFrame() geometry.Rect {
	return v.Badge.Frame(v.Frame())
}

func (v *ItemView) place(x, y float64) {
	v.x, v.y = x, y
	v.Button.Frame = v.Frame()
}
