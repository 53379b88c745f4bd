package button

import (
	"math"
	"strconv"
	"time"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal/anim"
)

const (
	// MaxDisplayedCount is the largest count rendered literally.
	MaxDisplayedCount = 99
	// DefaultOverflowText replaces counts above MaxDisplayedCount.
	DefaultOverflowText = "99+"

	badgeTextPadding  = 8
	badgeHiddenScale  = 0.2
	badgeFadeDuration = 250 * time.Millisecond
)

// Alignment selects which edge of the button the badge is pinned to.
type Alignment int

const (
	AlignRight Alignment = iota // Pinned past the button's trailing edge
	AlignLeft                   // Pinned before the button's leading edge
)

func (a Alignment) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "right"
}

// TextMeasurer reports the rendered size of a string.
type TextMeasurer interface {
	MeasureText(text string) (width, height float64)
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string) (width, height float64)

func (f MeasureFunc) MeasureText(text string) (float64, float64) {
	return f(text)
}

// BadgeStyle holds the badge's geometry knobs.
type BadgeStyle struct {
	Height       float64
	MinimumWidth float64
	// EdgeOffset is added to the anchored button edge's x. Negative values
	// pull a right aligned badge over the button.
	EdgeOffset   float64
	TopOffset    float64
	OverflowText string
}

// DefaultBadgeStyle returns the stock badge geometry.
func DefaultBadgeStyle() BadgeStyle {
	return BadgeStyle{
		Height:       18,
		MinimumWidth: 20,
		EdgeOffset:   -8,
		TopOffset:    -9,
		OverflowText: DefaultOverflowText,
	}
}

// Badge is a pill-shaped count indicator overlaid on a button.
type Badge struct {
	Style BadgeStyle

	count     int
	text      string
	width     float64
	alignment Alignment
	visible   bool

	opacity anim.Tween
	scale   anim.Tween

	measure TextMeasurer
}

// NewBadge creates a hidden badge with a zero count.
func NewBadge(style BadgeStyle, measure TextMeasurer) *Badge {
	if style.OverflowText == "" {
		style.OverflowText = DefaultOverflowText
	}
	b := &Badge{
		Style:   style,
		measure: measure,
		opacity: anim.NewTween(0),
		scale:   anim.NewTween(badgeHiddenScale),
	}
	b.setText("0")
	return b
}

// SetCount updates the displayed text and width, then shows the badge for
// positive counts or hides it for zero. Negative counts are treated as zero.
func (b *Badge) SetCount(n int, animated bool) {
	if n < 0 {
		n = 0
	}
	b.count = n

	if n > MaxDisplayedCount {
		b.setText(b.Style.OverflowText)
	} else {
		b.setText(strconv.Itoa(n))
	}

	if n > 0 {
		b.Show(animated)
	} else {
		b.Hide(animated)
	}
}

func (b *Badge) setText(text string) {
	b.text = text
	textWidth := 0.0
	if b.measure != nil {
		textWidth, _ = b.measure.MeasureText(text)
	}
	b.width = math.Max(textWidth+badgeTextPadding, b.Style.MinimumWidth)
}

// Count returns the underlying count, even when the text is capped.
func (b *Badge) Count() int { return b.count }

// Text returns the rendered badge text.
func (b *Badge) Text() string { return b.text }

// Width returns the pill width fitted to the text.
func (b *Badge) Width() float64 { return b.width }

// Visible reports the logical visibility, independent of any running fade.
func (b *Badge) Visible() bool { return b.visible }

// SetAlignment chooses the anchored edge.
func (b *Badge) SetAlignment(a Alignment) { b.alignment = a }

// Alignment returns the anchored edge.
func (b *Badge) Alignment() Alignment { return b.alignment }

// Show fades and scales the badge in.
func (b *Badge) Show(animated bool) {
	b.visible = true
	if animated {
		b.opacity.Animate(1, badgeFadeDuration, anim.EaseIn)
		b.scale.Animate(1, badgeFadeDuration, anim.EaseIn)
		return
	}
	b.opacity.Set(1)
	b.scale.Set(1)
}

// Hide fades and scales the badge out.
func (b *Badge) Hide(animated bool) {
	b.visible = false
	if animated {
		b.opacity.Animate(0, badgeFadeDuration, anim.EaseOut)
		b.scale.Animate(badgeHiddenScale, badgeFadeDuration, anim.EaseOut)
		return
	}
	b.opacity.Set(0)
	b.scale.Set(badgeHiddenScale)
}

// Opacity returns the current animated opacity.
func (b *Badge) Opacity() float64 { return b.opacity.Value() }

// Scale returns the current animated scale.
func (b *Badge) Scale() float64 { return b.scale.Value() }

// Animating reports whether a show or hide transition is running.
func (b *Badge) Animating() bool { return b.opacity.Running() || b.scale.Running() }

// Frame resolves the unscaled pill geometry against the button's frame.
// EdgeOffset is added to the anchored edge on either side: a right aligned
// pill starts at the button's right edge plus the offset, a left aligned one
// ends at the button's left edge plus the offset.
func (b *Badge) Frame(button geometry.Rect) geometry.Rect {
	x := button.MaxX() + b.Style.EdgeOffset
	if b.alignment == AlignLeft {
		x = button.X + b.Style.EdgeOffset - b.width
	}
	return geometry.Rect{
		X: x,
		Y: button.Y + b.Style.TopOffset,
		W: b.width,
		H: b.Style.Height,
	}
}

// Step advances the show/hide transition.
func (b *Badge) Step(dt time.Duration) {
	b.opacity.Step(dt)
	b.scale.Step(dt)
}
