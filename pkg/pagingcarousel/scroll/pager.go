// Package scroll implements the horizontally paged scroll surface that hosts
// the container's panes. It has no bounce: the offset always stays within the
// content, and every gesture or programmatic scroll comes to rest on a page.
package scroll

import (
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal/anim"
)

const (
	// FlickVelocity is the content speed, in points per second, above which
	// a released drag advances one page in the direction of travel.
	FlickVelocity = 300.0

	// DecelerationDuration is how long a released drag takes to snap.
	DecelerationDuration = 300 * time.Millisecond

	// AnimationDuration is how long an animated programmatic scroll takes.
	AnimationDuration = 350 * time.Millisecond
)

// Delegate observes a Pager. Every method is called on the thread driving
// the pager, after the pager's state has been updated.
type Delegate interface {
	WillBeginDragging(p *Pager)
	DidScroll(p *Pager)
	DidEndDragging(p *Pager, decelerate bool)
	DidEndDecelerating(p *Pager)
	DidEndScrollingAnimation(p *Pager)
}

// NopDelegate implements Delegate with no-ops, for embedding.
type NopDelegate struct{}

func (NopDelegate) WillBeginDragging(*Pager)        {}
func (NopDelegate) DidScroll(*Pager)                {}
func (NopDelegate) DidEndDragging(*Pager, bool)     {}
func (NopDelegate) DidEndDecelerating(*Pager)       {}
func (NopDelegate) DidEndScrollingAnimation(*Pager) {}

type phase int

const (
	idle phase = iota
	dragging
	decelerating
	animating
)

func (p phase) String() string {
	switch p {
	case dragging:
		return "dragging"
	case decelerating:
		return "decelerating"
	case animating:
		return "animating"
	default:
		return "idle"
	}
}

// Option configures a Pager.
type Option func(*Pager)

// WithLogger sets the logger for snap diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pager) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDelegate installs the delegate at construction.
func WithDelegate(d Delegate) Option {
	return func(p *Pager) { p.delegate = d }
}

// Pager is a paged horizontal scroll surface.
type Pager struct {
	pages    int
	viewport geometry.Size
	offset   float64

	delegate Delegate
	logger   *slog.Logger

	phase phase
	tween anim.Tween

	dragOriginX      float64
	dragOriginOffset float64
	lastX            float64
	lastAt           time.Time
	velocity         float64 // content points per second, positive toward later pages
}

// NewPager creates a pager over pages pages, resting on page 0.
func NewPager(pages int, opts ...Option) *Pager {
	p := &Pager{
		pages:  max(pages, 0),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetDelegate replaces the delegate. A nil delegate silences signals.
func (p *Pager) SetDelegate(d Delegate) { p.delegate = d }

// Offset returns the horizontal content offset.
func (p *Pager) Offset() float64 { return p.offset }

// Viewport returns the visible size.
func (p *Pager) Viewport() geometry.Size { return p.viewport }

// PageCount returns the number of pages.
func (p *Pager) PageCount() int { return p.pages }

// ContentWidth returns the total scrollable width.
func (p *Pager) ContentWidth() float64 {
	return float64(p.pages) * p.viewport.Width
}

// MaxOffset returns the largest valid offset.
func (p *Pager) MaxOffset() float64 {
	return math.Max(0, p.ContentWidth()-p.viewport.Width)
}

// Dragging reports whether a drag is in progress.
func (p *Pager) Dragging() bool { return p.phase == dragging }

// Decelerating reports whether a released drag is still snapping.
func (p *Pager) Decelerating() bool { return p.phase == decelerating }

// Animating reports whether a programmatic scroll is running.
func (p *Pager) Animating() bool { return p.phase == animating }

// CurrentPage returns the page nearest to the current offset.
func (p *Pager) CurrentPage() int {
	return p.nearestPage(p.offset)
}

// TargetPage returns the page the pager will come to rest on: the
// destination of a running snap or animation, otherwise CurrentPage.
func (p *Pager) TargetPage() int {
	if p.phase == decelerating || p.phase == animating {
		return p.nearestPage(p.tween.Target())
	}
	return p.CurrentPage()
}

func (p *Pager) nearestPage(offset float64) int {
	if p.pages == 0 || p.viewport.Width <= 0 {
		return 0
	}
	return p.clampPage(int(math.Round(offset / p.viewport.Width)))
}

func (p *Pager) clampPage(page int) int {
	return min(max(page, 0), max(p.pages-1, 0))
}

func (p *Pager) clampOffset(x float64) float64 {
	return math.Min(math.Max(x, 0), p.MaxOffset())
}

// PageOffset returns the offset at which page rests.
func (p *Pager) PageOffset(page int) float64 {
	return float64(p.clampPage(page)) * p.viewport.Width
}

// SetPageCount changes the number of pages, keeping the offset in range.
func (p *Pager) SetPageCount(pages int) {
	p.pages = max(pages, 0)
	p.reclamp()
}

// SetViewport resizes the visible area. An idle pager keeps showing the
// same page; an in-flight scroll is cut short onto its nearest page.
func (p *Pager) SetViewport(size geometry.Size) {
	if size == p.viewport {
		return
	}
	page := p.CurrentPage()
	p.viewport = size
	p.phase = idle
	p.tween.Stop()
	p.offset = p.PageOffset(page)
	p.notifyScroll()
}

func (p *Pager) reclamp() {
	clamped := p.clampOffset(p.offset)
	if clamped != p.offset {
		p.offset = clamped
		p.tween.Set(clamped)
		p.notifyScroll()
	}
}

// BeginDrag starts a drag at horizontal position x. Any running deceleration
// or programmatic scroll stops where it is, without an end signal.
func (p *Pager) BeginDrag(x float64, at time.Time) {
	if p.phase == decelerating || p.phase == animating {
		p.logger.Debug("Drag interrupted scroll", "phase", p.phase.String(), "offset", p.offset)
	}
	p.tween.Stop()
	p.phase = dragging
	p.dragOriginX = x
	p.dragOriginOffset = p.offset
	p.lastX, p.lastAt = x, at
	p.velocity = 0

	if p.delegate != nil {
		p.delegate.WillBeginDragging(p)
	}
}

// DragTo moves the content with the finger.
func (p *Pager) DragTo(x float64, at time.Time) {
	if p.phase != dragging {
		return
	}
	p.track(x, at)

	next := p.clampOffset(p.dragOriginOffset - (x - p.dragOriginX))
	if next == p.offset {
		return
	}
	p.offset = next
	p.notifyScroll()
}

func (p *Pager) track(x float64, at time.Time) {
	if dt := at.Sub(p.lastAt).Seconds(); dt > 0 {
		p.velocity = -(x - p.lastX) / dt
	}
	p.lastX, p.lastAt = x, at
}

// EndDrag releases the drag at x. The content snaps to the page picked by
// the release velocity: a flick moves one page in its direction, anything
// slower settles on the nearest page.
func (p *Pager) EndDrag(x float64, at time.Time) {
	if p.phase != dragging {
		return
	}
	p.DragTo(x, at)

	target := p.PageOffset(p.snapPage())
	if target == p.offset {
		p.phase = idle
		if p.delegate != nil {
			p.delegate.DidEndDragging(p, false)
		}
		return
	}

	p.logger.Debug("Snapping to page", "page", p.nearestPage(target), "velocity", p.velocity)
	p.phase = decelerating
	p.tween.Set(p.offset)
	p.tween.Animate(target, DecelerationDuration, anim.EaseOut)
	if p.delegate != nil {
		p.delegate.DidEndDragging(p, true)
	}
}

func (p *Pager) snapPage() int {
	if p.viewport.Width <= 0 {
		return 0
	}
	fraction := p.offset / p.viewport.Width
	switch {
	case p.velocity > FlickVelocity:
		return p.clampPage(int(math.Floor(fraction)) + 1)
	case p.velocity < -FlickVelocity:
		return p.clampPage(int(math.Ceil(fraction)) - 1)
	default:
		return p.nearestPage(p.offset)
	}
}

// CancelDrag abandons a drag and snaps back to the nearest page.
func (p *Pager) CancelDrag() {
	if p.phase != dragging {
		return
	}
	p.velocity = 0
	p.EndDrag(p.lastX, p.lastAt)
}

// SetOffset scrolls to x. Animated scrolls report every step through
// DidScroll and end with DidEndScrollingAnimation. An animated scroll to the
// current offset does nothing when the pager is at rest; if a deceleration or
// animation is heading elsewhere, it is stopped where it is and ends at once.
func (p *Pager) SetOffset(x float64, animated bool) {
	x = p.clampOffset(x)

	if !animated {
		p.tween.Set(x)
		p.phase = idle
		if x != p.offset {
			p.offset = x
			p.notifyScroll()
		}
		return
	}

	if x == p.offset {
		if p.phase == decelerating || p.phase == animating {
			p.tween.Set(x)
			p.finish()
		}
		return
	}
	p.phase = animating
	p.tween.Set(p.offset)
	p.tween.Animate(x, AnimationDuration, anim.EaseInOut)
}

// ScrollToPage scrolls so page fills the viewport.
func (p *Pager) ScrollToPage(page int, animated bool) {
	p.SetOffset(p.PageOffset(page), animated)
}

// Step advances a running deceleration or programmatic scroll.
func (p *Pager) Step(dt time.Duration) {
	if p.phase != decelerating && p.phase != animating {
		return
	}

	done := p.tween.Step(dt)
	if v := p.clampOffset(p.tween.Value()); v != p.offset {
		p.offset = v
		p.notifyScroll()
	}
	if done {
		p.finish()
	}
}

// finish ends a deceleration or animation with the matching end signal.
func (p *Pager) finish() {
	ended := p.phase
	p.phase = idle
	if p.delegate == nil {
		return
	}
	if ended == decelerating {
		p.delegate.DidEndDecelerating(p)
	} else {
		p.delegate.DidEndScrollingAnimation(p)
	}
}

func (p *Pager) notifyScroll() {
	if p.delegate != nil {
		p.delegate.DidScroll(p)
	}
}
