package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
)

type recorder struct {
	events  []string
	offsets []float64
}

func (r *recorder) WillBeginDragging(*Pager) { r.events = append(r.events, "begin") }
func (r *recorder) DidScroll(p *Pager)       { r.offsets = append(r.offsets, p.Offset()) }
func (r *recorder) DidEndDragging(_ *Pager, decelerate bool) {
	if decelerate {
		r.events = append(r.events, "end-drag:decelerate")
	} else {
		r.events = append(r.events, "end-drag")
	}
}
func (r *recorder) DidEndDecelerating(*Pager)       { r.events = append(r.events, "end-decelerating") }
func (r *recorder) DidEndScrollingAnimation(*Pager) { r.events = append(r.events, "end-animation") }

func newTestPager(pages int) (*Pager, *recorder) {
	rec := &recorder{}
	p := NewPager(pages, WithDelegate(rec))
	p.SetViewport(geometry.Size{Width: 320, Height: 480})
	rec.offsets = nil
	return p, rec
}

func runFor(p *Pager, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += 16 * time.Millisecond {
		p.Step(16 * time.Millisecond)
	}
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPager_DragIsClampedToContent(t *testing.T) {
	p, rec := newTestPager(3)

	p.BeginDrag(100, t0)
	p.DragTo(200, t0.Add(10*time.Millisecond))
	assert.Equal(t, 0.0, p.Offset(), "no bounce past the first page")
	assert.Empty(t, rec.offsets)

	p.DragTo(-10000, t0.Add(20*time.Millisecond))
	assert.Equal(t, 640.0, p.Offset(), "no bounce past the last page")
	assert.Equal(t, 960.0, p.ContentWidth())
	assert.Equal(t, 640.0, p.MaxOffset())
}

func TestPager_SlowReleaseSnapsToNearestPage(t *testing.T) {
	p, rec := newTestPager(3)

	p.BeginDrag(300, t0)
	p.DragTo(200, t0.Add(500*time.Millisecond))
	require.Equal(t, 100.0, p.Offset())

	p.EndDrag(200, t0.Add(600*time.Millisecond))
	assert.True(t, p.Decelerating())

	runFor(p, DecelerationDuration+50*time.Millisecond)

	assert.Equal(t, 0.0, p.Offset())
	assert.False(t, p.Decelerating())
	assert.Equal(t, []string{"begin", "end-drag:decelerate", "end-decelerating"}, rec.events)
}

func TestPager_FlickAdvancesOnePage(t *testing.T) {
	p, rec := newTestPager(3)

	p.BeginDrag(300, t0)
	p.DragTo(250, t0.Add(50*time.Millisecond))
	p.EndDrag(250, t0.Add(50*time.Millisecond))
	runFor(p, DecelerationDuration+50*time.Millisecond)

	assert.Equal(t, 320.0, p.Offset())
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, []string{"begin", "end-drag:decelerate", "end-decelerating"}, rec.events)

	// Flicking backwards from page 1.
	p.BeginDrag(100, t0.Add(time.Second))
	p.DragTo(140, t0.Add(time.Second+40*time.Millisecond))
	p.EndDrag(140, t0.Add(time.Second+40*time.Millisecond))
	runFor(p, DecelerationDuration+50*time.Millisecond)

	assert.Equal(t, 0, p.CurrentPage())
}

func TestPager_FlickPastLastPageClamps(t *testing.T) {
	p, _ := newTestPager(2)
	p.ScrollToPage(1, false)

	p.BeginDrag(300, t0)
	p.DragTo(200, t0.Add(20*time.Millisecond))
	p.EndDrag(200, t0.Add(20*time.Millisecond))
	runFor(p, DecelerationDuration+50*time.Millisecond)

	assert.Equal(t, 320.0, p.Offset())
}

func TestPager_ReleaseOnBoundaryDoesNotDecelerate(t *testing.T) {
	p, rec := newTestPager(3)

	p.BeginDrag(100, t0)
	p.EndDrag(100, t0.Add(10*time.Millisecond))

	assert.False(t, p.Decelerating())
	assert.Equal(t, []string{"begin", "end-drag"}, rec.events)
}

func TestPager_AnimatedScrollReportsEveryStep(t *testing.T) {
	p, rec := newTestPager(5)

	p.ScrollToPage(2, true)
	assert.True(t, p.Animating())
	assert.Equal(t, 0.0, p.Offset(), "animation has not started moving yet")
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, 2, p.TargetPage())

	runFor(p, AnimationDuration+50*time.Millisecond)

	assert.Equal(t, 640.0, p.Offset())
	assert.Greater(t, len(rec.offsets), 10)
	assert.IsNonDecreasing(t, rec.offsets)
	assert.Equal(t, 640.0, rec.offsets[len(rec.offsets)-1])
	assert.Equal(t, []string{"end-animation"}, rec.events)
}

func TestPager_AnimatedScrollToCurrentOffsetIsSilent(t *testing.T) {
	p, rec := newTestPager(3)

	p.ScrollToPage(0, true)
	runFor(p, AnimationDuration)

	assert.False(t, p.Animating())
	assert.Empty(t, rec.events)
	assert.Empty(t, rec.offsets)
}

func TestPager_ScrollBackToRestingPageStopsAnimation(t *testing.T) {
	p, rec := newTestPager(5)

	p.ScrollToPage(2, true)
	p.ScrollToPage(0, true)
	assert.False(t, p.Animating())
	assert.Equal(t, 0, p.TargetPage())

	for range 60 {
		p.Step(16 * time.Millisecond)
	}

	assert.Equal(t, 0.0, p.Offset())
	assert.Equal(t, 0, p.CurrentPage())
	assert.Empty(t, rec.offsets)
	assert.Equal(t, []string{"end-animation"}, rec.events)
}

func TestPager_ScrollRetargetsRunningAnimation(t *testing.T) {
	p, rec := newTestPager(5)

	p.ScrollToPage(2, true)
	runFor(p, 100*time.Millisecond)
	require.Greater(t, p.Offset(), 0.0)

	p.ScrollToPage(0, true)
	assert.True(t, p.Animating())
	assert.Equal(t, 0, p.TargetPage())

	runFor(p, AnimationDuration+50*time.Millisecond)

	assert.Equal(t, 0.0, p.Offset())
	assert.Equal(t, []string{"end-animation"}, rec.events)
}

type settleCounter struct {
	NopDelegate
	settled int
}

func (s *settleCounter) DidEndDecelerating(*Pager)       { s.settled++ }
func (s *settleCounter) DidEndScrollingAnimation(*Pager) { s.settled++ }

func TestPager_ScrollToOffsetDuringSnapEndsIt(t *testing.T) {
	counter := &settleCounter{}
	p := NewPager(3, WithDelegate(counter))
	p.SetViewport(geometry.Size{Width: 320, Height: 480})

	p.BeginDrag(300, t0)
	p.DragTo(200, t0.Add(500*time.Millisecond))
	p.EndDrag(200, t0.Add(600*time.Millisecond))
	require.True(t, p.Decelerating())

	p.SetOffset(100, true)
	assert.False(t, p.Decelerating())
	assert.Equal(t, 1, counter.settled)

	runFor(p, DecelerationDuration)
	assert.Equal(t, 100.0, p.Offset())
	assert.Equal(t, 1, counter.settled)
}

func TestPager_DragCancelsAnimationWithoutEndSignal(t *testing.T) {
	p, rec := newTestPager(5)

	p.ScrollToPage(3, true)
	runFor(p, 100*time.Millisecond)
	stoppedAt := p.Offset()
	require.Greater(t, stoppedAt, 0.0)

	p.BeginDrag(200, t0)
	assert.True(t, p.Dragging())
	assert.False(t, p.Animating())

	runFor(p, AnimationDuration)
	assert.Equal(t, stoppedAt, p.Offset(), "the cancelled animation does not keep moving")
	assert.Equal(t, []string{"begin"}, rec.events)
}

func TestPager_DragCancelsDeceleration(t *testing.T) {
	p, rec := newTestPager(3)

	p.BeginDrag(300, t0)
	p.DragTo(150, t0.Add(500*time.Millisecond))
	p.EndDrag(150, t0.Add(600*time.Millisecond))
	runFor(p, 50*time.Millisecond)

	p.BeginDrag(150, t0.Add(time.Second))
	runFor(p, DecelerationDuration)

	assert.NotContains(t, rec.events, "end-decelerating")
	assert.True(t, p.Dragging())
}

func TestPager_SetOffsetWithoutAnimation(t *testing.T) {
	p, rec := newTestPager(3)

	p.SetOffset(500, false)
	assert.Equal(t, 500.0, p.Offset())
	assert.Equal(t, []float64{500}, rec.offsets)
	assert.Empty(t, rec.events)

	p.SetOffset(99999, false)
	assert.Equal(t, 640.0, p.Offset())
}

func TestPager_ResizeKeepsCurrentPage(t *testing.T) {
	p, _ := newTestPager(4)
	p.ScrollToPage(2, false)

	p.SetViewport(geometry.Size{Width: 568, Height: 320})

	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, 1136.0, p.Offset())
}

func TestPager_ShrinkingPageCountReclamps(t *testing.T) {
	p, rec := newTestPager(4)
	p.ScrollToPage(3, false)
	rec.offsets = nil

	p.SetPageCount(2)

	assert.Equal(t, 320.0, p.Offset())
	assert.Equal(t, []float64{320}, rec.offsets)
}

func TestPager_EmptyPagerIsInert(t *testing.T) {
	p := NewPager(0)
	p.SetViewport(geometry.Size{Width: 320, Height: 480})

	assert.NotPanics(t, func() {
		p.ScrollToPage(3, true)
		p.Step(time.Second)
		p.BeginDrag(0, t0)
		p.DragTo(-50, t0.Add(time.Millisecond))
		p.EndDrag(-50, t0.Add(2*time.Millisecond))
	})
	assert.Equal(t, 0.0, p.Offset())
	assert.Equal(t, 0, p.CurrentPage())
}
